package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		So(API().MkdirAll("/cfg", 0o755), ShouldBeNil)

		Convey("WriteAtomic replaces the file contents", func() {
			So(WriteAtomic("/cfg/shows.txt", []byte("a\n"), 0o644), ShouldBeNil)
			So(WriteAtomic("/cfg/shows.txt", []byte("b\n"), 0o644), ShouldBeNil)

			data, err := API().ReadFile("/cfg/shows.txt")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "b\n")

			Convey("And leaves no temporary file behind", func() {
				exists, err := API().Exists("/cfg/shows.txt.tmp")
				So(err, ShouldBeNil)
				So(exists, ShouldBeFalse)
			})
		})
	})
}
