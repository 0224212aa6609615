package watchlist

import (
	"testing"

	"github.com/nextep-cli/nextep/filesystem"
	"github.com/nextep-cli/nextep/where"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		So(Normalize("  The Expanse "), ShouldEqual, "the-expanse")
		So(Normalize("Doctor\t Who"), ShouldEqual, "doctor-who")
		So(Normalize("lost"), ShouldEqual, "lost")
		So(Normalize("   "), ShouldEqual, "")
	})

	Convey("NormalizeAll drops blanks and duplicates", t, func() {
		So(NormalizeAll([]string{"Lost", " ", "lost", "The Wire"}), ShouldResemble, []string{"lost", "the-wire"})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		So(Parse("lost\n\n  # finished\nThe Wire\r\nlost\n"), ShouldResemble, []string{"lost", "the-wire"})
		So(Parse(""), ShouldBeEmpty)
	})
}

func TestWatchlist(t *testing.T) {
	Convey("Given an empty filesystem", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/nextep")

		Convey("The watchlist is empty", func() {
			ids, err := Load()
			So(err, ShouldBeNil)
			So(ids, ShouldBeEmpty)
		})

		Convey("When shows are added", func() {
			added, err := Add("Lost", "the wire", "lost")
			So(err, ShouldBeNil)
			So(added, ShouldResemble, []string{"lost", "the-wire"})

			Convey("They are loaded back in order", func() {
				ids, err := Load()
				So(err, ShouldBeNil)
				So(ids, ShouldResemble, []string{"lost", "the-wire"})
			})

			Convey("Adding them again is a no-op", func() {
				added, err := Add("LOST")
				So(err, ShouldBeNil)
				So(added, ShouldBeEmpty)
			})

			Convey("Removing keeps the others", func() {
				removed, err := Remove("Lost", "unknown")
				So(err, ShouldBeNil)
				So(removed, ShouldResemble, []string{"lost"})

				ids, err := Load()
				So(err, ShouldBeNil)
				So(ids, ShouldResemble, []string{"the-wire"})
			})

			Convey("The file holds one identifier per line", func() {
				contents, err := filesystem.API().ReadFile(where.Shows())
				So(err, ShouldBeNil)
				So(string(contents), ShouldEqual, "lost\nthe-wire\n")
			})
		})
	})
}
