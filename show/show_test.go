package show

import (
	"errors"
	"testing"

	"github.com/nextep-cli/nextep/page"
	"github.com/nextep-cli/nextep/release"
	. "github.com/smartystreets/goconvey/convey"
)

const bothSections = `<html><body>
<div id="previous_episode">Name: Pilot<br>Date: Mon Jan 1, 2024<br>Season: 1<br>Episode: 1</div>
<div id="next_episode">Name: Second<br>Date: Mon Jan 8, 2024<br>Season: 1<br>Episode: 2</div>
</body></html>`

func TestResolve(t *testing.T) {
	Convey("Given a fetch error", t, func() {
		fetchErr := errors.New("connection refused")
		s := Resolve("lost", []byte(bothSections), fetchErr)

		Convey("The show carries the error and empty releases", func() {
			So(s.ID, ShouldEqual, "lost")
			So(s.Err, ShouldEqual, fetchErr)
			So(s.Previous, ShouldResemble, release.Empty{})
			So(s.Next, ShouldResemble, release.Empty{})
			So(s.Status(), ShouldEqual, "connection refused")
		})
	})

	Convey("Given uninterpretable markup", t, func() {
		s := Resolve("lost", []byte("   "), nil)

		var markupErr *page.MarkupError
		So(errors.As(s.Err, &markupErr), ShouldBeTrue)
		So(release.IsEmpty(s.Previous), ShouldBeTrue)
		So(release.IsEmpty(s.Next), ShouldBeTrue)
	})

	Convey("Given a page with both sections", t, func() {
		s := Resolve("lost", []byte(bothSections), nil)

		Convey("Each section is parsed", func() {
			So(s.Err, ShouldBeNil)
			So(s.Previous.String(), ShouldEqual, "2024-01-01 S1 E1")
			So(s.Next.String(), ShouldEqual, "2024-01-08 S1 E2")
			So(s.Status(), ShouldEqual, "2024-01-08 S1 E2")
		})
	})

	Convey("Given a page with neither section", t, func() {
		s := Resolve("lost", []byte("<html><body>nothing</body></html>"), nil)

		So(s.Err, ShouldBeNil)
		So(s.Previous, ShouldResemble, release.Empty{})
		So(s.Next, ShouldResemble, release.Empty{})
	})

	Convey("Given a bad date in one section", t, func() {
		s := Resolve("lost", []byte(`<div id="next_episode">Date: whenever<br>Season: 2<br>Episode: 1</div>`), nil)

		Convey("Only that release fails", func() {
			So(s.Err, ShouldBeNil)
			So(release.Err(s.Next), ShouldNotBeNil)
			So(s.Previous, ShouldResemble, release.Empty{})
		})
	})
}
