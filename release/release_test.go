package release

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEpisodeLabel(t *testing.T) {
	Convey("Episode.Label", t, func() {
		So(Episode("5").Label(), ShouldEqual, "E5")
		So(Episode("12").Label(), ShouldEqual, "E12")
		So(Episode("3, 4, 5").Label(), ShouldEqual, "E3-5")
		So(Episode("7,8").Label(), ShouldEqual, "E7-8")
		So(Episode("Special").Label(), ShouldEqual, `"Special"`)
		So(Episode("3, Special").Label(), ShouldEqual, `"3, Special"`)
		So(Episode("").Label(), ShouldEqual, "")
	})

	Convey("Episode.Numbers keeps labels as text", t, func() {
		numbers, ok := Episode("03, 04").Numbers()
		So(ok, ShouldBeTrue)
		So(numbers, ShouldResemble, []string{"03", "04"})

		_, ok = Episode("Finale").Numbers()
		So(ok, ShouldBeFalse)
	})
}

func TestRendering(t *testing.T) {
	Convey("Release rendering", t, func() {
		Convey("Empty renders as an empty string", func() {
			So(Empty{}.String(), ShouldEqual, "")
			So(Empty{}.AirDate().IsPresent(), ShouldBeFalse)
		})

		Convey("Scheduled renders date, season and episode", func() {
			r := Scheduled{Season: "2", Episode: "5", Name: "Pilot", Date: day(2024, time.January, 5)}
			So(r.String(), ShouldEqual, "2024-01-05 S2 E5")
			So(r.AirDate().MustGet().Equal(r.Date), ShouldBeTrue)
		})

		Convey("IndirectStatus renders quote and source", func() {
			r := IndirectStatus{Site: "TVGuide", SourceDate: "March 2024", Quote: "renewed for another season"}
			So(r.String(), ShouldEqual, "renewed for another season (TVGuide, March 2024)")
			So(IndirectStatus{Quote: "renewed"}.String(), ShouldEqual, "renewed")
			So(IndirectStatus{Site: "TVLine"}.String(), ShouldEqual, "(TVLine)")
			So(r.AirDate().IsPresent(), ShouldBeFalse)
		})

		Convey("Failed renders its error", func() {
			r := Failed{Err: errors.New("boom")}
			So(r.String(), ShouldEqual, "boom")
			So(Err(r), ShouldNotBeNil)
			So(Failed{}.String(), ShouldEqual, "unknown error")
		})

		Convey("Err and IsEmpty classify variants", func() {
			So(Err(Empty{}), ShouldBeNil)
			So(IsEmpty(Empty{}), ShouldBeTrue)
			So(IsEmpty(nil), ShouldBeTrue)
			So(IsEmpty(IndirectStatus{Quote: "x"}), ShouldBeFalse)
			So(IsEmpty(Failed{Err: errors.New("x")}), ShouldBeFalse)
		})
	})
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		early := Scheduled{Season: "1", Episode: "1", Date: day(2024, time.January, 5)}
		late := Scheduled{Season: "1", Episode: "2", Date: day(2024, time.January, 12)}

		Convey("Dated releases compare by date", func() {
			So(Compare(early, late), ShouldEqual, -1)
			So(Compare(late, early), ShouldEqual, 1)
			So(Compare(early, early), ShouldEqual, 0)
		})

		Convey("A dated release is greater than an undated one", func() {
			for _, undated := range []Release{Empty{}, IndirectStatus{Quote: "q"}, Failed{Err: errors.New("x")}} {
				So(Compare(early, undated), ShouldEqual, 1)
				So(Compare(undated, early), ShouldEqual, -1)
			}
		})

		Convey("Undated releases are equal", func() {
			So(Compare(Empty{}, Failed{Err: errors.New("x")}), ShouldEqual, 0)
			So(Compare(IndirectStatus{Quote: "q"}, Empty{}), ShouldEqual, 0)
		})
	})
}
