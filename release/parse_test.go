package release

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nextep-cli/nextep/constant"
	. "github.com/smartystreets/goconvey/convey"
)

const pilotBlock = `Next Episode
Name: Pilot
Countdown: 3 days
Date: Mon Jan 5, 2024
Season: 2
Episode: 5
Summary: Episode Summary`

func TestParseSentinels(t *testing.T) {
	Convey("Given text containing a sentinel phrase", t, func() {
		texts := []string{
			constant.NoInfoSentinel + " of Lost is available yet.",
			"Status: " + constant.EndedSentinel,
			constant.EndedSentinel + "\n" + pilotBlock,
			constant.NoInfoSentinel + ". " + constant.IndirectStatusMarker + " TVLine, May 2024: ok",
		}

		Convey("Parse returns an empty release without error", func() {
			for _, text := range texts {
				r := Parse(text)
				So(r, ShouldResemble, Empty{})
				So(Err(r), ShouldBeNil)
				So(r.String(), ShouldEqual, "")
			}
		})
	})
}

func TestParseIndirect(t *testing.T) {
	Convey("Given an indirect status block", t, func() {
		text := "No episode is scheduled yet. " + constant.IndirectStatusMarker + "\nTVGuide, March 2024: \"renewed for another season\""

		Convey("Source and quote are extracted", func() {
			r := Parse(text)
			status, ok := r.(IndirectStatus)
			So(ok, ShouldBeTrue)
			So(status.Site, ShouldEqual, "TVGuide")
			So(status.SourceDate, ShouldEqual, "March 2024")
			So(status.Quote, ShouldEqual, "renewed for another season")
			So(r.String(), ShouldEqual, "renewed for another season (TVGuide, March 2024)")
			So(r.AirDate().IsPresent(), ShouldBeFalse)
		})

		Convey("Colons inside the quote are kept", func() {
			r := Parse(constant.IndirectStatusMarker + " Deadline, Jan 3, 2025: Season 3: filming starts")
			status := r.(IndirectStatus)
			So(status.Site, ShouldEqual, "Deadline")
			So(status.SourceDate, ShouldEqual, "Jan 3, 2025")
			So(status.Quote, ShouldEqual, "Season 3: filming starts")
		})

		Convey("A bare quote has no source", func() {
			r := Parse(constant.IndirectStatusMarker + ` "it will return"`)
			So(r.String(), ShouldEqual, "it will return")
		})

		Convey("A bare quote keeps its colons", func() {
			for _, text := range []string{`"Season 3: filming starts"`, "“Season 3: filming starts”"} {
				status := Parse(constant.IndirectStatusMarker + " " + text).(IndirectStatus)
				So(status.Site, ShouldBeEmpty)
				So(status.SourceDate, ShouldBeEmpty)
				So(status.Quote, ShouldEqual, "Season 3: filming starts")
				So(status.String(), ShouldEqual, "Season 3: filming starts")
			}
		})

		Convey("A marker with nothing after it is empty", func() {
			So(Parse(constant.IndirectStatusMarker+"   "), ShouldResemble, Empty{})
		})
	})
}

func TestParseBlock(t *testing.T) {
	Convey("Given a key-value block", t, func() {
		Convey("A complete block is scheduled", func() {
			r := Parse(pilotBlock)
			s, ok := r.(Scheduled)
			So(ok, ShouldBeTrue)
			So(s.Season, ShouldEqual, "2")
			So(s.Episode, ShouldEqual, Episode("5"))
			So(s.Name, ShouldEqual, "Pilot")
			So(s.Date.Equal(day(2024, time.January, 5)), ShouldBeTrue)
			So(r.String(), ShouldEqual, "2024-01-05 S2 E5")
		})

		Convey("An episode range renders first and last", func() {
			r := Parse(strings.Replace(pilotBlock, "Episode: 5", "Episode: 3, 4, 5", 1))
			So(r.String(), ShouldEqual, "2024-01-05 S2 E3-5")
		})

		Convey("A non-numeric episode renders quoted", func() {
			r := Parse(strings.Replace(pilotBlock, "Episode: 5", "Episode: Special", 1))
			So(r.String(), ShouldEqual, `2024-01-05 S2 "Special"`)
		})

		Convey("Local Date is used when Date is missing", func() {
			r := Parse("Season: 1\nEpisode: 1\nName: A\nLocal Date: Sun Feb 2, 2025")
			So(r.String(), ShouldEqual, "2025-02-02 S1 E1")
		})

		Convey("Date is preferred over Local Date", func() {
			r := Parse("Local Date: Sun Feb 2, 2025\nSeason: 1\nEpisode: 1\nDate: Sat Feb 1, 2025")
			So(r.String(), ShouldEqual, "2025-02-01 S1 E1")
		})

		Convey("Values may contain colons", func() {
			r := Parse("Name: Part 1: The Return\nSeason: 4\nEpisode: 1\nDate: Jul 4, 2025")
			So(r.(Scheduled).Name, ShouldEqual, "Part 1: The Return")
		})

		Convey("A missing date label is empty, not an error", func() {
			for _, text := range []string{
				"Name: Pilot\nSeason: 2\nEpisode: 5",
				"Countdown: soon",
				"Next Episode",
				"",
			} {
				r := Parse(text)
				So(r, ShouldResemble, Empty{})
				So(Err(r), ShouldBeNil)
			}
		})

		Convey("An unparseable date fails the whole block", func() {
			r := Parse("Name: Pilot\nSeason: 2\nEpisode: 5\nDate: sometime soon")
			So(Err(r), ShouldNotBeNil)

			var dateErr *DateFormatError
			So(errors.As(Err(r), &dateErr), ShouldBeTrue)

			text := r.String()
			So(text, ShouldNotContainSubstring, "Pilot")
			So(text, ShouldNotContainSubstring, "S2")
			So(text, ShouldNotContainSubstring, "E5")
			So(r.AirDate().IsPresent(), ShouldBeFalse)
		})

		Convey("A dated block without season or episode fails", func() {
			r := Parse("Name: Pilot\nSeason: 2\nDate: Jan 5, 2024")
			var missing *MissingLabelError
			So(errors.As(Err(r), &missing), ShouldBeTrue)
			So(missing.Label, ShouldEqual, LabelEpisode)
		})

		Convey("The episode name is optional", func() {
			r := Parse("Season: 2\nEpisode: 5\nDate: Jan 5, 2024")
			So(Err(r), ShouldBeNil)
			So(r.(Scheduled).Name, ShouldBeEmpty)
			So(r.String(), ShouldEqual, "2024-01-05 S2 E5")
		})
	})
}

func TestFields(t *testing.T) {
	Convey("Fields", t, func() {
		fields := Fields("Name: A: B\n  Season :  3 \nno colon here\n: orphan\nName: later")
		So(fields, ShouldResemble, map[string]string{
			"Name":   "A: B",
			"Season": "3",
		})
	})
}
