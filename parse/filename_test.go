package parse_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sammykao/RL-TicketPricing-Agent/parse"
)

func TestFilename(t *testing.T) {
	Convey("Given sale-file names in the known conventions", t, func() {

		Convey("The full form parses every field", func() {
			id, err := parse.Filename("Cavaliers_Celtics_2024_05_07_Tue_700PM.csv")
			So(err, ShouldBeNil)
			So(id.AwayTeam, ShouldEqual, "Cavaliers")
			So(id.HomeTeam, ShouldEqual, "Celtics")
			So(id.Year, ShouldEqual, 2024)
			So(id.Month, ShouldEqual, 5)
			So(id.Day, ShouldEqual, 7)
			So(id.DayOfWeek, ShouldNotBeNil)
			So(*id.DayOfWeek, ShouldEqual, "Tue")
			So(id.RawTime, ShouldEqual, "700PM")
		})

		Convey("The extension is optional", func() {
			id, err := parse.Filename("Cavaliers_Celtics_2024_05_07_Tue_700PM")
			So(err, ShouldBeNil)
			So(id.AwayTeam, ShouldEqual, "Cavaliers")
			So(id.RawTime, ShouldEqual, "700PM")
		})

		Convey("A missing day-of-week resolves to absent", func() {
			id, err := parse.Filename("Mavs_Celtics_2024_03_01_730PM.csv")
			So(err, ShouldBeNil)
			So(id.AwayTeam, ShouldEqual, "Mavs")
			So(id.HomeTeam, ShouldEqual, "Celtics")
			So(id.Year, ShouldEqual, 2024)
			So(id.Month, ShouldEqual, 3)
			So(id.Day, ShouldEqual, 1)
			So(id.DayOfWeek, ShouldBeNil)
			So(id.RawTime, ShouldEqual, "730PM")
		})

		Convey("A 3-digit year is corrected by appending 4", func() {
			id, err := parse.Filename("Warriors_Celtics_202_03_03_Sun_330PM.csv")
			So(err, ShouldBeNil)
			So(id.Year, ShouldEqual, 2024)
			So(id.Month, ShouldEqual, 3)
			So(id.Day, ShouldEqual, 3)
			So(*id.DayOfWeek, ShouldEqual, "Sun")
		})

		Convey("A 2-digit year is kept as-is", func() {
			id, err := parse.Filename("Warriors_Celtics_24_03_03_Sun_330PM.csv")
			So(err, ShouldBeNil)
			So(id.Year, ShouldEqual, 24)
		})

		Convey("Team segments absorb underscores only when the tail requires it", func() {
			id, err := parse.Filename("Trail_Blazers_Celtics_2024_05_07_Tue_700PM.csv")
			So(err, ShouldBeNil)
			So(id.AwayTeam, ShouldEqual, "Trail")
			So(id.HomeTeam, ShouldEqual, "Blazers_Celtics")
		})

		Convey("AM/PM is case-insensitive", func() {
			id, err := parse.Filename("Cavaliers_Celtics_2024_05_07_Tue_700pm.csv")
			So(err, ShouldBeNil)
			So(id.RawTime, ShouldEqual, "700pm")
		})

		Convey("Unmatched names fail without a partial identity", func() {
			for _, name := range []string{
				"notamatch.csv",
				"Celtics_2024_05_07_700PM.csv",                // only one team segment
				"Warriors_Celtics_202_03_03_330PM.csv",        // typo year needs a day-of-week
				"Cavaliers_Celtics_2024_05_07_Tue.csv",        // no time token
				"Cavaliers_Celtics_2024_05_07_Tues_700PM.csv", // 4-letter day-of-week
			} {
				id, err := parse.Filename(name)
				So(err, ShouldNotBeNil)
				So(id, ShouldBeNil)
			}
		})
	})
}
