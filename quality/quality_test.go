package quality_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sammykao/RL-TicketPricing-Agent/quality"
)

func f(v float64) *float64 { return &v }

func TestPricePercentile(t *testing.T) {
	Convey("Given an event's price set", t, func() {
		prices := []float64{10, 20, 30, 40}

		Convey("The percentile is the fraction at or below the price", func() {
			So(quality.PricePercentile(10, prices), ShouldAlmostEqual, 0.25)
			So(quality.PricePercentile(25, prices), ShouldAlmostEqual, 0.5)
			So(quality.PricePercentile(40, prices), ShouldAlmostEqual, 1.0)
		})

		Convey("It is monotonic non-decreasing in price", func() {
			prev := 0.0
			for p := 0.0; p <= 50; p += 5 {
				cur := quality.PricePercentile(p, prices)
				So(cur, ShouldBeGreaterThanOrEqualTo, prev)
				prev = cur
			}
		})

		Convey("An empty set ranks everything at 0", func() {
			So(quality.PricePercentile(99, nil), ShouldEqual, 0)
		})

		Convey("A constant set ranks everything at 0.5", func() {
			constant := []float64{50, 50, 50}
			So(quality.PricePercentile(10, constant), ShouldAlmostEqual, 0.5)
			So(quality.PricePercentile(50, constant), ShouldAlmostEqual, 0.5)
			So(quality.PricePercentile(500, constant), ShouldAlmostEqual, 0.5)
		})
	})
}

func TestClearanceScore(t *testing.T) {
	Convey("Given an event's time-to-event set", t, func() {
		times := []float64{0, 10, 20}

		Convey("Sales closer to the event score higher", func() {
			So(quality.ClearanceScore(f(0), times), ShouldAlmostEqual, 1.0)
			So(quality.ClearanceScore(f(10), times), ShouldAlmostEqual, 0.5)
			So(quality.ClearanceScore(f(20), times), ShouldAlmostEqual, 0.0)
		})

		Convey("It is monotonic non-increasing in time-to-event", func() {
			prev := 2.0
			for tt := 0.0; tt <= 25; tt += 2.5 {
				cur := quality.ClearanceScore(f(tt), times)
				So(cur, ShouldBeLessThanOrEqualTo, prev)
				prev = cur
			}
		})

		Convey("A nil time defaults to 0.5", func() {
			So(quality.ClearanceScore(nil, times), ShouldAlmostEqual, 0.5)
		})

		Convey("An empty window defaults to 0.5", func() {
			So(quality.ClearanceScore(f(5), nil), ShouldAlmostEqual, 0.5)
		})

		Convey("A window of only post-event sales defaults to 0.5", func() {
			So(quality.ClearanceScore(f(5), []float64{-1, -2}), ShouldAlmostEqual, 0.5)
		})

		Convey("A degenerate window defaults to 0.5", func() {
			So(quality.ClearanceScore(f(5), []float64{5, 5}), ShouldAlmostEqual, 0.5)
		})

		Convey("Post-event sales are excluded from the window but still scored", func() {
			mixed := []float64{-5, 0, 10}
			// Window is [0,10]; a sale after the event clamps to 1.
			So(quality.ClearanceScore(f(-5), mixed), ShouldAlmostEqual, 1.0)
			So(quality.ClearanceScore(f(10), mixed), ShouldAlmostEqual, 0.0)
		})
	})
}

func TestScoreEvent(t *testing.T) {
	Convey("Given a batch of an event's sales", t, func() {

		Convey("Scores come back in order and combine both parts", func() {
			tickets := []quality.Ticket{
				{Price: f(100), TimeToEvent: f(20)},
				{Price: f(200), TimeToEvent: f(10)},
			}
			scores := quality.ScoreEvent(tickets, quality.DefaultPriceWeight, quality.DefaultClearanceWeight)
			So(len(scores), ShouldEqual, 2)
			So(scores[0], ShouldAlmostEqual, 0.7*0.5+0.3*0.0)
			So(scores[1], ShouldAlmostEqual, 0.7*1.0+0.3*1.0)
		})

		Convey("A missing price keeps only the clearance portion", func() {
			tickets := []quality.Ticket{
				{Price: nil, TimeToEvent: nil},
				{Price: f(50), TimeToEvent: f(3)},
				{Price: f(80), TimeToEvent: f(9)},
			}
			scores := quality.ScoreEvent(tickets, 0.7, 0.3)
			// Clearance for the nil-time ticket defaults to 0.5; the price
			// weight portion is absent, not redistributed.
			So(scores[0], ShouldAlmostEqual, 0.3*0.5)
		})

		Convey("Every score lies in [0,1] for arbitrary null mixes", func() {
			tickets := []quality.Ticket{
				{},
				{Price: f(1)},
				{TimeToEvent: f(-4)},
				{Price: f(1000), TimeToEvent: f(0.5)},
				{Price: f(-3), TimeToEvent: f(48)},
				{Price: f(1), TimeToEvent: f(48)},
			}
			scores := quality.ScoreEvent(tickets, quality.DefaultPriceWeight, quality.DefaultClearanceWeight)
			So(len(scores), ShouldEqual, len(tickets))
			for _, s := range scores {
				So(s, ShouldBeBetweenOrEqual, 0, 1)
			}
		})

		Convey("Weights need not sum to 1; the result is clamped", func() {
			tickets := []quality.Ticket{
				{Price: f(10), TimeToEvent: f(1)},
				{Price: f(20), TimeToEvent: f(2)},
			}
			scores := quality.ScoreEvent(tickets, 1.5, 1.5)
			for _, s := range scores {
				So(s, ShouldBeBetweenOrEqual, 0, 1)
			}
		})

		Convey("An empty batch yields an empty result", func() {
			So(len(quality.ScoreEvent(nil, 0.7, 0.3)), ShouldEqual, 0)
		})
	})
}
