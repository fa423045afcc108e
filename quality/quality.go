// Package quality derives a per-sale quality score from an event's resale
// market: how a sale's price ranks within the event, and how close to the
// event it cleared.
package quality

import "math"

// Default combination weights. They are not required to sum to 1; the final
// score is clamped to [0,1] instead of renormalizing.
const (
	DefaultPriceWeight     = 0.7
	DefaultClearanceWeight = 0.3
)

// Ticket carries the two sale fields the scorer reads. Nil means the source
// value was absent or unparseable.
type Ticket struct {
	Price       *float64
	TimeToEvent *float64 // hours; negative = sold after the event
}

// PricePercentile ranks a price within an event's price set: the fraction of
// prices at or below it. An empty set ranks everything at 0; a constant set
// ranks everything at 0.5 rather than a meaningless 1.0.
func PricePercentile(price float64, prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}

	constant := true
	for _, p := range prices[1:] {
		if p != prices[0] {
			constant = false
			break
		}
	}
	if constant {
		return 0.5
	}

	atOrBelow := 0
	for _, p := range prices {
		if p <= price {
			atOrBelow++
		}
	}
	return float64(atOrBelow) / float64(len(prices))
}

// ClearanceScore normalizes a sale's time-to-event against the event's
// pre-event sale window: 1 at the window's closest-to-event sale, 0 at its
// earliest. Sales after the event (negative hours) are excluded from the
// window but still scored against it. A nil time, an empty window, or a
// degenerate window all yield the neutral 0.5.
func ClearanceScore(timeToEvent *float64, times []float64) float64 {
	if timeToEvent == nil {
		return 0.5
	}

	first := true
	var minT, maxT float64
	for _, t := range times {
		if t < 0 {
			continue
		}
		if first {
			minT, maxT = t, t
			first = false
			continue
		}
		minT = math.Min(minT, t)
		maxT = math.Max(maxT, t)
	}
	if first || maxT == minT {
		return 0.5
	}

	return clamp01(1 - (*timeToEvent-minT)/(maxT-minT))
}

// ScoreEvent computes one quality score per ticket, in input order, each in
// [0,1]. Both sub-scores are defined relative to the full event population,
// so the whole batch must be present; rows cannot be scored one at a time.
// A ticket without a price keeps only the clearance portion of its score;
// the price portion is absent, not redistributed.
func ScoreEvent(tickets []Ticket, priceWeight, clearanceWeight float64) []float64 {
	prices := make([]float64, 0, len(tickets))
	times := make([]float64, 0, len(tickets))
	for _, t := range tickets {
		if t.Price != nil {
			prices = append(prices, *t.Price)
		}
		if t.TimeToEvent != nil {
			times = append(times, *t.TimeToEvent)
		}
	}

	scores := make([]float64, len(tickets))
	for i, t := range tickets {
		clearance := ClearanceScore(t.TimeToEvent, times)
		if t.Price == nil {
			scores[i] = clearance * clearanceWeight
			continue
		}
		percentile := PricePercentile(*t.Price, prices)
		scores[i] = clamp01(priceWeight*percentile + clearanceWeight*clearance)
	}
	return scores
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
