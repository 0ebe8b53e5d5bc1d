package insights

import (
	"math"
	"math/rand"
	"time"

	"behavior-insights/internal/models"
)

const (
	// DefaultTrendBuckets is the usual chart width: one bucket per day.
	DefaultTrendBuckets = 7

	trendFloor         = 10
	trendJitterPct     = 0.15
	trendEmptyBaseline = 100
	trendLabelLayout   = "Jan 2"
)

// TrendGenerator fabricates a day-bucketed series around a baseline value.
// The provider exposes no historical snapshots, so the trend chart is
// synthetic by construction; the output is flagged Synthetic so consumers
// cannot mistake it for real history.
type TrendGenerator struct {
	now func() time.Time
	rng *rand.Rand
}

func NewTrendGenerator() *TrendGenerator {
	return NewTrendGeneratorWithSource(time.Now, rand.NewSource(time.Now().UnixNano()))
}

// NewTrendGeneratorWithSource injects the clock and randomness source,
// mainly for deterministic tests.
func NewTrendGeneratorWithSource(now func() time.Time, source rand.Source) *TrendGenerator {
	return &TrendGenerator{
		now: now,
		rng: rand.New(source),
	}
}

// Generate produces exactly buckets points, one per day walking backward
// from today, oldest first. Each value is max(10, base+jitter) where base
// is the baseline (or 100 when the baseline is not positive) and jitter is
// a bounded random value within ±15% of base. Non-positive buckets falls
// back to DefaultTrendBuckets.
func (g *TrendGenerator) Generate(baseline float64, buckets int) models.TrendSeries {
	if buckets <= 0 {
		buckets = DefaultTrendBuckets
	}

	base := baseline
	if base <= 0 {
		base = trendEmptyBaseline
	}

	today := g.now().UTC()
	points := make([]models.RankedEntry, 0, buckets)
	for i := buckets - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		jitter := (g.rng.Float64()*2 - 1) * trendJitterPct * base
		value := math.Max(trendFloor, math.Round(base+jitter))
		points = append(points, models.RankedEntry{
			Label: day.Format(trendLabelLayout),
			Value: value,
		})
	}

	return models.TrendSeries{
		Synthetic: true,
		Points:    points,
	}
}
