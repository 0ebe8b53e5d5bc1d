package insights

import (
	"math"

	"behavior-insights/internal/models"
)

//go:generate mockgen -source=dimension_aggregator.go -destination=./mocks/dimension_aggregator_mock.go -package=mocks
type DimensionAggregator interface {
	// Aggregate produces one breakdown entry per distinct dimension value in
	// group, reading fields as directed by spec. Records are visited in the
	// group's given order and the output preserves first-seen order of
	// dimension values; no sort is applied here (ranking is a separate
	// concern). Records sharing a dimension value have their numeric fields
	// summed, never replaced.
	Aggregate(group models.MetricGroup, spec models.FieldSpec) []models.DimensionBreakdown
}

type dimensionAggregator struct{}

func NewDimensionAggregator() DimensionAggregator {
	return &dimensionAggregator{}
}

// entrySums accumulates every numeric field for one dimension value. Ratio
// numerators/denominators resolve against this map, so the sessions and
// users fields are accumulated here too before being split out.
type entrySums map[string]float64

func (a *dimensionAggregator) Aggregate(group models.MetricGroup, spec models.FieldSpec) []models.DimensionBreakdown {
	order := make([]string, 0, len(group.Records))
	sumsByValue := make(map[string]entrySums)

	for _, record := range group.Records {
		dimensionValue := record.Field(spec.DimensionField)

		sums, seen := sumsByValue[dimensionValue]
		if !seen {
			sums = make(entrySums)
			sumsByValue[dimensionValue] = sums
			order = append(order, dimensionValue)
		}

		if spec.SessionsField != "" {
			sums[spec.SessionsField] += float64(NormalizeInt(record.Field(spec.SessionsField)))
		}
		if spec.UsersField != "" {
			sums[spec.UsersField] += float64(NormalizeInt(record.Field(spec.UsersField)))
		}
		for _, field := range spec.SumFields {
			sums[field] += NormalizeFloat(record.Field(field))
		}
	}

	breakdowns := make([]models.DimensionBreakdown, 0, len(order))
	for _, dimensionValue := range order {
		sums := sumsByValue[dimensionValue]

		breakdown := models.DimensionBreakdown{
			DimensionValue: dimensionValue,
		}
		if spec.SessionsField != "" {
			breakdown.Sessions = int64(sums[spec.SessionsField])
		}
		if spec.UsersField != "" {
			breakdown.Users = int64(sums[spec.UsersField])
		}
		if len(spec.SumFields) > 0 {
			breakdown.Sums = make(map[string]float64, len(spec.SumFields))
			for _, field := range spec.SumFields {
				breakdown.Sums[field] = sums[field]
			}
		}
		if len(spec.Ratios) > 0 {
			breakdown.Derived = make(map[string]float64, len(spec.Ratios))
			for _, ratio := range spec.Ratios {
				breakdown.Derived[ratio.Name] = percentageRatio(sums[ratio.Numerator], sums[ratio.Denominator])
			}
		}

		breakdowns = append(breakdowns, breakdown)
	}

	return breakdowns
}

// percentageRatio computes round(num/den*100) clamped to [0,100].
// A zero denominator yields 0, never an error or non-finite value.
func percentageRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	ratio := math.Round(num / den * 100)
	if ratio < 0 {
		return 0
	}
	if ratio > 100 {
		return 100
	}
	return ratio
}
