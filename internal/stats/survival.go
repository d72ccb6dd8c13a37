package stats

import (
	"fmt"
	"strconv"

	"github.com/steerage-ai/steerage/internal/dataset"
)

// Dimension selects the grouping axis for SurvivalBy.
type Dimension string

const (
	DimensionSex    Dimension = "sex"
	DimensionClass  Dimension = "class"
	DimensionAge    Dimension = "age_bucket"
	DimensionEmbark Dimension = "embark_port"
)

// Group is one category of a survival breakdown.
type Group struct {
	Count         int     `json:"count"`
	SurvivorCount int     `json:"survivor_count"`
	SurvivalRate  float64 `json:"survival_rate"`
}

// SurvivalBy groups the dataset along the given dimension and computes
// per-category counts and survival rates. Passengers whose value for the
// dimension is missing (unknown age, blank embarkation) are grouped under
// their own category so that group counts always partition the full table.
func SurvivalBy(d *dataset.Dataset, dim Dimension) (map[string]Group, error) {
	if d.Empty() {
		return nil, ErrNoData
	}

	keyFn, err := dimensionKey(dim)
	if err != nil {
		return nil, err
	}

	type tally struct {
		count     int
		survivors int
	}
	tallies := make(map[string]*tally)
	for _, p := range d.Passengers() {
		key := keyFn(p)
		t, ok := tallies[key]
		if !ok {
			t = &tally{}
			tallies[key] = t
		}
		t.count++
		if p.Survived {
			t.survivors++
		}
	}

	groups := make(map[string]Group, len(tallies))
	for key, t := range tallies {
		groups[key] = Group{
			Count:         t.count,
			SurvivorCount: t.survivors,
			SurvivalRate:  float64(t.survivors) / float64(t.count) * 100,
		}
	}
	return groups, nil
}

func dimensionKey(dim Dimension) (func(dataset.Passenger) string, error) {
	switch dim {
	case DimensionSex:
		return func(p dataset.Passenger) string { return p.Sex }, nil
	case DimensionClass:
		return func(p dataset.Passenger) string { return strconv.Itoa(p.Class) }, nil
	case DimensionAge:
		return func(p dataset.Passenger) string { return ageBucket(p.Age) }, nil
	case DimensionEmbark:
		return func(p dataset.Passenger) string {
			if p.Embarked == "" {
				return "unknown"
			}
			return portName(p.Embarked)
		}, nil
	}
	return nil, fmt.Errorf("unknown dimension %q", dim)
}

func ageBucket(age *float64) string {
	if age == nil {
		return "unknown"
	}
	switch {
	case *age <= 12:
		return "children_0_12"
	case *age <= 19:
		return "teens_13_19"
	case *age <= 59:
		return "adults_20_59"
	default:
		return "seniors_60_plus"
	}
}
