package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/steerage-ai/steerage/internal/dataset"
)

// ErrNoData marks statistics requested against an empty dataset. Every
// function in this package returns it rather than computing on no rows.
var ErrNoData = errors.New("statistics unavailable: empty dataset")

// BasicStats is the dataset-level summary attached to most answers.
type BasicStats struct {
	TotalPassengers  int     `json:"total_passengers"`
	Survivors        int     `json:"survivors"`
	SurvivalRate     float64 `json:"survival_rate"`
	MalePassengers   int     `json:"male_passengers"`
	FemalePassengers int     `json:"female_passengers"`
	MalePercentage   float64 `json:"male_percentage"`
	AverageAge       float64 `json:"average_age"`
	AverageFare      float64 `json:"average_fare"`
	Classes          []int   `json:"classes"`
}

// GenderSurvival breaks survival down by sex.
type GenderSurvival struct {
	MaleSurvivalRate   float64 `json:"male_survival_rate"`
	FemaleSurvivalRate float64 `json:"female_survival_rate"`
	MaleSurvivors      int     `json:"male_survivors"`
	FemaleSurvivors    int     `json:"female_survivors"`
	TotalMale          int     `json:"total_male"`
	TotalFemale        int     `json:"total_female"`
}

// ClassGroup is the per-class slice of a survival breakdown.
type ClassGroup struct {
	SurvivalRate float64 `json:"survival_rate"`
	Survivors    int     `json:"survivors"`
	Total        int     `json:"total"`
}

// AgeRanges holds the fixed, non-overlapping age bucket counts.
type AgeRanges struct {
	Children0To12 int `json:"children_0_12"`
	Teens13To19   int `json:"teens_13_19"`
	Adults20To59  int `json:"adults_20_59"`
	Seniors60Plus int `json:"seniors_60_plus"`
}

// AgeStats aggregates the non-missing ages.
type AgeStats struct {
	AverageAge float64   `json:"average_age"`
	MedianAge  float64   `json:"median_age"`
	MinAge     float64   `json:"min_age"`
	MaxAge     float64   `json:"max_age"`
	AgeStd     float64   `json:"age_std"`
	AgeRanges  AgeRanges `json:"age_ranges"`
}

// PortGroup is the per-port slice of the embarkation breakdown.
type PortGroup struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Basic computes the dataset-level summary.
func Basic(d *dataset.Dataset) (BasicStats, error) {
	if d.Empty() {
		return BasicStats{}, ErrNoData
	}

	total := d.Len()
	var survivors, males, females int
	var ageSum, fareSum float64
	var ageCount int
	for _, p := range d.Passengers() {
		if p.Survived {
			survivors++
		}
		switch p.Sex {
		case "male":
			males++
		case "female":
			females++
		}
		if p.Age != nil {
			ageSum += *p.Age
			ageCount++
		}
		fareSum += p.Fare
	}

	var avgAge float64
	if ageCount > 0 {
		avgAge = ageSum / float64(ageCount)
	}

	return BasicStats{
		TotalPassengers:  total,
		Survivors:        survivors,
		SurvivalRate:     float64(survivors) / float64(total) * 100,
		MalePassengers:   males,
		FemalePassengers: females,
		MalePercentage:   float64(males) / float64(total) * 100,
		AverageAge:       avgAge,
		AverageFare:      fareSum / float64(total),
		Classes:          d.Classes(),
	}, nil
}

// ByGender computes survival rates per sex.
func ByGender(d *dataset.Dataset) (GenderSurvival, error) {
	if d.Empty() {
		return GenderSurvival{}, ErrNoData
	}

	groups, err := SurvivalBy(d, DimensionSex)
	if err != nil {
		return GenderSurvival{}, err
	}

	male := groups["male"]
	female := groups["female"]
	return GenderSurvival{
		MaleSurvivalRate:   male.SurvivalRate,
		FemaleSurvivalRate: female.SurvivalRate,
		MaleSurvivors:      male.SurvivorCount,
		FemaleSurvivors:    female.SurvivorCount,
		TotalMale:          male.Count,
		TotalFemale:        female.Count,
	}, nil
}

// ByClass computes survival rates per passenger class, keyed "class_1" etc.
func ByClass(d *dataset.Dataset) (map[string]ClassGroup, error) {
	if d.Empty() {
		return nil, ErrNoData
	}

	groups, err := SurvivalBy(d, DimensionClass)
	if err != nil {
		return nil, err
	}

	result := make(map[string]ClassGroup, len(groups))
	for key, g := range groups {
		result["class_"+key] = ClassGroup{
			SurvivalRate: g.SurvivalRate,
			Survivors:    g.SurvivorCount,
			Total:        g.Count,
		}
	}
	return result, nil
}

// Ages aggregates the non-missing ages. Passengers without a recorded age are
// excluded here but still count toward BasicStats totals.
func Ages(d *dataset.Dataset) (AgeStats, error) {
	if d.Empty() {
		return AgeStats{}, ErrNoData
	}

	var ages []float64
	for _, p := range d.Passengers() {
		if p.Age != nil {
			ages = append(ages, *p.Age)
		}
	}
	if len(ages) == 0 {
		return AgeStats{}, ErrNoData
	}

	sorted := append([]float64(nil), ages...)
	sort.Float64s(sorted)

	var ranges AgeRanges
	for _, age := range ages {
		switch {
		case age <= 12:
			ranges.Children0To12++
		case age <= 19:
			ranges.Teens13To19++
		case age <= 59:
			ranges.Adults20To59++
		default:
			ranges.Seniors60Plus++
		}
	}

	return AgeStats{
		AverageAge: mean(ages),
		MedianAge:  median(sorted),
		MinAge:     sorted[0],
		MaxAge:     sorted[len(sorted)-1],
		AgeStd:     sampleStdDev(ages),
		AgeRanges:  ranges,
	}, nil
}

// Embarkation counts passengers per port of embarkation, mapping the C/Q/S
// codes to port names. Unknown codes pass through unchanged.
func Embarkation(d *dataset.Dataset) (map[string]PortGroup, error) {
	if d.Empty() {
		return nil, ErrNoData
	}

	total := d.Len()
	counts := make(map[string]int)
	for _, p := range d.Passengers() {
		if p.Embarked == "" {
			continue
		}
		counts[portName(p.Embarked)]++
	}

	result := make(map[string]PortGroup, len(counts))
	for port, count := range counts {
		result[port] = PortGroup{
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		}
	}
	return result, nil
}

func portName(code string) string {
	switch code {
	case "C":
		return "Cherbourg"
	case "Q":
		return "Queenstown"
	case "S":
		return "Southampton"
	}
	return code
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// median expects its input already sorted.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func sampleStdDev(vals []float64) float64 {
	n := len(vals)
	if n < 2 {
		return 0
	}
	m := mean(vals)
	var sq float64
	for _, v := range vals {
		sq += (v - m) * (v - m)
	}
	return math.Sqrt(sq / float64(n-1))
}

// FormatRate renders a percentage with one decimal digit, the display
// precision used everywhere rates appear in answers.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f", rate)
}
