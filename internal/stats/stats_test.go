package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/steerage-ai/steerage/internal/dataset"
)

func age(v float64) *float64 { return &v }

// fixture returns a six-passenger table exercising every dimension: both
// sexes, all three classes, a missing age, and a missing embarkation port.
func fixture() *dataset.Dataset {
	return dataset.New([]dataset.Passenger{
		{ID: 1, Survived: true, Sex: "female", Class: 1, Age: age(29), Fare: 100, Embarked: "S"},
		{ID: 2, Survived: false, Sex: "male", Class: 3, Age: age(35), Fare: 7.25, Embarked: "S"},
		{ID: 3, Survived: true, Sex: "female", Class: 2, Age: age(8), Fare: 20, Embarked: "C"},
		{ID: 4, Survived: false, Sex: "male", Class: 1, Age: age(62), Fare: 80, Embarked: "Q"},
		{ID: 5, Survived: true, Sex: "male", Class: 3, Age: nil, Fare: 8, Embarked: ""},
		{ID: 6, Survived: false, Sex: "female", Class: 3, Age: age(17), Fare: 9, Embarked: "S"},
	})
}

func TestBasic(t *testing.T) {
	basic, err := Basic(fixture())
	assert.NoError(t, err)

	assert.Equal(t, 6, basic.TotalPassengers)
	assert.Equal(t, 3, basic.Survivors)
	assert.InDelta(t, 50.0, basic.SurvivalRate, 0.001)
	assert.Equal(t, 3, basic.MalePassengers)
	assert.Equal(t, 3, basic.FemalePassengers)
	assert.InDelta(t, 50.0, basic.MalePercentage, 0.001)
	assert.InDelta(t, 30.2, basic.AverageAge, 0.001)
	assert.InDelta(t, (100+7.25+20+80+8+9)/6, basic.AverageFare, 0.001)
	assert.Equal(t, []int{1, 2, 3}, basic.Classes)
}

func TestBasicSurvivalRateFormula(t *testing.T) {
	basic, err := Basic(fixture())
	assert.NoError(t, err)

	// survival_rate == 100 * survivors / total
	expected := 100 * float64(basic.Survivors) / float64(basic.TotalPassengers)
	assert.InDelta(t, expected, basic.SurvivalRate, 0.0001)
}

func TestBasicReferenceScenario(t *testing.T) {
	// 891-row reference dataset with 342 survivors rounds to 38.4%.
	passengers := make([]dataset.Passenger, 891)
	for i := range passengers {
		passengers[i] = dataset.Passenger{ID: i + 1, Sex: "male", Class: 3, Survived: i < 342}
	}

	basic, err := Basic(dataset.New(passengers))
	assert.NoError(t, err)
	assert.Equal(t, "38.4", FormatRate(basic.SurvivalRate))
}

func TestBasicEmptyDataset(t *testing.T) {
	_, err := Basic(dataset.New(nil))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestByGender(t *testing.T) {
	gender, err := ByGender(fixture())
	assert.NoError(t, err)

	assert.Equal(t, 3, gender.TotalMale)
	assert.Equal(t, 3, gender.TotalFemale)
	assert.Equal(t, 1, gender.MaleSurvivors)
	assert.Equal(t, 2, gender.FemaleSurvivors)
	assert.InDelta(t, 100.0/3, gender.MaleSurvivalRate, 0.001)
	assert.InDelta(t, 200.0/3, gender.FemaleSurvivalRate, 0.001)
}

func TestByClass(t *testing.T) {
	byClass, err := ByClass(fixture())
	assert.NoError(t, err)

	assert.Len(t, byClass, 3)
	assert.Equal(t, 2, byClass["class_1"].Total)
	assert.Equal(t, 1, byClass["class_1"].Survivors)
	assert.InDelta(t, 50.0, byClass["class_1"].SurvivalRate, 0.001)
	assert.InDelta(t, 100.0, byClass["class_2"].SurvivalRate, 0.001)
	assert.Equal(t, 3, byClass["class_3"].Total)
	assert.InDelta(t, 100.0/3, byClass["class_3"].SurvivalRate, 0.001)
}

func TestAges(t *testing.T) {
	ages, err := Ages(fixture())
	assert.NoError(t, err)

	assert.InDelta(t, 30.2, ages.AverageAge, 0.001)
	assert.InDelta(t, 29, ages.MedianAge, 0.001)
	assert.InDelta(t, 8, ages.MinAge, 0.001)
	assert.InDelta(t, 62, ages.MaxAge, 0.001)
	assert.InDelta(t, 20.6325, ages.AgeStd, 0.001)

	assert.Equal(t, 1, ages.AgeRanges.Children0To12)
	assert.Equal(t, 1, ages.AgeRanges.Teens13To19)
	assert.Equal(t, 2, ages.AgeRanges.Adults20To59)
	assert.Equal(t, 1, ages.AgeRanges.Seniors60Plus)
}

func TestAgeBucketsPartitionKnownAges(t *testing.T) {
	d := fixture()
	ages, err := Ages(d)
	assert.NoError(t, err)

	var known int
	for _, p := range d.Passengers() {
		if p.Age != nil {
			known++
		}
	}
	sum := ages.AgeRanges.Children0To12 + ages.AgeRanges.Teens13To19 +
		ages.AgeRanges.Adults20To59 + ages.AgeRanges.Seniors60Plus
	assert.Equal(t, known, sum)
}

func TestAgesAllMissing(t *testing.T) {
	d := dataset.New([]dataset.Passenger{
		{ID: 1, Sex: "male", Class: 1},
		{ID: 2, Sex: "female", Class: 2},
	})
	_, err := Ages(d)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestEmbarkation(t *testing.T) {
	embark, err := Embarkation(fixture())
	assert.NoError(t, err)

	assert.Len(t, embark, 3)
	assert.Equal(t, 3, embark["Southampton"].Count)
	assert.Equal(t, 1, embark["Cherbourg"].Count)
	assert.Equal(t, 1, embark["Queenstown"].Count)
	// Percentages are against the full table, missing ports included.
	assert.InDelta(t, 50.0, embark["Southampton"].Percentage, 0.001)
}

func TestEmbarkationUnknownCodePassesThrough(t *testing.T) {
	d := dataset.New([]dataset.Passenger{
		{ID: 1, Sex: "male", Class: 1, Embarked: "X"},
		{ID: 2, Sex: "male", Class: 1, Embarked: "S"},
	})
	embark, err := Embarkation(d)
	assert.NoError(t, err)
	assert.Equal(t, 1, embark["X"].Count)
	assert.Equal(t, 1, embark["Southampton"].Count)
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "38.4", FormatRate(38.3838))
	assert.Equal(t, "0.0", FormatRate(0))
	assert.Equal(t, "100.0", FormatRate(100))
}
