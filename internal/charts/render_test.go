package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/steerage-ai/steerage/internal/dataset"
	"github.com/steerage-ai/steerage/internal/stats"
)

func age(v float64) *float64 { return &v }

func chartFixture() *dataset.Dataset {
	return dataset.New([]dataset.Passenger{
		{ID: 1, Survived: true, Sex: "female", Class: 1, Age: age(29), Fare: 100, Embarked: "S"},
		{ID: 2, Survived: false, Sex: "male", Class: 3, Age: age(35), Fare: 7.25, Embarked: "S"},
		{ID: 3, Survived: true, Sex: "female", Class: 2, Age: age(8), Fare: 20, Embarked: "C"},
		{ID: 4, Survived: false, Sex: "male", Class: 1, Age: age(62), Fare: 80, Embarked: "Q"},
	})
}

func TestRenderAgeHistogram(t *testing.T) {
	html, err := Render(KindAgeHistogram, chartFixture())
	assert.NoError(t, err)
	assert.Contains(t, html, "titanic-age-histogram")
	assert.Contains(t, html, "Age Distribution of Titanic Passengers")
	assert.Contains(t, html, "histogram")
	assert.Contains(t, html, "cdn.plot.ly")
}

func TestRenderSurvivalByClass(t *testing.T) {
	html, err := Render(KindSurvivalByClass, chartFixture())
	assert.NoError(t, err)
	assert.Contains(t, html, "titanic-class-survival")
	assert.Contains(t, html, "Survival Rate by Passenger Class")
	assert.Contains(t, html, "1st Class")
}

func TestRenderGenderSurvival(t *testing.T) {
	html, err := Render(KindGenderSurvival, chartFixture())
	assert.NoError(t, err)
	assert.Contains(t, html, "titanic-gender-survival")
	assert.Contains(t, html, "Survival Rate by Gender")
	assert.Contains(t, html, "Female")
}

func TestRenderNone(t *testing.T) {
	html, err := Render(KindNone, chartFixture())
	assert.NoError(t, err)
	assert.Empty(t, html)
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := Render(Kind("pie"), chartFixture())
	assert.Error(t, err)
}

func TestRenderEmptyDataset(t *testing.T) {
	for _, kind := range []Kind{KindAgeHistogram, KindSurvivalByClass, KindGenderSurvival} {
		_, err := Render(kind, dataset.New(nil))
		assert.ErrorIs(t, err, stats.ErrNoData)
	}
}

func TestRenderAgeHistogramNoKnownAges(t *testing.T) {
	d := dataset.New([]dataset.Passenger{
		{ID: 1, Sex: "male", Class: 1},
	})
	_, err := Render(KindAgeHistogram, d)
	assert.ErrorIs(t, err, stats.ErrNoData)
}
