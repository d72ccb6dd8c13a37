package charts

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/steerage-ai/steerage/internal/dataset"
	"github.com/steerage-ai/steerage/internal/stats"
)

// trace and layout mirror the subset of the Plotly figure model the three
// renderers need. They are JSON-encoded into the emitted HTML snippet.
type trace struct {
	Type   string      `json:"type"`
	X      interface{} `json:"x,omitempty"`
	Y      []float64   `json:"y,omitempty"`
	Name   string      `json:"name,omitempty"`
	NBinsX int         `json:"nbinsx,omitempty"`
	Marker *marker     `json:"marker,omitempty"`
}

// marker.Color holds either a single color string or one color per bar.
type marker struct {
	Color interface{} `json:"color,omitempty"`
}

type layout struct {
	Title  string `json:"title"`
	XAxis  axis   `json:"xaxis"`
	YAxis  axis   `json:"yaxis"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type axis struct {
	Title string `json:"title"`
}

var chartTemplate = template.Must(template.New("chart").Parse(`<div id="{{.DivID}}"></div>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js" charset="utf-8"></script>
<script>Plotly.newPlot({{.DivID}}, {{.Data}}, {{.Layout}}, {responsive: true});</script>
`))

// Render produces the self-contained HTML snippet for a chart kind. It
// returns stats.ErrNoData when the dataset is empty or, for the age
// histogram, when no passenger has a recorded age.
func Render(kind Kind, d *dataset.Dataset) (string, error) {
	switch kind {
	case KindAgeHistogram:
		return renderAgeHistogram(d)
	case KindSurvivalByClass:
		return renderSurvivalByClass(d)
	case KindGenderSurvival:
		return renderGenderSurvival(d)
	case KindNone:
		return "", nil
	}
	return "", fmt.Errorf("unknown chart kind %q", kind)
}

func renderAgeHistogram(d *dataset.Dataset) (string, error) {
	if d.Empty() {
		return "", stats.ErrNoData
	}

	var ages []float64
	for _, p := range d.Passengers() {
		if p.Age != nil {
			ages = append(ages, *p.Age)
		}
	}
	if len(ages) == 0 {
		return "", stats.ErrNoData
	}

	return renderHTML("titanic-age-histogram",
		[]trace{{
			Type:   "histogram",
			X:      ages,
			NBinsX: 20,
			Marker: &marker{Color: "#1f77b4"},
		}},
		layout{
			Title:  "Age Distribution of Titanic Passengers",
			XAxis:  axis{Title: "Age"},
			YAxis:  axis{Title: "Count"},
			Height: 400,
			Width:  600,
		})
}

func renderSurvivalByClass(d *dataset.Dataset) (string, error) {
	byClass, err := stats.ByClass(d)
	if err != nil {
		return "", err
	}

	labels := []string{"1st Class", "2nd Class", "3rd Class"}
	rates := []float64{
		byClass["class_1"].SurvivalRate,
		byClass["class_2"].SurvivalRate,
		byClass["class_3"].SurvivalRate,
	}

	return renderHTML("titanic-class-survival",
		[]trace{{
			Type:   "bar",
			X:      labels,
			Y:      rates,
			Name:   "Survival Rate (%)",
			Marker: &marker{Color: []string{"#2E86AB", "#A23B72", "#F18F01"}},
		}},
		layout{
			Title:  "Survival Rate by Passenger Class",
			XAxis:  axis{Title: "Passenger Class"},
			YAxis:  axis{Title: "Survival Rate (%)"},
			Height: 400,
			Width:  600,
		})
}

func renderGenderSurvival(d *dataset.Dataset) (string, error) {
	byGender, err := stats.ByGender(d)
	if err != nil {
		return "", err
	}

	return renderHTML("titanic-gender-survival",
		[]trace{{
			Type:   "bar",
			X:      []string{"Female", "Male"},
			Y:      []float64{byGender.FemaleSurvivalRate, byGender.MaleSurvivalRate},
			Marker: &marker{Color: []string{"#E91E63", "#2196F3"}},
		}},
		layout{
			Title:  "Survival Rate by Gender",
			XAxis:  axis{Title: "Gender"},
			YAxis:  axis{Title: "Survival Rate (%)"},
			Height: 400,
			Width:  600,
		})
}

func renderHTML(divID string, data []trace, lay layout) (string, error) {
	var sb strings.Builder
	err := chartTemplate.Execute(&sb, map[string]interface{}{
		"DivID":  divID,
		"Data":   data,
		"Layout": lay,
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
