// Package router answers questions about the passenger table using fixed
// keyword matching and live statistics. It performs no I/O and serves as the
// always-available fallback for the AI escalation layer.
package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/steerage-ai/steerage/internal/charts"
	"github.com/steerage-ai/steerage/internal/dataset"
	"github.com/steerage-ai/steerage/internal/stats"
)

// QueryResult is the per-request answer payload. The router fills Answer and
// Data; the escalation layer attaches the chart fields afterwards.
type QueryResult struct {
	Answer    string      `json:"answer"`
	Data      interface{} `json:"data,omitempty"`
	ChartHTML string      `json:"chart_html,omitempty"`
	ChartType charts.Kind `json:"chart_type,omitempty"`
}

// Topic keyword sets. These are shared with the escalation layer, which uses
// them to gather the statistics subset relevant to a question.
var (
	CountWords  = []string{"total", "how many", "count"}
	GenderWords = []string{"male", "female", "gender"}
	AgeWords    = []string{"age", "old", "young"}
	FareWords   = []string{"fare", "ticket", "price", "cost"}
	EmbarkWords = []string{"embark", "port", "board"}
	ClassWords  = []string{"class", "first", "second", "third"}
)

// route pairs a predicate with its handler. Routes are evaluated in order;
// the first matching predicate wins, making precedence explicit.
type route struct {
	name    string
	match   func(q string) bool
	handler func(q string, d *dataset.Dataset) (QueryResult, error)
}

var routes = []route{
	{
		name:    "counts",
		match:   func(q string) bool { return containsAny(q, CountWords) && strings.Contains(q, "passenger") },
		handler: answerCounts,
	},
	{
		name: "gender",
		match: func(q string) bool {
			if !containsAny(q, GenderWords) {
				return false
			}
			return strings.Contains(q, "survival") ||
				(strings.Contains(q, "percentage") && strings.Contains(q, "male"))
		},
		handler: answerGender,
	},
	{
		name:    "age",
		match:   func(q string) bool { return containsAny(q, AgeWords) && strings.Contains(q, "average") },
		handler: answerAge,
	},
	{
		name:    "fare",
		match:   func(q string) bool { return containsAny(q, FareWords) },
		handler: answerFare,
	},
	{
		name:    "embarkation",
		match:   func(q string) bool { return containsAny(q, EmbarkWords) },
		handler: answerEmbarkation,
	},
	{
		name:    "class",
		match:   func(q string) bool { return containsAny(q, ClassWords) },
		handler: answerClass,
	},
}

const unavailableAnswer = "The passenger dataset is not available right now, so I cannot compute statistics. Please try again later."

// Answer routes a question to the first matching topic handler and composes a
// templated sentence from live statistics. Unmatched questions get a generic
// capability description plus the basic stats.
func Answer(question string, d *dataset.Dataset) QueryResult {
	if d.Empty() {
		return QueryResult{Answer: unavailableAnswer}
	}

	q := strings.ToLower(question)
	for _, r := range routes {
		if !r.match(q) {
			continue
		}
		result, err := r.handler(q, d)
		if err != nil {
			// Stats only fail on an empty dataset, which is handled above.
			return QueryResult{Answer: unavailableAnswer}
		}
		return result
	}

	return answerDefault(d)
}

func answerCounts(_ string, d *dataset.Dataset) (QueryResult, error) {
	basic, err := stats.Basic(d)
	if err != nil {
		return QueryResult{}, err
	}
	return QueryResult{
		Answer: fmt.Sprintf("There were %d passengers on the Titanic.", basic.TotalPassengers),
		Data:   basic,
	}, nil
}

func answerGender(q string, d *dataset.Dataset) (QueryResult, error) {
	gender, err := stats.ByGender(d)
	if err != nil {
		return QueryResult{}, err
	}

	if strings.Contains(q, "percentage") && strings.Contains(q, "male") {
		total := gender.TotalMale + gender.TotalFemale
		pct := float64(gender.TotalMale) / float64(total) * 100
		return QueryResult{
			Answer: fmt.Sprintf("%d passengers were male, which is %s%% of all passengers.",
				gender.TotalMale, stats.FormatRate(pct)),
			Data: gender,
		}, nil
	}

	return QueryResult{
		Answer: fmt.Sprintf("Female survival rate: %s%%, Male survival rate: %s%%",
			stats.FormatRate(gender.FemaleSurvivalRate), stats.FormatRate(gender.MaleSurvivalRate)),
		Data: gender,
	}, nil
}

func answerAge(_ string, d *dataset.Dataset) (QueryResult, error) {
	ages, err := stats.Ages(d)
	if err != nil {
		return QueryResult{}, err
	}
	return QueryResult{
		Answer: fmt.Sprintf("The average age of passengers was %.1f years.", ages.AverageAge),
		Data:   ages,
	}, nil
}

func answerFare(_ string, d *dataset.Dataset) (QueryResult, error) {
	basic, err := stats.Basic(d)
	if err != nil {
		return QueryResult{}, err
	}
	return QueryResult{
		Answer: fmt.Sprintf("The average ticket fare was £%.2f.", basic.AverageFare),
		Data:   basic,
	}, nil
}

func answerEmbarkation(_ string, d *dataset.Dataset) (QueryResult, error) {
	embark, err := stats.Embarkation(d)
	if err != nil {
		return QueryResult{}, err
	}

	// Largest port first, alphabetical on ties, so the answer is stable.
	ports := make([]string, 0, len(embark))
	for port := range embark {
		ports = append(ports, port)
	}
	sort.Slice(ports, func(i, j int) bool {
		if embark[ports[i]].Count != embark[ports[j]].Count {
			return embark[ports[i]].Count > embark[ports[j]].Count
		}
		return ports[i] < ports[j]
	})

	parts := make([]string, 0, len(ports))
	for _, port := range ports {
		parts = append(parts, fmt.Sprintf("%s: %d", port, embark[port].Count))
	}

	return QueryResult{
		Answer: "Passengers embarked from: " + strings.Join(parts, ", "),
		Data:   embark,
	}, nil
}

func answerClass(_ string, d *dataset.Dataset) (QueryResult, error) {
	byClass, err := stats.ByClass(d)
	if err != nil {
		return QueryResult{}, err
	}
	return QueryResult{
		Answer: fmt.Sprintf("Class survival rates: 1st: %s%%, 2nd: %s%%, 3rd: %s%%",
			stats.FormatRate(byClass["class_1"].SurvivalRate),
			stats.FormatRate(byClass["class_2"].SurvivalRate),
			stats.FormatRate(byClass["class_3"].SurvivalRate)),
		Data: byClass,
	}, nil
}

func answerDefault(d *dataset.Dataset) QueryResult {
	result := QueryResult{
		Answer: "I can help you analyze the Titanic dataset. Try asking about passenger demographics, survival rates, ages, fares, or embarkation ports.",
	}
	if basic, err := stats.Basic(d); err == nil {
		result.Data = basic
	}
	return result
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
