package charts

import "strings"

// Kind identifies one of the fixed renderable chart types. Each kind maps 1:1
// to a renderer in this package.
type Kind string

const (
	KindNone            Kind = ""
	KindAgeHistogram    Kind = "age_histogram"
	KindSurvivalByClass Kind = "survival_by_class"
	KindGenderSurvival  Kind = "gender_survival"
)

var vizVerbs = []string{"chart", "graph", "plot", "histogram", "show", "visualize", "display"}

var (
	ageWords    = []string{"age"}
	classWords  = []string{"class", "survival"}
	genderWords = []string{"gender", "male", "female"}
)

// Select decides which chart, if any, accompanies an answer. The decision is
// deterministic: explicit visualization requests are checked first, then
// implicit topic combinations, with age-related keywords taking precedence
// over class/survival and gender at each level. The answer text is accepted
// for interface stability but the decision is driven by the question alone.
func Select(question, answer string) Kind {
	_ = answer
	q := strings.ToLower(question)

	if containsAny(q, vizVerbs) {
		switch {
		case containsAny(q, ageWords):
			return KindAgeHistogram
		case containsAny(q, classWords):
			return KindSurvivalByClass
		case containsAny(q, genderWords):
			return KindGenderSurvival
		}
	}

	switch {
	case containsAny(q, ageWords) && strings.Contains(q, "distribution"):
		return KindAgeHistogram
	case strings.Contains(q, "class") && (strings.Contains(q, "survival") || strings.Contains(q, "survive")):
		return KindSurvivalByClass
	case containsAny(q, genderWords) && strings.Contains(q, "survival"):
		return KindGenderSurvival
	}

	return KindNone
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
