// Package agent wraps the deterministic question router with an optional AI
// enrichment stage. The AI call is a single bounded request; any failure
// falls back to the router, so callers always get an answer.
package agent

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/steerage-ai/steerage/apimodels"
	"github.com/steerage-ai/steerage/internal/charts"
	"github.com/steerage-ai/steerage/internal/dataset"
	"github.com/steerage-ai/steerage/internal/llm"
	"github.com/steerage-ai/steerage/internal/router"
	"github.com/steerage-ai/steerage/internal/stats"
)

const systemPromptGuidelines = `Guidelines:
- Provide specific numbers and percentages when available
- Be conversational but accurate
- If the user asks for visualization, mention that a chart will be shown
- Keep responses concise but informative (2-4 sentences max)
- Always base answers on the actual data provided`

type Agent struct {
	data     *dataset.Dataset
	provider llm.Provider
}

// New builds an agent. A nil provider disables AI escalation entirely; every
// question is then answered by the router.
func New(data *dataset.Dataset, provider llm.Provider) *Agent {
	return &Agent{
		data:     data,
		provider: provider,
	}
}

// ProcessQuery answers a question, escalating to the hosted model when a
// provider is configured. It never returns an error: AI failures are logged
// and degrade to the deterministic answer.
func (a *Agent) ProcessQuery(question string, opts apimodels.ChatOptions) router.QueryResult {
	var result router.QueryResult
	if a.provider != nil && !a.data.Empty() {
		result = a.processWithAI(question, opts)
	} else {
		result = router.Answer(question, a.data)
	}

	if kind := charts.Select(question, result.Answer); kind != charts.KindNone {
		html, err := charts.Render(kind, a.data)
		if err != nil {
			slog.Warn("chart rendering failed", "kind", kind, "error", err)
		} else {
			result.ChartHTML = html
			result.ChartType = kind
		}
	}

	return result
}

func (a *Agent) processWithAI(question string, opts apimodels.ChatOptions) router.QueryResult {
	contextData := a.gatherContext(question)

	systemPrompt, err := a.buildSystemPrompt(contextData)
	if err != nil {
		slog.Error("failed to build system prompt, falling back", "error", err)
		return router.Answer(question, a.data)
	}

	resp, err := a.provider.Complete(systemPrompt, "Question: "+question, llm.Option(func(o *llm.Options) {
		if opts.Model != "" {
			o.Model = opts.Model
		}
		if opts.MaxTokens != 0 {
			o.MaxTokens = opts.MaxTokens
		}
		if opts.Temperature != 0 {
			o.Temperature = opts.Temperature
		}
	}))
	if err != nil || resp.Content == "" {
		slog.Error("AI processing failed, falling back to deterministic answer", "error", err)
		return router.Answer(question, a.data)
	}

	slog.Debug("AI answer generated", "tokens", resp.Usage.TotalTokens)
	return router.QueryResult{
		Answer: resp.Content,
		Data:   contextData,
	}
}

// gatherContext collects the statistics subset relevant to the question,
// using the same topic keyword sets as the router. Basic stats are always
// included.
func (a *Agent) gatherContext(question string) map[string]interface{} {
	q := strings.ToLower(question)
	contextData := make(map[string]interface{})

	if containsAny(q, router.GenderWords) {
		if gender, err := stats.ByGender(a.data); err == nil {
			mergeJSON(contextData, gender)
		}
	}
	if containsAny(q, router.ClassWords) {
		if byClass, err := stats.ByClass(a.data); err == nil {
			mergeJSON(contextData, byClass)
		}
	}
	if containsAny(q, router.AgeWords) {
		if ages, err := stats.Ages(a.data); err == nil {
			mergeJSON(contextData, ages)
		}
	}
	if containsAny(q, router.EmbarkWords) {
		if embark, err := stats.Embarkation(a.data); err == nil {
			mergeJSON(contextData, embark)
		}
	}
	if basic, err := stats.Basic(a.data); err == nil {
		mergeJSON(contextData, basic)
	}

	return contextData
}

func (a *Agent) buildSystemPrompt(contextData map[string]interface{}) (string, error) {
	basic, err := stats.Basic(a.data)
	if err != nil {
		return "", err
	}

	serialized, err := json.MarshalIndent(contextData, "", "  ")
	if err != nil {
		return "", err
	}

	datasetContext := fmt.Sprintf(`Titanic Dataset Context:
- Total passengers: %d
- Survivors: %d (Survival rate: %.1f%%)
- Male passengers: %d (%.1f%%)
- Female passengers: %d (%.1f%%)
- Average age: %.1f years
- Average fare: £%.2f
- Passenger classes: %v`,
		basic.TotalPassengers,
		basic.Survivors, basic.SurvivalRate,
		basic.MalePassengers, basic.MalePercentage,
		basic.FemalePassengers, 100-basic.MalePercentage,
		basic.AverageAge,
		basic.AverageFare,
		basic.Classes,
	)

	return fmt.Sprintf(`You are an expert data analyst specializing in the Titanic dataset. You provide clear, accurate, and insightful answers about the Titanic passengers based on the data.

%s

Current relevant data for this question:
%s

%s`, datasetContext, serialized, systemPromptGuidelines), nil
}

// mergeJSON flattens a payload's JSON fields into dst, mirroring the flat
// merged dictionary shape the chat response exposes as "data".
func mergeJSON(dst map[string]interface{}, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return
	}
	for k, val := range fields {
		dst[k] = val
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
