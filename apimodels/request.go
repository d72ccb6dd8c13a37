package apimodels

type ChatRequest struct {
	// Question is the natural language question about the dataset
	Question string `json:"question"`

	// Optional parameters to control answer generation
	Options ChatOptions `json:"options,omitempty"`
}

type ChatOptions struct {
	// Model specifies which LLM model to use (e.g. "gpt-4o-mini")
	Model string `json:"model,omitempty"`

	// MaxTokens limits the LLM response length
	MaxTokens int64 `json:"maxTokens,omitempty"`

	// Temperature controls randomness (0.0-1.0)
	Temperature float64 `json:"temperature,omitempty"`
}
