package llm

// Provider is the hosted text-generation service.
type Provider interface {
	// Complete sends a system context plus the user's question and returns
	// the model's free-text answer.
	Complete(systemMessage string, userMessage string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

type Response struct {
	Content string
	Usage   Usage
}
