package apimodels

type ChatResponse struct {
	// The answer text, either deterministic or AI-generated
	Answer string `json:"answer"`

	// Supporting statistics used to compose the answer
	Data interface{} `json:"data,omitempty"`

	// Self-contained HTML snippet for the chart, if one applies
	ChartHTML string `json:"chart_html,omitempty"`

	// Chart kind identifier (e.g. "age_histogram")
	ChartType string `json:"chart_type,omitempty"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	DatasetLoaded bool   `json:"dataset_loaded"`
}
