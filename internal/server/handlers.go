package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/steerage-ai/steerage/apimodels"
	"github.com/steerage-ai/steerage/internal/stats"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req apimodels.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Question) == "" {
		http.Error(w, "Question cannot be empty", http.StatusBadRequest)
		return
	}

	slog.Debug("Received chat request", "question", req.Question)

	result := s.agent.ProcessQuery(req.Question, req.Options)

	writeJSON(w, apimodels.ChatResponse{
		Answer:    result.Answer,
		Data:      result.Data,
		ChartHTML: result.ChartHTML,
		ChartType: string(result.ChartType),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := apimodels.HealthResponse{
		Status:        "healthy",
		Message:       "API is running",
		DatasetLoaded: !s.data.Empty(),
	}
	if s.data.Empty() {
		resp.Status = "degraded"
		resp.Message = "Dataset not loaded"
	}
	writeJSON(w, resp)
}

func (s *Server) handleDatasetStats(w http.ResponseWriter, r *http.Request) {
	basic, err := stats.Basic(s.data)
	if err != nil {
		writeUnavailable(w, err)
		return
	}
	writeJSON(w, basic)
}

func (s *Server) handleSurvivalByGender(w http.ResponseWriter, r *http.Request) {
	gender, err := stats.ByGender(s.data)
	if err != nil {
		writeUnavailable(w, err)
		return
	}
	writeJSON(w, gender)
}

func (s *Server) handleSurvivalByClass(w http.ResponseWriter, r *http.Request) {
	byClass, err := stats.ByClass(s.data)
	if err != nil {
		writeUnavailable(w, err)
		return
	}
	writeJSON(w, byClass)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeUnavailable reports the explicit unavailable state for statistics
// endpoints when the dataset failed to load.
func writeUnavailable(w http.ResponseWriter, err error) {
	slog.Warn("statistics unavailable", "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	json.NewEncoder(w).Encode(map[string]string{"error": "dataset not available"})
}
