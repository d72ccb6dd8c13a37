// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/steerage-ai/steerage/internal/agent"
	"github.com/steerage-ai/steerage/internal/config"
	"github.com/steerage-ai/steerage/internal/dataset"
	"github.com/steerage-ai/steerage/internal/llm"
	"github.com/steerage-ai/steerage/internal/server"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// A load failure is not fatal: the server starts degraded and the
	// health endpoint reports the missing dataset.
	data, err := dataset.NewLoader(cfg.Dataset).Load(context.Background())
	if err != nil {
		slog.Error("dataset load failed, starting degraded", "error", err)
		data = dataset.New(nil)
	}

	var provider llm.Provider
	if cfg.OpenAI.Enabled() {
		p, err := llm.NewOpenAI(&cfg.OpenAI)
		if err != nil {
			log.Fatalf("failed to create LLM provider: %v", err)
		}
		provider = p
		slog.Info("AI escalation enabled", "model", cfg.OpenAI.Model)
	} else {
		slog.Info("no OpenAI API key configured, answering deterministically")
	}

	ag := agent.New(data, provider)

	srv := server.New(*cfg, ag, data)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
