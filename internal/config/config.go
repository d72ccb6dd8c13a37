package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Dataset DatasetConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	CORSOrigins  []string      `envconfig:"SERVER_CORS_ORIGINS" default:"http://localhost:8501,http://127.0.0.1:8501"`
}

// OpenAIConfig configures the hosted text-generation service. The API key is
// optional: when it is empty the AI escalation layer is disabled and every
// question is answered by the deterministic router.
type OpenAIConfig struct {
	APIKey      string        `envconfig:"OPENAI_API_KEY"`
	APIEndpoint string        `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model       string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Temperature float64       `envconfig:"OPENAI_TEMPERATURE" default:"0.1"`
	MaxTokens   int64         `envconfig:"OPENAI_MAX_TOKENS" default:"2048"`
	Timeout     time.Duration `envconfig:"OPENAI_TIMEOUT" default:"30s"`
}

// Enabled reports whether an API credential is configured.
func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

type DatasetConfig struct {
	SourceURL string        `envconfig:"DATASET_SOURCE_URL" default:"https://raw.githubusercontent.com/datasciencedojo/datasets/master/titanic.csv"`
	LocalPath string        `envconfig:"DATASET_LOCAL_PATH" default:"data/titanic.csv"`
	Timeout   time.Duration `envconfig:"DATASET_TIMEOUT" default:"30s"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
