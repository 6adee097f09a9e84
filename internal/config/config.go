package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"cfopilot"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"cfopilot"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"12h"`
	}

	Access struct {
		// FailOpenUnscopedBudgets keeps budgets without a project visible to
		// managers/employees even when the assignment lookup fails.
		FailOpenUnscopedBudgets bool `envconfig:"ACCESS_FAIL_OPEN_UNSCOPED" default:"false"`
	}

	Stripe struct {
		APIKey        string `envconfig:"STRIPE_API_KEY"`
		WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
		DryRun        bool   `envconfig:"STRIPE_DRY_RUN" default:"false"`
		AutoPayout    bool   `envconfig:"STRIPE_AUTOPAYOUT" default:"false"`
	}

	LLM struct {
		APIKey      string  `envconfig:"LLM_API_KEY"`
		BaseURL     string  `envconfig:"LLM_BASE_URL" default:"https://api.deepseek.com/v1"`
		Model       string  `envconfig:"LLM_MODEL" default:"deepseek-chat"`
		MaxTokens   int     `envconfig:"LLM_MAX_TOKENS" default:"2000"`
		Temperature float64 `envconfig:"LLM_TEMPERATURE" default:"0.1"`
	}

	Sync struct {
		OrganizationID string `envconfig:"SYNC_ORGANIZATION_ID"`
		Days           int    `envconfig:"SYNC_DAYS" default:"1"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
