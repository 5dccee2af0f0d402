package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shanehull/matchscout/internal/ai"
	"github.com/shanehull/matchscout/internal/analysis"
	"github.com/shanehull/matchscout/internal/notify"
	"github.com/shanehull/matchscout/internal/session"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

type Config struct {
	Port            string
	Env             string
	GeminiAPIKey    string
	GeminiModel     string
	AnalysisTimeout time.Duration
	SessionTTL      time.Duration
	CORSOrigins     []string
	Email           notify.EmailConfig
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := firstNonEmpty(strings.TrimSpace(os.Getenv("APP_ENV")), "local")

	return &Config{
		Port:            normalizePort(firstNonEmpty(os.Getenv("PORT"), ":8080")),
		Env:             env,
		GeminiAPIKey:    firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_API_KEY")), strings.TrimSpace(os.Getenv("API_KEY"))),
		GeminiModel:     firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), ai.DefaultModel),
		AnalysisTimeout: durationEnv("ANALYSIS_TIMEOUT", analysis.DefaultTimeout),
		SessionTTL:      durationEnv("SESSION_TTL", session.DefaultTTL),
		CORSOrigins:     listEnv("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		Email:           loadEmailConfig(),
	}, nil
}

// Validate reports configuration that must stop the process at startup.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func loadEmailConfig() notify.EmailConfig {
	cfg := notify.EmailConfig{
		SMTPServer: firstNonEmpty(strings.TrimSpace(os.Getenv("SMTP_SERVER")), "smtp.gmail.com"),
		SMTPPort:   intEnv("SMTP_PORT", 587),
		SMTPUser:   strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		ToEmail:    strings.TrimSpace(os.Getenv("TO_EMAIL")),
		FromEmail:  strings.TrimSpace(os.Getenv("FROM_EMAIL")),
	}
	cfg.Enabled = cfg.SMTPServer != "" && cfg.SMTPUser != "" && cfg.SMTPPass != "" && cfg.ToEmail != ""
	if cfg.FromEmail == "" && cfg.SMTPUser != "" {
		cfg.FromEmail = cfg.SMTPUser
	}
	return cfg
}

func normalizePort(p string) string {
	p = strings.TrimSpace(p)
	if strings.Contains(p, ":") {
		return p
	}
	return ":" + p
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func listEnv(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
