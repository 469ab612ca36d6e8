package config

import (
	"os"
	"strconv"

	pstrings "badgeforge/pkg/platform/strings"
)

// Config is the immutable configuration snapshot taken once at process
// start. Everything downstream (origin policy included) reads from this
// snapshot, never from the environment directly.
type Config struct {
	Addr          string
	Env           string
	FrontendURL   string
	VercelDomains []string
	SMTP          SMTP
}

// SMTP captures the email dispatcher transport settings.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Production reports whether the process runs with production settings.
// Anything else (development, test, unset) enables the local dev origins.
func (c Config) Production() bool {
	return c.Env == "production"
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	return Config{
		Addr:          ":" + port,
		Env:           getenv("APP_ENV", "development"),
		FrontendURL:   os.Getenv("FRONTEND_URL"),
		VercelDomains: pstrings.SplitListLower(os.Getenv("VERCEL_DOMAINS")),
		SMTP: SMTP{
			Host:     getenv("SMTP_HOST", "localhost"),
			Port:     getenvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", "badges@localhost"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
