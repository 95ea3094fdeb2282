package mailkit

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/bluelinetech/mailkit/pkg/mailer"
	"github.com/bluelinetech/mailkit/pkg/mailer/smtp"
)

// Config aggregates the environment-sourced configuration. It is loaded
// once and never mutated afterwards.
type Config struct {
	SMTP   smtp.Config
	Mailer mailer.Config
}

// LoadConfig reads configuration from the environment, after loading a
// .env file when one is present. Recognized keys follow the host
// application's settings:
//
//	EMAIL_HOST           SMTP relay hostname
//	EMAIL_PORT           SMTP relay port (default 587)
//	EMAIL_USE_TLS        enable STARTTLS (default true)
//	EMAIL_HOST_USER      SMTP auth username
//	EMAIL_HOST_PASSWORD  SMTP auth secret (app password)
//	DEFAULT_FROM_EMAIL   default sender address
//
// A missing EMAIL_HOST is not an error here; constructing an SMTP client
// without a host is.
func LoadConfig() (Config, error) {
	// .env is a development convenience; absence is normal in production.
	_ = godotenv.Load()

	port, err := getEnvInt("EMAIL_PORT", 587)
	if err != nil {
		return Config{}, err
	}
	useTLS, err := getEnvBool("EMAIL_USE_TLS", true)
	if err != nil {
		return Config{}, err
	}
	failSilently, err := getEnvBool("MAILER_FAIL_SILENTLY", false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		SMTP: smtp.Config{
			Host:     os.Getenv("EMAIL_HOST"),
			Port:     port,
			UseTLS:   useTLS,
			Username: os.Getenv("EMAIL_HOST_USER"),
			Password: os.Getenv("EMAIL_HOST_PASSWORD"),
		},
		Mailer: mailer.Config{
			DefaultFrom:     os.Getenv("DEFAULT_FROM_EMAIL"),
			FallbackSubject: getEnv("MAILER_FALLBACK_SUBJECT", "Notification"),
			DefaultLayout:   getEnv("MAILER_DEFAULT_LAYOUT", "base.html"),
			FailSilently:    failSilently,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
