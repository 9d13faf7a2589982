package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultSendMessageURL      = "http://127.0.0.1:5757/send_message"
	defaultStubServerPort      = 5757
	defaultExpiryCheckInterval = 10 * time.Second
)

func init() {
	switch Environment() {
	case "staging", "sandbox", "production":
		// do nothing in cloud env
	default:
		err := maybeLoadDotEnv()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load .env file if it is present")
		}
	}
	time.Local = time.UTC
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if zerolog.DefaultContextLogger == nil {
		zerolog.DefaultContextLogger = &log.Logger
	}
	zerolog.SetGlobalLevel(logLevel())
}

func Environment() string {
	return os.Getenv("ENVIRONMENT")
}

// SendMessageURL is the messenger endpoint the sender posts to.
func SendMessageURL() string {
	u := os.Getenv("MESSENGER_SEND_URL")
	if u == "" {
		u = defaultSendMessageURL
	}
	return u
}

func StubServerPort() int {
	port := defaultStubServerPort
	s := os.Getenv("STUB_SERVER_PORT")
	if s != "" {
		p, err := strconv.Atoi(s)
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to parse STUB_SERVER_PORT: %s", s)
		}
		port = p
	}

	return port
}

// StubResponseStatus forces the status code the stub server answers
// /send_message with. Zero or 200 means normal behaviour.
func StubResponseStatus() int {
	s := os.Getenv("STUB_RESPONSE_STATUS")
	if s == "" {
		return 0
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to parse STUB_RESPONSE_STATUS: %s", s)
	}
	return code
}

func ExpiryCheckInterval() time.Duration {
	interval := os.Getenv("EXPIRY_CHECK_INTERVAL")
	if interval == "" {
		return defaultExpiryCheckInterval
	}
	d, err := time.ParseDuration(interval)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to parse EXPIRY_CHECK_INTERVAL: %s", interval)
	}
	return d
}

func maybeLoadDotEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for {
		candidate := filepath.Join(dir, ".env")
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return godotenv.Load(candidate)
		} else if err != nil && !os.IsNotExist(err) {
			return err
		}
		d := filepath.Dir(dir)
		if d == dir {
			break
		}
		dir = d
	}

	return nil
}

func logLevel() zerolog.Level {
	level := os.Getenv("LOG_LEVEL")
	switch {
	case strings.EqualFold("debug", level):
		return zerolog.DebugLevel
	case strings.EqualFold("warn", level):
		return zerolog.WarnLevel
	case strings.EqualFold("error", level):
		return zerolog.ErrorLevel
	case strings.EqualFold("fatal", level):
		return zerolog.FatalLevel
	}

	return zerolog.InfoLevel
}
