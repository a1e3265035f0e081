package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	MaxCodeLength int
	AcceptLegacy  bool
	QRSize        int
}

// Defaults used when a variable is unset.
const (
	DefaultPort          = "8080"
	DefaultEnv           = "production"
	DefaultLogLevel      = "info"
	DefaultMaxCodeLength = 4096
	DefaultQRSize        = 400
)

// Development reports whether the process runs with development logging.
func (c Config) Development() bool {
	return c.Env == "development"
}

// Load reads an optional .env file from the working directory and then the
// environment. Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	c := Config{
		Port:     getString("PORT", DefaultPort),
		Env:      getString("DECKCODE_ENV", DefaultEnv),
		LogLevel: getString("DECKCODE_LOG_LEVEL", DefaultLogLevel),
	}

	var err error
	if c.MaxCodeLength, err = getInt("DECKCODE_MAX_CODE_LENGTH", DefaultMaxCodeLength); err != nil {
		return Config{}, err
	}
	if c.MaxCodeLength <= 0 {
		return Config{}, fmt.Errorf("DECKCODE_MAX_CODE_LENGTH must be positive, got %d", c.MaxCodeLength)
	}
	if c.AcceptLegacy, err = getBool("DECKCODE_ACCEPT_LEGACY", true); err != nil {
		return Config{}, err
	}
	if c.QRSize, err = getInt("DECKCODE_QR_SIZE", DefaultQRSize); err != nil {
		return Config{}, err
	}
	return c, nil
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
