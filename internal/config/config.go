package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	API      APIConfig
	Speech   SpeechConfig
	Practice PracticeConfig

	// DebugLog is the path diagnostics are written to. Empty disables logging.
	DebugLog string
}

// APIConfig locates the vocabulary backend.
type APIConfig struct {
	BaseURL string        // Default: "http://localhost:3000"
	Prefix  string        // Default: "/api/v1"
	Timeout time.Duration // Default: 15s
}

// SpeechConfig configures pronunciation playback in listening sessions.
type SpeechConfig struct {
	// Command is the TTS executable. Empty means auto-detect.
	Command string
	Lang    string  // Default: "en-US"
	Rate    float64 // Relative to the engine's normal speed. Default: 0.8
}

// PracticeConfig holds tunables shared by the practice sessions.
type PracticeConfig struct {
	// EnglishRatio is the share of quiz questions that show the word and
	// ask for its meaning. The rest show the meaning and ask for the word.
	EnglishRatio float64

	// PageSize is the number of pairs per page on the matching board.
	PageSize int

	// NoticeDuration is how long a wrong-match notice stays visible.
	NoticeDuration time.Duration

	// CompletionDelay is the pause between a full board check and the
	// completion dialog.
	CompletionDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:3000",
			Prefix:  "/api/v1",
			Timeout: 15 * time.Second,
		},
		Speech: SpeechConfig{
			Lang: "en-US",
			Rate: 0.8,
		},
		Practice: PracticeConfig{
			EnglishRatio:    0.6,
			PageSize:        6,
			NoticeDuration:  2 * time.Second,
			CompletionDelay: 500 * time.Millisecond,
		},
	}
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment. Variables already set are not overridden and a missing file
// is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load %v: %w", existing, err)
	}
	return nil
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. Malformed numeric values are reported.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	if u := os.Getenv("VOCABDRILL_API_BASE_URL"); u != "" {
		cfg.API.BaseURL = u
	}
	if p := os.Getenv("VOCABDRILL_API_PREFIX"); p != "" {
		cfg.API.Prefix = p
	}
	if t := os.Getenv("VOCABDRILL_API_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			errs = append(errs, fmt.Errorf("VOCABDRILL_API_TIMEOUT: %w", err))
		} else {
			cfg.API.Timeout = d
		}
	}

	if c := os.Getenv("VOCABDRILL_SPEECH_CMD"); c != "" {
		cfg.Speech.Command = c
	}
	if l := os.Getenv("VOCABDRILL_SPEECH_LANG"); l != "" {
		cfg.Speech.Lang = l
	}
	if r := os.Getenv("VOCABDRILL_SPEECH_RATE"); r != "" {
		f, err := strconv.ParseFloat(r, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("VOCABDRILL_SPEECH_RATE: %w", err))
		} else {
			cfg.Speech.Rate = f
		}
	}

	if r := os.Getenv("VOCABDRILL_ENGLISH_RATIO"); r != "" {
		f, err := strconv.ParseFloat(r, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("VOCABDRILL_ENGLISH_RATIO: %w", err))
		} else {
			cfg.Practice.EnglishRatio = f
		}
	}

	cfg.DebugLog = os.Getenv("VOCABDRILL_DEBUG_LOG")

	return cfg, errors.Join(errs...)
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API base URL %q: %w", c.API.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API base URL %q must use http or https", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API timeout must be positive, got %s", c.API.Timeout)
	}
	if c.Speech.Rate <= 0 {
		return fmt.Errorf("speech rate must be positive, got %v", c.Speech.Rate)
	}
	if c.Practice.EnglishRatio < 0 || c.Practice.EnglishRatio > 1 {
		return fmt.Errorf("english ratio must be within [0, 1], got %v", c.Practice.EnglishRatio)
	}
	if c.Practice.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", c.Practice.PageSize)
	}
	return nil
}
