package cmd

import (
	"fmt"
	"io"
	"log"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/vocabdrill/internal/api"
	"github.com/abhisek/vocabdrill/internal/config"
	"github.com/abhisek/vocabdrill/internal/vocab"
)

var rootCmd = &cobra.Command{
	Use:   "vocabdrill",
	Short: "Vocabulary practice in the terminal",
	Long:  "Practice the words you saved for a day with quizzes, matching and dictation.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", "")
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Vocabulary API base URL (overrides VOCABDRILL_API_BASE_URL)")
	rootCmd.PersistentFlags().String("api-prefix", "", "API path prefix (overrides VOCABDRILL_API_PREFIX)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "API request timeout (overrides VOCABDRILL_API_TIMEOUT)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Dotenv file loaded before reading the environment")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig resolves configuration from the dotenv file, the environment
// and flags, in increasing priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("read environment: %w", err)
	}

	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.API.BaseURL = u
	}
	if p, _ := cmd.Flags().GetString("api-prefix"); p != "" {
		cfg.API.Prefix = p
	}
	if t, _ := cmd.Flags().GetDuration("timeout"); t > 0 {
		cfg.API.Timeout = t
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupLogging sends the standard logger to VOCABDRILL_DEBUG_LOG, or
// discards it. The TUI owns the terminal so nothing is logged to stderr.
func setupLogging(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}
	cfg, _ := config.ConfigFromEnv()
	if cfg.DebugLog == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	if _, err := tea.LogToFile(cfg.DebugLog, "vocabdrill"); err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	return nil
}

func newService(cfg config.Config) *vocab.Service {
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Prefix, api.WithTimeout(cfg.API.Timeout))
	return vocab.NewService(client)
}

// resolveDate validates a --date flag value. Empty means today.
func resolveDate(date string) (string, error) {
	if date == "" {
		return vocab.Today(time.Now()), nil
	}
	if _, err := vocab.ParseDate(date); err != nil {
		return "", err
	}
	return date, nil
}
