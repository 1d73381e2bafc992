package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabdrill/internal/app"
	"github.com/abhisek/vocabdrill/internal/screens/modes"
	"github.com/abhisek/vocabdrill/internal/selfupdate"
	"github.com/abhisek/vocabdrill/internal/session"
	"github.com/abhisek/vocabdrill/internal/speech"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		mode, _ := cmd.Flags().GetString("mode")
		return runApp(cmd, date, mode)
	},
}

func init() {
	playCmd.Flags().String("date", "", "Practice date, YYYY-MM-DD (default today)")
	playCmd.Flags().String("mode", "", "Open a practice mode directly: quiz, dragdrop or listening")
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, date, mode string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if date != "" {
		if date, err = resolveDate(date); err != nil {
			return err
		}
	}

	opts := app.Options{
		Deps: modes.Deps{
			Loader:   newService(cfg),
			Practice: cfg.Practice,
			Speaker:  speech.New(cfg.Speech),
			Timeout:  cfg.API.Timeout,
		},
		Date:    date,
		Version: version,
		Checker: selfupdate.NewChecker(),
	}

	if mode != "" {
		m, err := session.ParseMode(mode)
		if err != nil {
			return err
		}
		opts.Mode = m
	}

	if _, ok := opts.Deps.Speaker.(speech.Unavailable); ok {
		fmt.Fprintln(os.Stderr, "No text-to-speech command found; listening practice will not play audio.")
	}

	return app.Run(opts)
}
