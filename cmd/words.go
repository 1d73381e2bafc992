package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabdrill/internal/vocab"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List and edit the saved words",
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the words saved for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		date, err := resolveDate(dateFlag)
		if err != nil {
			return err
		}
		long, _ := cmd.Flags().GetBool("long")

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.Timeout)
		defer cancel()

		words, err := newService(cfg).LoadWords(ctx, date)
		if err != nil {
			return err
		}

		if len(words) == 0 {
			fmt.Printf("No words for %s.\n", vocab.DisplayDate(date))
			return nil
		}

		if long {
			printWordsLong(words)
			return nil
		}

		fmt.Printf("%-24s  %-20s  %-6s  %s\n", "ID", "Word", "POS", "Meaning")
		fmt.Println(strings.Repeat("─", 80))
		for _, w := range words {
			fmt.Printf("%-24s  %-20s  %-6s  %s\n",
				truncate(w.ID, 24), truncate(w.Word, 20), truncate(w.PartOfSpeech, 6), w.Meaning)
		}
		fmt.Println(strings.Repeat("─", 80))
		fmt.Printf("%d words for %s\n", len(words), vocab.DisplayDate(date))
		return nil
	},
}

func printWordsLong(words []vocab.Word) {
	sep := strings.Repeat("─", 60)
	for i, w := range words {
		if i > 0 {
			fmt.Println(sep)
		}
		fmt.Printf("ID:        %s\n", w.ID)
		fmt.Printf("Word:      %s\n", w.Word)
		fmt.Printf("Meaning:   %s\n", w.Meaning)
		if w.PartOfSpeech != "" {
			fmt.Printf("POS:       %s\n", w.PartOfSpeech)
		}
		if len(w.Synonyms) > 0 {
			fmt.Printf("Synonyms:  %s\n", w.Synonyms)
		}
		if w.Example != "" {
			fmt.Printf("Example:   %s\n", w.Example)
		}
	}
}

var wordsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a word to a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		date, err := resolveDate(dateFlag)
		if err != nil {
			return err
		}

		in := wordInputFromFlags(cmd)
		if err := in.Validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.Timeout)
		defer cancel()

		created, err := newService(cfg).CreateWords(ctx, date, []vocab.WordInput{in})
		if err != nil {
			return err
		}
		for _, w := range created {
			fmt.Printf("Added %q (%s) to %s\n", w.Word, w.ID, vocab.DisplayDate(date))
		}
		return nil
	},
}

var wordsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change fields of a saved word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		in := wordInputFromFlags(cmd)
		if in == (vocab.WordInput{}) {
			return fmt.Errorf("nothing to update: pass at least one of --word, --meaning, --pos, --synonyms, --example")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.Timeout)
		defer cancel()

		w, err := newService(cfg).UpdateWord(ctx, args[0], in)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %q (%s)\n", w.Word, w.ID)
		return nil
	},
}

var wordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.Timeout)
		defer cancel()

		if err := newService(cfg).DeleteWord(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func wordInputFromFlags(cmd *cobra.Command) vocab.WordInput {
	var in vocab.WordInput
	in.Word, _ = cmd.Flags().GetString("word")
	in.Meaning, _ = cmd.Flags().GetString("meaning")
	in.PartOfSpeech, _ = cmd.Flags().GetString("pos")
	in.Synonyms, _ = cmd.Flags().GetString("synonyms")
	in.Example, _ = cmd.Flags().GetString("example")
	return in
}

func addWordFlags(c *cobra.Command) {
	c.Flags().String("word", "", "The word")
	c.Flags().String("meaning", "", "Its meaning; separate senses with commas")
	c.Flags().String("pos", "", "Part of speech")
	c.Flags().String("synonyms", "", "Comma-separated synonyms")
	c.Flags().String("example", "", "Example sentence using the word")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	wordsListCmd.Flags().String("date", "", "Date, YYYY-MM-DD (default today)")
	wordsListCmd.Flags().BoolP("long", "l", false, "Show every field")

	wordsAddCmd.Flags().String("date", "", "Date, YYYY-MM-DD (default today)")
	addWordFlags(wordsAddCmd)
	addWordFlags(wordsUpdateCmd)

	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsUpdateCmd)
	wordsCmd.AddCommand(wordsDeleteCmd)
}
