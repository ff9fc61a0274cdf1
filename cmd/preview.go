package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gmatize/gmatize/internal/llm"
	"github.com/gmatize/gmatize/internal/quiz"
	"github.com/gmatize/gmatize/internal/quizgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions (no database)",
	Long: `Generate questions at a fixed difficulty and print them with answers.

This is a stateless developer tool — no database, no scoring, no events.
Useful for evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("difficulty", "medium", "Difficulty level: easy, medium, or hard")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	difficulty := quiz.Difficulty(strings.ToLower(diffVal))
	if !difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", diffVal)
	}

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	fallback := quiz.Fallback()

	fmt.Printf("Generating %d %s questions...\n\n", count, difficulty)

	for i := 1; i <= count; i++ {
		q := gen.Generate(ctx, difficulty)

		fmt.Printf("── Question %d/%d ──\n", i, count)
		if q.Prompt == fallback.Prompt {
			fmt.Println("(generation degraded — fallback question served)")
		}
		fmt.Println(q.Prompt)
		for _, letter := range q.Letters() {
			fmt.Printf("  %s) %s\n", letter, q.Options[letter])
		}
		fmt.Printf("Correct Answer: %s\n\n", q.Correct)
	}

	return nil
}
