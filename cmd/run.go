package cmd

import (
	"fmt"
	"os"

	"github.com/gmatize/gmatize/internal/app"
	"github.com/gmatize/gmatize/internal/llm"
	"github.com/gmatize/gmatize/internal/quizgen"
	"github.com/gmatize/gmatize/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	var opts app.Options
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Running with canned questions only.")
		cfg := llm.DefaultConfig()
		cfg.Provider = "mock"
		provider, err = llm.NewProvider(ctx, cfg, eventRepo)
		if err != nil {
			return fmt.Errorf("mock provider: %w", err)
		}
	} else {
		opts.Reviewer = quizgen.NewReviewer(provider)
	}
	opts.Generator = quizgen.New(provider, quizgen.DefaultConfig())

	return app.Run(opts)
}
