package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/futurelink/pathfinder/internal/app"
	"github.com/futurelink/pathfinder/internal/llm"
	"github.com/futurelink/pathfinder/internal/recommend"
	"github.com/futurelink/pathfinder/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := store.Open(resolveDSN(cmd))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Career recommendations will be unavailable.")
	} else {
		opts.Recommend = recommend.NewService(provider, recommend.DefaultConfig())
	}

	return app.Run(opts)
}
