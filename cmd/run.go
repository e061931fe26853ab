package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/contextlens/internal/app"
	"github.com/abhisek/contextlens/internal/audio"
	"github.com/abhisek/contextlens/internal/llm"
	"github.com/abhisek/contextlens/internal/profile"
	"github.com/abhisek/contextlens/internal/reframe"
	"github.com/abhisek/contextlens/internal/state"
	"github.com/abhisek/contextlens/internal/store"
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

	events := st.Events()
	appState := &state.App{
		Version: version,
		Repo:    profile.NewRepo(st.Records()),
		Events:  events,
	}

	cfg, ok := resolveLLMConfig()
	if !ok {
		fmt.Fprintln(os.Stderr, "No LLM API key found (set GEMINI_API_KEY or CONTEXTLENS_* vars).")
		fmt.Fprintln(os.Stderr, "Lesson generation will be unavailable.")
	} else {
		provider, err := llm.NewProvider(ctx, cfg, events)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Lesson generation will be unavailable.")
		} else {
			appState.Reframe = reframe.NewService(provider)
		}

		speech, err := llm.NewSpeechProvider(ctx, cfg)
		switch {
		case errors.Is(err, llm.ErrSpeechUnsupported):
			// Read-aloud quietly unavailable for non-Gemini providers.
		case err != nil:
			fmt.Fprintln(os.Stderr, "warning: speech unavailable:", err)
		default:
			appState.Speech = speech
			appState.Player = audio.NewPlayer()
		}
	}

	return app.Run(appState)
}

// resolveLLMConfig prefers explicit CONTEXTLENS_* configuration, then
// falls back to probing the standard provider key env vars.
func resolveLLMConfig() (llm.Config, bool) {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg, true
	}
	return llm.DiscoverConfig()
}
