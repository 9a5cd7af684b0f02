package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neutrino09/intervu/internal/app"
	"github.com/neutrino09/intervu/internal/classify"
	"github.com/neutrino09/intervu/internal/coach"
	"github.com/neutrino09/intervu/internal/interview"
	"github.com/neutrino09/intervu/internal/llm"
	"github.com/neutrino09/intervu/internal/questionbank"
	"github.com/neutrino09/intervu/internal/score"
	"github.com/neutrino09/intervu/internal/store"
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

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("no chat provider configured (set INTERVU_OPENAI_API_KEY or another provider key): %w", err)
	}
	embedder, err := llm.NewEmbedderFromEnv(eventRepo)
	if err != nil {
		return fmt.Errorf("no embedding provider configured: %w", err)
	}

	bank, err := loadBank(cmd)
	if err != nil {
		return err
	}

	topic, _ := cmd.Flags().GetString("topic")

	engine := interview.New(bank, classify.New(provider), score.New(embedder), interview.DefaultQuestionCount)

	return app.Run(app.Deps{
		Engine:        engine,
		Coach:         coach.New(provider),
		InterviewRepo: st.InterviewRepo(),
		Topic:         topic,
	})
}

// loadBank returns the question bank from --questions, or the built-in set.
func loadBank(cmd *cobra.Command) (*questionbank.Bank, error) {
	path, _ := cmd.Flags().GetString("questions")
	if path == "" {
		return questionbank.Default(), nil
	}
	bank, err := questionbank.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return bank, nil
}
