package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neutrino09/intervu/internal/dataset"
	"github.com/neutrino09/intervu/internal/llm"
	"github.com/neutrino09/intervu/internal/questionbank"
	"github.com/neutrino09/intervu/internal/store"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Build and inspect the scoring training dataset",
}

var datasetBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate labeled answers for every question in the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("no chat provider configured (set INTERVU_OPENAI_API_KEY or another provider key): %w", err)
		}

		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}
		topic, _ := cmd.Flags().GetString("topic")
		pool := bank.ForTopic(topic)
		if len(pool) == 0 {
			return fmt.Errorf("no questions for topic %q", topic)
		}
		bank = questionbank.New(pool)

		fmt.Printf("Generating labeled answers for %d questions...\n", len(pool))

		result, err := dataset.New(provider, s.TrainingRepo()).BuildAll(ctx, bank)
		if err != nil {
			if result.Examples > 0 {
				fmt.Printf("Stopped after %d questions (%d examples saved).\n",
					result.Questions, result.Examples)
			}
			return fmt.Errorf("build dataset: %w", err)
		}

		fmt.Printf("Done: %d questions, %d examples.\n", result.Questions, result.Examples)
		return nil
	},
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored training examples",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		examples, err := s.TrainingRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list examples: %w", err)
		}

		if len(examples) == 0 {
			fmt.Println("No training examples yet. Run `intervu dataset build` first.")
			return nil
		}

		fmt.Printf("%-5s  %-8s  %-10s  %s\n", "ID", "Question", "Label", "Answer")
		fmt.Println(strings.Repeat("─", 90))
		for _, e := range examples {
			answer := strings.ReplaceAll(e.Answer, "\n", " ")
			if len(answer) > 60 {
				answer = answer[:57] + "..."
			}
			fmt.Printf("%-5d  %-8s  %-10s  %s\n", e.ID, e.QuestionID, e.Label, answer)
		}
		return nil
	},
}

func init() {
	datasetListCmd.Flags().IntP("limit", "n", 20, "Number of examples to show")

	datasetCmd.AddCommand(datasetBuildCmd)
	datasetCmd.AddCommand(datasetListCmd)
}
