package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neutrino09/intervu/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past interviews",
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

		records, err := s.InterviewRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list interviews: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No interviews recorded yet. Run `intervu` to start one.")
			return nil
		}

		fmt.Printf("%-19s  %-16s  %-8s  %-12s  %-3s  %-5s  %s\n",
			"Date", "Candidate", "Topic", "Level", "Qs", "Avg", "Feedback")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range records {
			feedback := strings.ReplaceAll(r.Feedback, "\n", " ")
			fmt.Printf("%-19s  %-16s  %-8s  %-12s  %-3d  %-5.2f  %s\n",
				r.ConductedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(r.Candidate, 16),
				truncate(r.Topic, 8),
				r.ExperienceLevel,
				len(r.QuestionIDs),
				avgScore(r.Scores),
				truncate(feedback, 40),
			)
		}
		return nil
	},
}

func avgScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of interviews to show")
}
