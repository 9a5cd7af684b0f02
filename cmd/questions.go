package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Validate and list the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}

		topic, _ := cmd.Flags().GetString("topic")
		questions := bank.ForTopic(topic)
		if len(questions) == 0 {
			fmt.Printf("No questions for topic %q. Available topics: %s\n",
				topic, strings.Join(bank.Topics(), ", "))
			return nil
		}

		fmt.Printf("%-8s  %-8s  %-10s  %s\n", "ID", "Level", "Type", "Prompt")
		fmt.Println(strings.Repeat("─", 90))
		for _, q := range questions {
			prompt := q.Prompt
			if len(prompt) > 60 {
				prompt = prompt[:57] + "..."
			}
			fmt.Printf("%-8s  %-8s  %-10s  %s\n", q.ID, q.Level, q.Type, prompt)
		}
		fmt.Printf("\n%d questions, all valid.\n", len(questions))
		return nil
	},
}
