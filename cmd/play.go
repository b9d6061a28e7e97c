package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take a quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("api")
		return ui.Run(apiURL)
	},
}

func init() {
	playCmd.Flags().String("api", "http://localhost:8000", "Base URL of the quiz API")
}
