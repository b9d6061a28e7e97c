package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM provider configuration",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate provider configuration and print the resolved model",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			} else {
				return err
			}
		}

		provider, err := llm.NewProvider(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", provider.ModelID())
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
