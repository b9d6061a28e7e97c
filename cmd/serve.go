package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz generation API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			} else {
				return fmt.Errorf("LLM provider not configured: %w", err)
			}
		}

		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			return fmt.Errorf("build LLM provider: %w", err)
		}

		log := logrus.New()
		log.SetFormatter(&logrus.JSONFormatter{})
		log.WithFields(logrus.Fields{
			"provider": cfg.Provider,
			"model":    provider.ModelID(),
		}).Info("LLM provider ready")

		srvCfg := server.DefaultConfig()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			srvCfg.Addr = addr
		}
		srvCfg.Timeout = cfg.Timeout

		generator := quizgen.New(provider, quizgen.DefaultConfig())
		return server.New(srvCfg, generator, log).ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8000", "Listen address for the API")
}
