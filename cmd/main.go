package main

import (
	"embed"
	"fmt"
	"os"
	"text/template"

	"lotto/internal/config"
	"lotto/internal/handlers"
	"lotto/internal/services"

	"github.com/google/logger"
	"github.com/spf13/cobra"
)

//go:embed all:templates
var templateFS embed.FS

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "lotto",
		Short:         "Buy lotto lines and check them against the drawn numbers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}
}

func run(cmd *cobra.Command) error {
	// 1. Load configuration from the environment
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return err
	}

	// 2. Route logs away from the console
	closeLogger, err := config.InitLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeLogger() }()

	// 3. Load report templates from the embedded filesystem
	templates, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		logger.Warningf("Failed to parse templates: %v", err)
		return fmt.Errorf("parse templates: %w", err)
	}

	// 4. Wire the seller, the checker and the console
	seller := services.NewSeller(services.NewRandomGenerator(cfg.Seed))
	checker := services.NewChecker()
	console := handlers.NewConsoleHandler(seller, checker, templates, cmd.InOrStdin(), cmd.OutOrStdout())

	// 5. Run a single purchase and check
	if err := console.Run(); err != nil {
		logger.Warningf("Run aborted: %v", err)
		return err
	}
	logger.Info("Run finished")
	return nil
}
