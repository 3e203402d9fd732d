package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"PersonalFinance/internal/config"
	"PersonalFinance/pkg/log"
)

var (
	appConfig config.AppConfig
	logger    *logrus.Logger

	rootCmd = &cobra.Command{
		Use:               "finance",
		Short:             "Personal finance tracker API",
		Long:              "Records income and expense transactions, monthly category budgets and serves monthly analytics over a JSON API.",
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		RunE:              runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	logger = log.NewLogger()
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}
