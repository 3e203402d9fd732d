package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"PersonalFinance/internal/config"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default command)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := config.NewServer(
		config.WithConfig(appConfig),
		config.WithLogger(logger),
		config.WithFiber(config.NewFiber(appConfig.AppName, logger)),
		config.WithValidator(config.NewValidator()),
		config.WithDatabase(),
		config.WithRedisServer(),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	if err != nil {
		return err
	}

	server.RegisterHandler()

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(server.Run)
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Server stopped with error")
		return err
	}

	logger.Info("Server stopped")
	return nil
}
