package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/kebab-dev/kebab/frontend/internal/router"
	"github.com/kebab-dev/kebab/frontend/internal/setup"
	"github.com/kebab-dev/kebab/shared/config"
	"github.com/kebab-dev/kebab/shared/logger"
)

func main() {
	app := &cli.Command{
		Name:  "kebab-web",
		Usage: "Server-rendered pages for the kanban board API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config_folder",
				Usage: "path to folder with public.yaml and private.yaml",
				Value: "config",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Log.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.MustLoad(cmd.String("config_folder"))
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogFormat)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up dependencies: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.Public.Frontend.Addr,
		Handler:      router.SetupRouter(deps),
		ReadTimeout:  cfg.Public.Api.ReadTimeout,
		WriteTimeout: cfg.Public.Api.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("starting frontend", "addr", server.Addr, "api", cfg.Public.Frontend.ApiBaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Public.Api.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
