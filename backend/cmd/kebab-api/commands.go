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

	"github.com/kebab-dev/kebab/backend/internal/router"
	"github.com/kebab-dev/kebab/backend/internal/setup"
	"github.com/kebab-dev/kebab/backend/internal/storage/pg"
	"github.com/kebab-dev/kebab/shared/config"
	"github.com/kebab-dev/kebab/shared/logger"
	sharedpg "github.com/kebab-dev/kebab/shared/storage/pg"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Apply pending migrations and start the HTTP server",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "skip-migrate",
				Usage: "do not apply migrations on startup",
			},
		},
		Action: serve,
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: withStorage(func(ctx context.Context, s *pg.Storage) error {
					applied, err := s.Migrate(ctx)
					if err != nil {
						return err
					}
					logger.Log.Info("migrations complete", "applied", applied)
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "Revert the most recent migration",
				Action: withStorage(func(ctx context.Context, s *pg.Storage) error {
					version, err := s.Rollback(ctx)
					if err != nil {
						return err
					}
					logger.Log.Info("rollback complete", "version", version)
					return nil
				}),
			},
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Insert a sample board with columns and tasks",
		Action: withStorage(func(ctx context.Context, s *pg.Storage) error {
			board, err := s.Seed(ctx)
			if err != nil {
				return err
			}
			logger.Log.Info("seeded sample board", "board_id", board.Id, "columns", len(board.Columns), "tasks", board.TaskCount())
			return nil
		}),
	}
}

func resetCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Delete every board, column and task",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := loadConfig(cmd)
			storage, err := pg.New(ctx, cfg, sharedpg.LightweightConnectionConfig())
			if err != nil {
				return err
			}
			defer storage.Cleanup()

			boards, client := setup.NewBoardStore(storage, cfg)
			if client != nil {
				defer client.Close()
			}
			removed, err := boards.Reset(ctx)
			if err != nil {
				return err
			}
			logger.Log.Info("database reset", "boards_removed", len(removed))
			return nil
		},
	}
}

func loadConfig(cmd *cli.Command) *config.Config {
	cfg := config.MustLoad(cmd.String("config_folder"))
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogFormat)
	return cfg
}

// withStorage runs a one-shot maintenance action with a small connection pool.
func withStorage(fn func(ctx context.Context, s *pg.Storage) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg := loadConfig(cmd)
		storage, err := pg.New(ctx, cfg, sharedpg.LightweightConnectionConfig())
		if err != nil {
			return err
		}
		defer storage.Cleanup()
		return fn(ctx, storage)
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg := loadConfig(cmd)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up dependencies: %w", err)
	}
	defer deps.Cleanup()

	if !cmd.Bool("skip-migrate") {
		if _, err := deps.Storage.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}

	server := &http.Server{
		Addr:         cfg.Public.Api.Addr,
		Handler:      router.New(deps.Handler, cfg),
		ReadTimeout:  cfg.Public.Api.ReadTimeout,
		WriteTimeout: cfg.Public.Api.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("starting api server", "addr", server.Addr)
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

	logger.Log.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Public.Api.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Log.Info("api server stopped")
	return nil
}
