package pg

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/kebab-dev/kebab/shared/logger"
	sharedpg "github.com/kebab-dev/kebab/shared/storage/pg"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migration is one numbered schema change, e.g. 0001_create_kanban_{up,down}.sql.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// migrationLockKey serializes concurrent Migrate calls (several api replicas starting at once).
const migrationLockKey = 727_001

func loadMigrations() ([]Migration, error) {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	byVersion := make(map[int]*Migration)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		prefix, rest, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s has no version prefix", name)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s has invalid version: %w", name, err)
		}

		content, err := migrationFiles.ReadFile(path.Join("migrations", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		m, ok := byVersion[version]
		if !ok {
			m = &Migration{Version: version}
			byVersion[version] = m
		}
		switch {
		case strings.HasSuffix(rest, "_up.sql"):
			m.Name = strings.TrimSuffix(rest, "_up.sql")
			m.Up = string(content)
		case strings.HasSuffix(rest, "_down.sql"):
			m.Down = string(content)
		default:
			return nil, fmt.Errorf("migration %s must end in _up.sql or _down.sql", name)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" || m.Down == "" {
			return nil, fmt.Errorf("incomplete migration for version %d", m.Version)
		}
		migrations = append(migrations, *m)
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// lockMigrations takes the migration lock for the rest of tx, then makes sure the
// bookkeeping table exists. Unlocked concurrent CREATE TABLE IF NOT EXISTS can collide in pg_type.
func lockMigrations(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLockKey); err != nil {
		return fmt.Errorf("failed to take migration lock: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    integer PRIMARY KEY,
			applied_at timestamptz NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// Migrate applies every pending migration, each in its own transaction.
// It returns the versions that were applied.
func (s *Storage) Migrate(ctx context.Context) ([]int, error) {
	migrations, err := loadMigrations()
	if err != nil {
		return nil, err
	}
	var applied []int
	for _, m := range migrations {
		done := false
		err := sharedpg.WithTx(ctx, s.db, nil, func(tx *sql.Tx) error {
			if err := lockMigrations(ctx, tx); err != nil {
				return err
			}
			var exists bool
			if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", m.Version).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check migration status: %w", err)
			}
			if exists {
				return nil
			}
			if _, err := tx.ExecContext(ctx, m.Up); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.Version); err != nil {
				return err
			}
			done = true
			return nil
		})
		if err != nil {
			return applied, fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if done {
			logger.Log.Info("applied migration", "version", m.Version, "name", m.Name)
			applied = append(applied, m.Version)
		}
	}
	return applied, nil
}

// Rollback reverts the most recently applied migration and returns its version.
func (s *Storage) Rollback(ctx context.Context) (int, error) {
	migrations, err := loadMigrations()
	if err != nil {
		return 0, err
	}

	var version int
	err = sharedpg.WithTx(ctx, s.db, nil, func(tx *sql.Tx) error {
		if err := lockMigrations(ctx, tx); err != nil {
			return err
		}
		if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version); err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
		if version == 0 {
			return fmt.Errorf("no migrations to rollback")
		}
		for _, m := range migrations {
			if m.Version != version {
				continue
			}
			if _, err := tx.ExecContext(ctx, m.Down); err != nil {
				return fmt.Errorf("failed to rollback migration %d: %w", version, err)
			}
			_, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = $1", version)
			return err
		}
		return fmt.Errorf("migration version %d not found", version)
	})
	if err != nil {
		return 0, err
	}
	logger.Log.Info("rolled back migration", "version", version)
	return version, nil
}
