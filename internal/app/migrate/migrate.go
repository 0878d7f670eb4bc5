package migrate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

// Runner applies goose SQL migrations over an existing sqlx connection.
type Runner struct {
	db  *sqlx.DB
	dir string
	log *slog.Logger
}

func New(db *sqlx.DB, dir string, log *slog.Logger) (Runner, error) {
	if db == nil {
		return Runner{}, errors.New("nil db provided")
	}
	if dir == "" {
		return Runner{}, errors.New("empty migrations directory")
	}
	if _, err := os.Stat(dir); err != nil {
		return Runner{}, fmt.Errorf("locate migrations dir: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	return Runner{db: db, dir: dir, log: log}, nil
}

// Ensure applies pending migrations.
func (r Runner) Ensure(ctx context.Context) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configure goose: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	r.log.Info("applying migrations", slog.String("dir", r.dir))
	if err := goose.UpContext(runCtx, r.db.DB, r.dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	r.log.Info("migrations applied")
	return nil
}

// Status reports applied and pending migrations.
func (r Runner) Status(ctx context.Context) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configure goose: %w", err)
	}

	if err := goose.StatusContext(ctx, r.db.DB, r.dir); err != nil {
		return fmt.Errorf("migration status: %w", err)
	}
	return nil
}
