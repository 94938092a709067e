package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-lens/db/migrations"
)

// Migrate applies the embedded campaign schema up to migrations.Version.
// Version bookkeeping lives in migrations.Table so the schema can share a
// database with other services. A dirty database is reported, never
// forced. Cancelling ctx stops after the migration in flight.
func Migrate(ctx context.Context, addr url.URL, logger *slog.Logger) error {
	q := addr.Query()
	q.Set("x-migrations-table", migrations.Table)
	addr.RawQuery = q.Encode()

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr.String())
	if err != nil {
		return fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	stop := context.AfterFunc(ctx, func() { mg.GracefulStop <- true })
	defer stop()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("schema version %d is dirty", from)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate to %d: %w", migrations.Version, err)
	}
	logger.Info("schema ready", slog.Uint64("from", uint64(from)), slog.Int("to", migrations.Version))
	return nil
}
