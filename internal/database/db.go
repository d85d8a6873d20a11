package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/study-planner/assets"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	_defaultTimeout = 3 * time.Second

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	_pgxDriverName    = "pgx"
	_sqliteDriverName = "sqlite"
	_sqlitePragmas    = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
)

type DB struct {
	*sqlx.DB
	Builder squirrel.StatementBuilderType

	Driver string
	Host   string
}

// New opens the store described by dsn. A postgres:// or postgresql:// URL
// selects Postgres through pgx; anything else is treated as a SQLite file path.
func New(logger *slog.Logger, dsn string, automigrate bool) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), _defaultTimeout)
	defer cancel()

	logger = logger.With("module", "database")

	if IsPostgresDSN(dsn) {
		return newPostgres(ctx, logger, dsn, automigrate)
	}

	return newSQLite(ctx, logger, dsn, automigrate)
}

func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newPostgres(ctx context.Context, logger *slog.Logger, dsn string, automigrate bool) (*DB, error) {
	db, err := sqlx.ConnectContext(ctx, _pgxDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("database: connect postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	if automigrate {
		if err := runMigrations(logger, DriverPostgres, dsn); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	host := "unknown"
	if u, err := url.Parse(dsn); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}

	logger.Info("connected", "driver", DriverPostgres, "host", host)

	return &DB{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		Driver:  DriverPostgres,
		Host:    host,
	}, nil
}

func newSQLite(ctx context.Context, logger *slog.Logger, path string, automigrate bool) (*DB, error) {
	db, err := sqlx.ConnectContext(ctx, _sqliteDriverName, path+_sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("database: open sqlite: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if automigrate {
		if err := runMigrations(logger, DriverSQLite, "sqlite://"+path); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	logger.Info("connected", "driver", DriverSQLite, "path", path)

	return &DB{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		Driver:  DriverSQLite,
		Host:    "local",
	}, nil
}

func runMigrations(logger *slog.Logger, driver, databaseURL string) error {
	migrations, err := fs.Sub(assets.EmbeddedFiles, "migrations/"+driver)
	if err != nil {
		return err
	}

	iofsDriver, err := iofs.New(migrations, ".")
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", iofsDriver, databaseURL)
	if err != nil {
		return fmt.Errorf("database: init migrations: %w", err)
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Debug("migrations up to date", "driver", driver)
	case err != nil:
		return fmt.Errorf("database: apply migrations: %w", err)
	default:
		logger.Info("migrations applied", "driver", driver)
	}

	return nil
}
