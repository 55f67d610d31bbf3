package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations installs the schema found under migrationsDir/<dialect> for the
// given driver ("postgres", "mysql" or "sqlite3"). Already applied migrations
// are not an error.
func RunMigrations(logger *slog.Logger, driver, connectionString, migrationsDir string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	sourceURL, databaseURL, err := migrationURLs(driver, connectionString, migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

// migrationURLs maps a driver and its database/sql connection string to the
// URLs golang-migrate expects.
func migrationURLs(driver, connectionString, migrationsDir string) (string, string, error) {
	var dialect, databaseURL string

	switch driver {
	case "postgres":
		dialect = "postgresql"
		databaseURL = connectionString
	case "mysql":
		dialect = "mysql"
		databaseURL = withScheme("mysql", connectionString)
	case "sqlite3":
		dialect = "sqlite3"
		databaseURL = withScheme("sqlite3", strings.TrimPrefix(connectionString, "file:"))
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", driver)
	}

	return "file://" + filepath.ToSlash(filepath.Join(migrationsDir, dialect)), databaseURL, nil
}

func withScheme(scheme, connectionString string) string {
	if strings.HasPrefix(connectionString, scheme+"://") {
		return connectionString
	}
	return scheme + "://" + connectionString
}
