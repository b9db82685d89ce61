package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

// Tables lists every application table, parents first.
var Tables = []string{
	"staff_roles",
	"classes",
	"staff",
	"sections",
	"bus_routes",
	"bus_stops",
	"students",
	"fees",
	"fee_structures",
}

const migrationTable = "schema_migrations"

// Migrator manages database migrations
type Migrator struct {
	db     *pgxpool.Pool
	files  fs.FS
	logger zerolog.Logger
}

// NewMigrator creates a new migrator over the embedded schema files.
func NewMigrator(db *pgxpool.Pool, lgr zerolog.Logger) *Migrator {
	sub, _ := fs.Sub(schemaFiles, "sql")
	return &Migrator{
		db:     db,
		files:  sub,
		logger: lgr,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// AppliedVersions returns the versions recorded in the tracking table.
func (m *Migrator) AppliedVersions(ctx context.Context) (map[string]bool, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return nil, err
	}

	rows, err := m.db.Query(ctx, `SELECT version FROM `+migrationTable)
	if err != nil {
		return nil, fmt.Errorf("failed to check migration status: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// Migrate applies every schema file that has not been recorded yet. It never
// drops data.
func (m *Migrator) Migrate(ctx context.Context) error {
	files, err := schemaFileNames(m.files)
	if err != nil {
		return err
	}

	applied, err := m.AppliedVersions(ctx)
	if err != nil {
		return err
	}

	for _, name := range files {
		version := versionOf(name)
		if applied[version] {
			m.logger.Debug().Str("file", name).Msg("Migration already applied, skipping")
			continue
		}
		if err := m.apply(ctx, name, version); err != nil {
			return err
		}
	}

	return nil
}

// apply runs one schema file and records it in the same transaction.
func (m *Migrator) apply(ctx context.Context, name, version string) error {
	content, err := fs.ReadFile(m.files, name)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("error occurred during SQL migration %s: %w", name, err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO `+migrationTable+` (version) VALUES ($1)`, version); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Str("file", name).Msg("Migration file successfully applied")
	return nil
}

// Reset drops every application table and the tracking table, then rebuilds
// the schema from scratch. All data is lost.
func (m *Migrator) Reset(ctx context.Context) error {
	m.logger.Warn().Strs("tables", Tables).Msg("Resetting database schema")

	if _, err := m.db.Exec(ctx, dropStatement()); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	return m.Migrate(ctx)
}

func dropStatement() string {
	names := make([]string, 0, len(Tables)+1)
	for i := len(Tables) - 1; i >= 0; i-- {
		names = append(names, Tables[i])
	}
	names = append(names, migrationTable)
	return "DROP TABLE IF EXISTS " + strings.Join(names, ", ") + " CASCADE"
}

// schemaFileNames returns the .sql files in lexical order.
func schemaFileNames(files fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".sql" {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)
	return sqlFiles, nil
}

// versionOf extracts the version prefix ("001_schema.sql" => "001").
func versionOf(filename string) string {
	return strings.SplitN(path.Base(filename), "_", 2)[0]
}
