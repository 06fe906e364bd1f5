package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped whenever schema.sql changes shape.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database was created by a different
// schema version or is missing catalogue tables.
var ErrSchemaMismatch = errors.New("schema version mismatch")

var catalogTables = []string{"genres", "stations", "player_apps", "export_profiles", "settings"}

func (s *Store) initSchema(ctx context.Context) error {
	version, initialized, err := s.storedSchemaVersion(ctx)
	if err != nil {
		return err
	}
	if !initialized {
		return s.createSchema(ctx)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (export the catalogue and re-import it into a fresh database)",
			ErrSchemaMismatch, version, schemaVersion)
	}
	return s.checkTables(ctx)
}

// storedSchemaVersion reads the recorded version. initialized is false for
// a database without a schema_version table.
func (s *Store) storedSchemaVersion(ctx context.Context) (version int, initialized bool, err error) {
	var tables int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tables); err != nil {
		return 0, false, fmt.Errorf("check schema_version table: %w", err)
	}
	if tables == 0 {
		return 0, false, nil
	}
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return 0, true, fmt.Errorf("read schema version: %w", err)
	}
	return version, true, nil
}

func (s *Store) checkTables(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name IN ("+makePlaceholders(len(catalogTables))+")",
		stringArgs(catalogTables)...,
	)
	if err != nil {
		return fmt.Errorf("list catalogue tables: %w", err)
	}
	defer rows.Close()

	present := make(map[string]struct{}, len(catalogTables))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan table name: %w", err)
		}
		present[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list catalogue tables: %w", err)
	}

	var missing []string
	for _, name := range catalogTables {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing tables %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}

// createSchema applies schema.sql and records the version in one transaction.
func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
