package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SettingDefaultNetworkCode holds the network code derived from the last
// seed import.
const SettingDefaultNetworkCode = "default_network_code"

// Setting reads a stored setting. The boolean is false when it was never set.
func (s *Store) Setting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ensureContext(ctx), `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores a setting, replacing any previous value.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("write setting %s: %w", key, err)
		}
		return nil
	})
}

// Stats summarizes catalogue contents for status output.
type Stats struct {
	Genres             int
	Stations           int
	ActiveStations     int
	PlayerApps         int
	Profiles           int
	AutoExportProfiles int
	AssignedPlayers    int
}

// Stats counts catalogue records.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	var stats Stats
	queries := []struct {
		dest  *int
		query string
	}{
		{&stats.Genres, `SELECT COUNT(1) FROM genres`},
		{&stats.Stations, `SELECT COUNT(1) FROM stations`},
		{&stats.ActiveStations, `SELECT COUNT(1) FROM stations WHERE is_active = 1`},
		{&stats.PlayerApps, `SELECT COUNT(1) FROM player_apps`},
		{&stats.Profiles, `SELECT COUNT(1) FROM export_profiles`},
		{&stats.AutoExportProfiles, `SELECT COUNT(1) FROM export_profiles WHERE auto_export = 1`},
		{&stats.AssignedPlayers, `SELECT COUNT(1) FROM export_profiles WHERE player_id IS NOT NULL`},
	}
	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return Stats{}, fmt.Errorf("count catalogue: %w", err)
		}
	}
	return stats, nil
}
