package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"stationdeck/internal/catalog"
)

// table maps one catalogue record type onto its SQLite table. Every table
// has id, data (canonical JSON) and updated_at; columns lists the indexed
// columns in between, filled by values.
type table[T any] struct {
	name    string
	columns []string
	id      func(T) string
	values  func(T) []any
	// release names a column with a unique index that must be cleared on
	// changed rows before any row is rewritten, so ownership can move
	// between rows within one sync.
	release string
}

var (
	genreTable = table[catalog.Genre]{
		name:    "genres",
		columns: []string{"name"},
		id:      func(g catalog.Genre) string { return g.ID },
		values:  func(g catalog.Genre) []any { return []any{g.Name} },
	}
	stationTable = table[catalog.Station]{
		name:    "stations",
		columns: []string{"name", "genre_id", "is_active"},
		id:      func(s catalog.Station) string { return s.ID },
		values: func(s catalog.Station) []any {
			return []any{s.Name, nullableString(s.GenreID), boolToInt(s.Active())}
		},
	}
	playerTable = table[catalog.PlayerApp]{
		name:    "player_apps",
		columns: []string{"name", "network_code"},
		id:      func(a catalog.PlayerApp) string { return a.ID },
		values: func(a catalog.PlayerApp) []any {
			return []any{a.Name, nullableString(a.NetworkCode)}
		},
	}
	profileTable = table[catalog.ExportProfile]{
		name:    "export_profiles",
		columns: []string{"name", "player_id", "auto_export"},
		id:      func(p catalog.ExportProfile) string { return p.ID },
		values: func(p catalog.ExportProfile) []any {
			var player any
			if p.PlayerID != nil {
				player = *p.PlayerID
			}
			return []any{p.Name, player, boolToInt(p.AutoExport.Enabled)}
		},
		release: "player_id",
	}
)

func (t table[T]) upsertSQL() string {
	cols := append(append([]string{"id"}, t.columns...), "data", "updated_at")
	updates := make([]string, 0, len(cols)-1)
	for _, col := range cols[1:] {
		updates = append(updates, col+" = excluded."+col)
	}
	return `INSERT INTO ` + t.name + ` (` + strings.Join(cols, ", ") + `) VALUES (` + makePlaceholders(len(cols)) +
		`) ON CONFLICT(id) DO UPDATE SET ` + strings.Join(updates, ", ")
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func readRecords[T any](ctx context.Context, q queryer, t table[T]) ([]T, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, data FROM `+t.name+` ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", t.name, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var (
			id  string
			raw string
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		var record T
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", t.name, id, err)
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func readSnapshot(ctx context.Context, q queryer) (catalog.Snapshot, error) {
	var (
		snap catalog.Snapshot
		err  error
	)
	if snap.Genres, err = readRecords(ctx, q, genreTable); err != nil {
		return catalog.Snapshot{}, err
	}
	if snap.Stations, err = readRecords(ctx, q, stationTable); err != nil {
		return catalog.Snapshot{}, err
	}
	if snap.PlayerApps, err = readRecords(ctx, q, playerTable); err != nil {
		return catalog.Snapshot{}, err
	}
	if snap.ExportProfiles, err = readRecords(ctx, q, profileTable); err != nil {
		return catalog.Snapshot{}, err
	}
	return snap, nil
}

// syncTable rewrites the rows whose canonical JSON differs between before
// and after and deletes rows absent from after.
func syncTable[T any](ctx context.Context, tx *sql.Tx, t table[T], before, after []T, stamp string) error {
	previous := make(map[string]string, len(before))
	for _, record := range before {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode %s: %w", t.name, err)
		}
		previous[t.id(record)] = string(data)
	}

	type pending struct {
		id     string
		data   string
		record T
	}
	var changed []pending
	keep := make(map[string]struct{}, len(after))
	for _, record := range after {
		id := t.id(record)
		keep[id] = struct{}{}
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", t.name, id, err)
		}
		if prev, ok := previous[id]; ok && prev == string(data) {
			continue
		}
		changed = append(changed, pending{id: id, data: string(data), record: record})
	}

	for id := range previous {
		if _, ok := keep[id]; ok {
			continue
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+t.name+` WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete %s %s: %w", t.name, id, err)
		}
	}

	if t.release != "" {
		for _, p := range changed {
			if _, existed := previous[p.id]; !existed {
				continue
			}
			if _, err := tx.ExecContext(ctx, `UPDATE `+t.name+` SET `+t.release+` = NULL WHERE id = ?`, p.id); err != nil {
				return fmt.Errorf("release %s %s: %w", t.name, p.id, err)
			}
		}
	}

	query := t.upsertSQL()
	for _, p := range changed {
		args := append([]any{p.id}, t.values(p.record)...)
		args = append(args, p.data, stamp)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("write %s %s: %w", t.name, p.id, err)
		}
	}
	return nil
}

func writeSnapshot(ctx context.Context, tx *sql.Tx, before, after catalog.Snapshot, stamp string) error {
	if err := syncTable(ctx, tx, genreTable, before.Genres, after.Genres, stamp); err != nil {
		return err
	}
	if err := syncTable(ctx, tx, stationTable, before.Stations, after.Stations, stamp); err != nil {
		return err
	}
	if err := syncTable(ctx, tx, playerTable, before.PlayerApps, after.PlayerApps, stamp); err != nil {
		return err
	}
	return syncTable(ctx, tx, profileTable, before.ExportProfiles, after.ExportProfiles, stamp)
}
