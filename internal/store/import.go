package store

import (
	"context"
	"fmt"

	"stationdeck/internal/catalog"
	"stationdeck/internal/validation"
)

// ImportMode selects how an imported dataset combines with the stored one.
type ImportMode string

const (
	// ImportMerge upserts imported records over the stored catalogue.
	ImportMerge ImportMode = "merge"
	// ImportReplace discards the stored catalogue first.
	ImportReplace ImportMode = "replace"
)

// ImportResult counts the records an import wrote.
type ImportResult struct {
	Genres     int
	Stations   int
	PlayerApps int
	Profiles   int
}

// Import canonicalizes a dataset and writes it in one transaction. Records
// without an id are assigned one. Every record is validated before anything
// is written.
func (s *Store) Import(ctx context.Context, data catalog.Snapshot, mode ImportMode) (ImportResult, error) {
	incoming := withIDs(data)
	result := ImportResult{
		Genres:     len(incoming.Genres),
		Stations:   len(incoming.Stations),
		PlayerApps: len(incoming.PlayerApps),
		Profiles:   len(incoming.ExportProfiles),
	}
	err := s.mutate(ctx, func(snap catalog.Snapshot) (catalog.Snapshot, error) {
		var next catalog.Snapshot
		switch mode {
		case ImportReplace:
			next = catalog.NormalizeSnapshot(incoming)
		case ImportMerge, "":
			next = merge(snap, incoming)
		default:
			return snap, fmt.Errorf("unknown import mode %q", mode)
		}
		if err := validateSnapshot(next); err != nil {
			return snap, err
		}
		return next, nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("import catalogue: %w", err)
	}
	return result, nil
}

func withIDs(data catalog.Snapshot) catalog.Snapshot {
	out := data.Clone()
	for i := range out.Genres {
		out.Genres[i].ID = newID(out.Genres[i].ID)
	}
	for i := range out.Stations {
		out.Stations[i].ID = newID(out.Stations[i].ID)
	}
	for i := range out.PlayerApps {
		out.PlayerApps[i].ID = newID(out.PlayerApps[i].ID)
	}
	for i := range out.ExportProfiles {
		out.ExportProfiles[i].ID = newID(out.ExportProfiles[i].ID)
	}
	return out
}

// merge applies incoming records onto base in dependency order: genres
// first so stations canonicalize against the merged genre set, profiles
// last so ownership follows import order.
func merge(base, incoming catalog.Snapshot) catalog.Snapshot {
	out := base
	for _, genre := range incoming.Genres {
		out = catalog.ApplyGenre(out, genre)
	}
	for _, station := range incoming.Stations {
		out.Stations = upsert(out.Stations, catalog.NormalizeStation(station, out.Genres), stationTable.id)
	}
	for _, app := range incoming.PlayerApps {
		out.PlayerApps = upsert(out.PlayerApps, catalog.NormalizePlayerApp(app), playerTable.id)
	}
	for _, profile := range incoming.ExportProfiles {
		out.ExportProfiles = catalog.SaveProfile(profile, out.ExportProfiles)
	}
	return out
}

func validateSnapshot(snap catalog.Snapshot) error {
	for _, genre := range snap.Genres {
		if err := validation.Struct("genre "+genre.ID, genre); err != nil {
			return err
		}
	}
	for _, station := range snap.Stations {
		if err := validation.Struct("station "+station.ID, station); err != nil {
			return err
		}
	}
	for _, app := range snap.PlayerApps {
		if err := validation.Struct("player app "+app.ID, app); err != nil {
			return err
		}
	}
	for _, profile := range snap.ExportProfiles {
		if err := validation.Struct("export profile "+profile.ID, profile); err != nil {
			return err
		}
	}
	return nil
}
