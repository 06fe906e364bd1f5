package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stationdeck/internal/catalog"
	"stationdeck/internal/validation"
)

// Snapshot returns the full catalogue in insertion order.
func (s *Store) Snapshot(ctx context.Context) (catalog.Snapshot, error) {
	return readSnapshot(ensureContext(ctx), s.db)
}

// mutate applies fn to the current catalogue inside one transaction and
// writes back whatever it changed. fn may run more than once when SQLite
// reports contention, so it must not have side effects beyond its result.
func (s *Store) mutate(ctx context.Context, fn func(catalog.Snapshot) (catalog.Snapshot, error)) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		before, err := readSnapshot(ctx, tx)
		if err != nil {
			return err
		}
		after, err := fn(before.Clone())
		if err != nil {
			return err
		}
		if err := writeSnapshot(ctx, tx, before, after, s.now().UTC().Format(time.RFC3339Nano)); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		return nil
	})
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// Genre fetches one genre.
func (s *Store) Genre(ctx context.Context, id string) (catalog.Genre, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return catalog.Genre{}, err
	}
	genre, ok := snap.Genre(id)
	if !ok {
		return catalog.Genre{}, fmt.Errorf("genre %q: %w", id, ErrNotFound)
	}
	return genre, nil
}

// Station fetches one station.
func (s *Store) Station(ctx context.Context, id string) (catalog.Station, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return catalog.Station{}, err
	}
	station, ok := snap.Station(id)
	if !ok {
		return catalog.Station{}, fmt.Errorf("station %q: %w", id, ErrNotFound)
	}
	return station, nil
}

// PlayerApp fetches one player app.
func (s *Store) PlayerApp(ctx context.Context, id string) (catalog.PlayerApp, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return catalog.PlayerApp{}, err
	}
	app, ok := snap.PlayerApp(id)
	if !ok {
		return catalog.PlayerApp{}, fmt.Errorf("player app %q: %w", id, ErrNotFound)
	}
	return app, nil
}

// Profile fetches one export profile.
func (s *Store) Profile(ctx context.Context, id string) (catalog.ExportProfile, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return catalog.ExportProfile{}, err
	}
	profile, ok := snap.Profile(id)
	if !ok {
		return catalog.ExportProfile{}, fmt.Errorf("export profile %q: %w", id, ErrNotFound)
	}
	return profile, nil
}

// SaveGenre upserts a genre and trims the sub-genres of its stations to the
// saved set. A blank id is assigned a new UUID.
func (s *Store) SaveGenre(ctx context.Context, genre catalog.Genre) (catalog.Genre, error) {
	genre = catalog.NormalizeGenre(genre)
	genre.ID = newID(genre.ID)
	if err := validation.Struct("genre", genre); err != nil {
		return catalog.Genre{}, err
	}
	var saved catalog.Genre
	err := s.mutate(ctx, func(snap catalog.Snapshot) (catalog.Snapshot, error) {
		next := catalog.ApplyGenre(snap, genre)
		saved, _ = next.Genre(genre.ID)
		return next, nil
	})
	if err != nil {
		return catalog.Genre{}, fmt.Errorf("save genre: %w", err)
	}
	return saved, nil
}

// SaveStation canonicalizes and upserts a station.
func (s *Store) SaveStation(ctx context.Context, station catalog.Station) (catalog.Station, error) {
	station.ID = newID(station.ID)
	var saved catalog.Station
	err := s.mutate(ctx, func(snap catalog.Snapshot) (catalog.Snapshot, error) {
		saved = catalog.NormalizeStation(station, snap.Genres)
		if err := validation.Struct("station", saved); err != nil {
			return snap, err
		}
		snap.Stations = upsert(snap.Stations, saved, stationTable.id)
		return snap, nil
	})
	if err != nil {
		return catalog.Station{}, fmt.Errorf("save station: %w", err)
	}
	return saved, nil
}

// SavePlayerApp canonicalizes and upserts a player app.
func (s *Store) SavePlayerApp(ctx context.Context, app catalog.PlayerApp) (catalog.PlayerApp, error) {
	saved := catalog.NormalizePlayerApp(app)
	saved.ID = newID(saved.ID)
	if err := validation.Struct("player app", saved); err != nil {
		return catalog.PlayerApp{}, err
	}
	err := s.mutate(ctx, func(snap catalog.Snapshot) (catalog.Snapshot, error) {
		snap.PlayerApps = upsert(snap.PlayerApps, saved, playerTable.id)
		return snap, nil
	})
	if err != nil {
		return catalog.PlayerApp{}, fmt.Errorf("save player app: %w", err)
	}
	return saved, nil
}

// SaveProfile upserts an export profile. When the profile claims a player
// app, every other profile holding that player is released; their ids are
// returned alongside the saved record.
func (s *Store) SaveProfile(ctx context.Context, profile catalog.ExportProfile) (catalog.ExportProfile, []string, error) {
	profile = catalog.NormalizeProfile(profile)
	profile.ID = newID(profile.ID)
	if err := validation.Struct("export profile", profile); err != nil {
		return catalog.ExportProfile{}, nil, err
	}
	var released []string
	err := s.mutate(ctx, func(snap catalog.Snapshot) (catalog.Snapshot, error) {
		if profile.PlayerID != nil && !contains(snap.PlayerApps, *profile.PlayerID, playerTable.id) {
			return snap, fmt.Errorf("player app %q: %w", *profile.PlayerID, ErrNotFound)
		}
		before := snap.ExportProfiles
		snap.ExportProfiles = catalog.SaveProfile(profile, before)
		released = released[:0]
		for _, id := range catalog.ReleasedProfiles(before, snap.ExportProfiles) {
			if id != profile.ID {
				released = append(released, id)
			}
		}
		return snap, nil
	})
	if err != nil {
		return catalog.ExportProfile{}, nil, fmt.Errorf("save export profile: %w", err)
	}
	return profile, released, nil
}

// DeleteGenre removes a genre and detaches it from stations and profiles.
func (s *Store) DeleteGenre(ctx context.Context, id string) error {
	return s.remove(ctx, "genre", id, func(snap catalog.Snapshot) (catalog.Snapshot, bool) {
		if _, ok := snap.Genre(id); !ok {
			return snap, false
		}
		return catalog.DeleteGenre(snap, id), true
	})
}

// DeleteStation removes a station and its explicit profile selections.
func (s *Store) DeleteStation(ctx context.Context, id string) error {
	return s.remove(ctx, "station", id, func(snap catalog.Snapshot) (catalog.Snapshot, bool) {
		if _, ok := snap.Station(id); !ok {
			return snap, false
		}
		return catalog.DeleteStation(snap, id), true
	})
}

// DeletePlayerApp removes a player app and clears profiles pointing at it.
func (s *Store) DeletePlayerApp(ctx context.Context, id string) error {
	return s.remove(ctx, "player app", id, func(snap catalog.Snapshot) (catalog.Snapshot, bool) {
		if _, ok := snap.PlayerApp(id); !ok {
			return snap, false
		}
		return catalog.DeletePlayerApp(snap, id), true
	})
}

// DeleteProfile removes an export profile.
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	return s.remove(ctx, "export profile", id, func(snap catalog.Snapshot) (catalog.Snapshot, bool) {
		if _, ok := snap.Profile(id); !ok {
			return snap, false
		}
		return catalog.DeleteProfile(snap, id), true
	})
}

func (s *Store) remove(ctx context.Context, kind, id string, fn func(catalog.Snapshot) (catalog.Snapshot, bool)) error {
	err := s.mutate(ctx, func(snap catalog.Snapshot) (catalog.Snapshot, error) {
		next, ok := fn(snap)
		if !ok {
			return snap, fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
		}
		return next, nil
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}
