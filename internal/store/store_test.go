package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"stationdeck/internal/catalog"
	"stationdeck/internal/store"
	"stationdeck/internal/testsupport"
	"stationdeck/internal/validation"
)

func strPtr(v string) *string { return &v }

func TestOpenCreatesSchemaAndReopens(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.MustImport(t, st, testsupport.Catalog())
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	snap, err := reopened.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Stations) != 3 || len(snap.ExportProfiles) != 2 {
		t.Fatalf("unexpected snapshot after reopen: %d stations, %d profiles", len(snap.Stations), len(snap.ExportProfiles))
	}
	if reopened.Path() != cfg.DatabasePath() {
		t.Fatalf("unexpected path %q", reopened.Path())
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	tests := []struct {
		name   string
		tamper string
	}{
		{name: "version", tamper: "UPDATE schema_version SET version = 99"},
		{name: "missing table", tamper: "DROP TABLE settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testsupport.NewConfig(t)
			st := testsupport.MustOpenStore(t, cfg)
			if err := st.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			db, err := sql.Open("sqlite", cfg.DatabasePath())
			if err != nil {
				t.Fatalf("sql.Open: %v", err)
			}
			if _, err := db.Exec(tt.tamper); err != nil {
				t.Fatalf("tamper: %v", err)
			}
			db.Close()

			reopened, err := store.Open(cfg)
			if err == nil {
				reopened.Close()
				t.Fatal("expected schema mismatch")
			}
			if !errors.Is(err, store.ErrSchemaMismatch) {
				t.Fatalf("expected ErrSchemaMismatch, got %v", err)
			}
		})
	}
}

func TestImportCanonicalizesAndKeepsOrder(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	data := testsupport.Catalog()
	data.Stations[0].SubGenres = []string{"downtempo", "Techno"}
	data.PlayerApps[0].Platforms = []string{" iOS ", "ios", "Android"}

	result, err := st.Import(context.Background(), data, store.ImportReplace)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Stations != 3 || result.Genres != 2 {
		t.Fatalf("unexpected result %+v", result)
	}

	snap, err := st.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	var ids []string
	for _, s := range snap.Stations {
		ids = append(ids, s.ID)
	}
	if diff := cmp.Diff([]string{"groove", "drone", "bebop"}, ids); diff != "" {
		t.Fatalf("station order mismatch (-want +got):\n%s", diff)
	}
	groove, _ := snap.Station("groove")
	if diff := cmp.Diff([]string{"Downtempo"}, groove.SubGenres); diff != "" {
		t.Fatalf("sub-genres not canonicalized (-want +got):\n%s", diff)
	}
	player, _ := snap.PlayerApp("player-one")
	if diff := cmp.Diff([]string{"ios", "android"}, player.Platforms); diff != "" {
		t.Fatalf("platforms not canonicalized (-want +got):\n%s", diff)
	}
}

func TestImportRejectsInvalidRecords(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	data := testsupport.Catalog()
	data.Stations[1].Name = ""

	_, err := st.Import(context.Background(), data, store.ImportReplace)
	if !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	snap, err := st.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Stations) != 0 {
		t.Fatalf("expected nothing written, got %d stations", len(snap.Stations))
	}
}

func TestImportMergeUpserts(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	testsupport.MustImport(t, st, testsupport.Catalog())

	extra := catalog.Snapshot{
		Stations: []catalog.Station{
			{ID: "groove", Name: "Groove Salad Classic", GenreID: "chillout"},
			{Name: "New Station"},
		},
	}
	if _, err := st.Import(context.Background(), extra, store.ImportMerge); err != nil {
		t.Fatalf("Import merge: %v", err)
	}
	snap, err := st.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Stations) != 4 {
		t.Fatalf("expected 4 stations, got %d", len(snap.Stations))
	}
	groove, _ := snap.Station("groove")
	if groove.Name != "Groove Salad Classic" {
		t.Fatalf("expected merged name, got %q", groove.Name)
	}
	if snap.Stations[3].ID == "" {
		t.Fatal("expected generated id for new station")
	}
}

func TestSaveProfileReassignsPlayer(t *testing.T) {
	ctx := context.Background()
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	testsupport.MustImport(t, st, testsupport.Catalog())

	saved, released, err := st.SaveProfile(ctx, catalog.ExportProfile{ID: "jazz", Name: "Jazz Picks", PlayerID: strPtr(" player-one ")})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if saved.PlayerID == nil || *saved.PlayerID != "player-one" {
		t.Fatalf("unexpected saved player %v", saved.PlayerID)
	}
	if diff := cmp.Diff([]string{"chill"}, released); diff != "" {
		t.Fatalf("released mismatch (-want +got):\n%s", diff)
	}

	chill, err := st.Profile(ctx, "chill")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if chill.PlayerID != nil {
		t.Fatalf("expected chill to lose its player, got %q", *chill.PlayerID)
	}
	stats, err := st.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.AssignedPlayers != 1 {
		t.Fatalf("expected exactly one assigned player, got %d", stats.AssignedPlayers)
	}
}

func TestSaveProfileUnknownPlayer(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	testsupport.MustImport(t, st, testsupport.Catalog())

	_, _, err := st.SaveProfile(context.Background(), catalog.ExportProfile{Name: "New", PlayerID: strPtr("missing")})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveGenreTrimsStationSubGenres(t *testing.T) {
	ctx := context.Background()
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	testsupport.MustImport(t, st, testsupport.Catalog())

	if _, err := st.SaveGenre(ctx, catalog.Genre{ID: "chillout", Name: "Chillout", SubGenres: []string{"Ambient"}}); err != nil {
		t.Fatalf("SaveGenre: %v", err)
	}
	groove, err := st.Station(ctx, "groove")
	if err != nil {
		t.Fatalf("Station: %v", err)
	}
	if len(groove.SubGenres) != 0 {
		t.Fatalf("expected Downtempo to be dropped, got %v", groove.SubGenres)
	}
	drone, err := st.Station(ctx, "drone")
	if err != nil {
		t.Fatalf("Station: %v", err)
	}
	if diff := cmp.Diff([]string{"Ambient"}, drone.SubGenres); diff != "" {
		t.Fatalf("sub-genre mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveStationAssignsIDAndValidates(t *testing.T) {
	ctx := context.Background()
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	testsupport.MustImport(t, st, testsupport.Catalog())

	saved, err := st.SaveStation(ctx, catalog.Station{Name: " Lush ", GenreID: "chillout", SubGenres: []string{"AMBIENT", "Polka"}, ImaAdType: "Video"})
	if err != nil {
		t.Fatalf("SaveStation: %v", err)
	}
	if saved.ID == "" || saved.Name != "Lush" {
		t.Fatalf("unexpected saved station %+v", saved)
	}
	if diff := cmp.Diff([]string{"Ambient"}, saved.SubGenres); diff != "" {
		t.Fatalf("sub-genre mismatch (-want +got):\n%s", diff)
	}
	if saved.ImaAdType != catalog.AdTypeVideo {
		t.Fatalf("unexpected ad type %q", saved.ImaAdType)
	}

	_, err = st.SaveStation(ctx, catalog.Station{Name: "Bad", StreamURL: "not a url"})
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.ErrorKind() != "validation" {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	testsupport.MustImport(t, st, testsupport.Catalog())

	if err := st.DeleteStation(ctx, "bebop"); err != nil {
		t.Fatalf("DeleteStation: %v", err)
	}
	jazz, err := st.Profile(ctx, "jazz")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if len(jazz.StationIDs) != 0 {
		t.Fatalf("expected station id removed, got %v", jazz.StationIDs)
	}

	if err := st.DeletePlayerApp(ctx, "player-one"); err != nil {
		t.Fatalf("DeletePlayerApp: %v", err)
	}
	chill, err := st.Profile(ctx, "chill")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if chill.PlayerID != nil {
		t.Fatal("expected player reference cleared")
	}

	if err := st.DeleteGenre(ctx, "chillout"); err != nil {
		t.Fatalf("DeleteGenre: %v", err)
	}
	groove, err := st.Station(ctx, "groove")
	if err != nil {
		t.Fatalf("Station: %v", err)
	}
	if groove.GenreID != "" || len(groove.SubGenres) != 0 {
		t.Fatalf("expected genre detached, got %+v", groove)
	}

	if err := st.DeleteProfile(ctx, "chill"); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	if _, err := st.Profile(ctx, "chill"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	checks := map[string]func() error{
		"genre":   func() error { return st.DeleteGenre(ctx, "nope") },
		"station": func() error { return st.DeleteStation(ctx, "nope") },
		"player":  func() error { return st.DeletePlayerApp(ctx, "nope") },
		"profile": func() error { return st.DeleteProfile(ctx, "nope") },
	}
	for name, fn := range checks {
		t.Run(name, func(t *testing.T) {
			if err := fn(); !errors.Is(err, store.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestSettingsAndStats(t *testing.T) {
	ctx := context.Background()
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	testsupport.MustImport(t, st, testsupport.Catalog())

	if _, ok, err := st.Setting(ctx, store.SettingDefaultNetworkCode); err != nil || ok {
		t.Fatalf("expected unset setting, ok=%v err=%v", ok, err)
	}
	if err := st.SetSetting(ctx, store.SettingDefaultNetworkCode, "1234567"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if err := st.SetSetting(ctx, store.SettingDefaultNetworkCode, "7654321"); err != nil {
		t.Fatalf("SetSetting overwrite: %v", err)
	}
	value, ok, err := st.Setting(ctx, store.SettingDefaultNetworkCode)
	if err != nil || !ok || value != "7654321" {
		t.Fatalf("unexpected setting value=%q ok=%v err=%v", value, ok, err)
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	want := store.Stats{Genres: 2, Stations: 3, ActiveStations: 2, PlayerApps: 1, Profiles: 2, AutoExportProfiles: 1, AssignedPlayers: 1}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}
