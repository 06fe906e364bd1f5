package testsupport

import (
	"context"
	"testing"

	"stationdeck/internal/catalog"
	"stationdeck/internal/config"
	"stationdeck/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// MustImport replaces the store contents with data.
func MustImport(t testing.TB, st *store.Store, data catalog.Snapshot) {
	t.Helper()

	if _, err := st.Import(context.Background(), data, store.ImportReplace); err != nil {
		t.Fatalf("store.Import: %v", err)
	}
}

// Catalog returns a small catalogue exercising genres, sub-genres, inactive
// stations, a multi-platform player app and profile ownership.
func Catalog() catalog.Snapshot {
	inactive := false
	player := "player-one"
	return catalog.Snapshot{
		Genres: []catalog.Genre{
			{ID: "chillout", Name: "Chillout", SubGenres: []string{"Downtempo", "Ambient"}},
			{ID: "jazz", Name: "Jazz", SubGenres: []string{"Bebop"}},
		},
		Stations: []catalog.Station{
			{ID: "groove", Name: "SomaFM Groove Salad", GenreID: "chillout", SubGenres: []string{"Downtempo"}, Tags: []string{"chillout vibes", "ambient"}, ImaAdType: catalog.AdTypeAudio, LogoURL: "groove.png"},
			{ID: "drone", Name: "Drone Zone", GenreID: "chillout", SubGenres: []string{"ambient"}, Tags: []string{"drone"}, ImaAdType: catalog.AdTypeVideo},
			{ID: "bebop", Name: "Bebop Nights", GenreID: "jazz", SubGenres: []string{"Bebop"}, IsActive: &inactive},
		},
		PlayerApps: []catalog.PlayerApp{{
			ID:          "player-one",
			Name:        "Radio Player Pro",
			Platforms:   []string{"iOS", "Android", "Home Assistant"},
			NetworkCode: "1234567",
			ImaEnabled:  true,
			Placements:  catalog.Placements{Preroll: "/1234567/radio/preroll"},
		}},
		ExportProfiles: []catalog.ExportProfile{
			{ID: "chill", Name: "Chill Mix", GenreIDs: []string{"chillout"}, PlayerID: &player, AutoExport: catalog.AutoExport{Enabled: true}},
			{ID: "jazz", Name: "Jazz Picks", StationIDs: []string{"bebop"}},
		},
	}
}
