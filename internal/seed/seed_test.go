package seed

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"stationdeck/internal/testsupport"
)

const sample = `{
  "genres": [
    {"id": "chillout", "name": "Chillout", "subGenres": "Downtempo, Ambient , "},
    {"id": "jazz", "name": "Jazz", "subGenres": ["Bebop"]}
  ],
  "stations": [
    {"id": "groove", "name": "SomaFM Groove Salad", "genreId": "chillout", "subGenres": "downtempo",
     "tags": ["chillout vibes"], "imaAdType": "audio", "isActive": true}
  ],
  "playerApps": [
    {"id": "p1", "name": "Player", "platform": "iOS", "networkCode": "1234567", "imaEnabled": true,
     "placements": {"preroll": "/1234567/radio/preroll"}},
    {"id": "p2", "name": "Other", "platforms": ["android"], "placements": {"preroll": "/1234567/radio/preroll"}}
  ],
  "exportProfiles": [
    {"id": "chill", "name": "Chill Mix", "genreIds": ["chillout"], "playerId": "p1", "autoExport": {"enabled": true}}
  ]
}`

func TestDecodeSplitsLegacySubGenres(t *testing.T) {
	snap, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff([]string{"Downtempo", "Ambient"}, snap.Genres[0].SubGenres); diff != "" {
		t.Fatalf("genre sub-genres mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Bebop"}, snap.Genres[1].SubGenres); diff != "" {
		t.Fatalf("array sub-genres mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"downtempo"}, snap.Stations[0].SubGenres); diff != "" {
		t.Fatalf("station sub-genres mismatch (-want +got):\n%s", diff)
	}
	if snap.Stations[0].IsActive == nil || !*snap.Stations[0].IsActive {
		t.Fatal("expected isActive to decode")
	}
	if snap.PlayerApps[0].Platform != "iOS" {
		t.Fatalf("expected legacy platform, got %q", snap.PlayerApps[0].Platform)
	}
	profile := snap.ExportProfiles[0]
	if profile.PlayerID == nil || *profile.PlayerID != "p1" || !profile.AutoExport.Enabled {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"empty":     "  ",
		"not json":  "{",
		"bad shape": `{"stations": {"id": "x"}}`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(input)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadAndNetworkCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	testsupport.WriteFile(t, path, []byte(sample))

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := NetworkCode(snap); got != "1234567" {
		t.Fatalf("NetworkCode = %q", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
