package main

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"stationdeck/internal/api"
	"stationdeck/internal/catalog"
)

func TestImportAndList(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRun(t, env, "import", "--json")
	var summary api.ImportSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode import summary: %v\n%s", err, out)
	}
	if summary.Stations != 3 || summary.NetworkCode != "1234567" || summary.Path != env.seedPath {
		t.Fatalf("unexpected import summary: %+v", summary)
	}

	out = mustRun(t, env, "station", "list")
	requireContains(t, out, "Groove Salad")
	requireContains(t, out, "Bebop Nights")

	out = mustRun(t, env, "genre", "list", "--json")
	var genres []catalog.Genre
	if err := json.Unmarshal([]byte(out), &genres); err != nil {
		t.Fatalf("decode genres: %v", err)
	}
	if len(genres) != 2 || genres[1].ID != "jazz" || len(genres[1].SubGenres) != 1 || genres[1].SubGenres[0] != "Bebop" {
		t.Fatalf("unexpected genres: %+v", genres)
	}

	out = mustRun(t, env, "player", "show", "player-one")
	var player catalog.PlayerApp
	if err := json.Unmarshal([]byte(out), &player); err != nil {
		t.Fatalf("decode player: %v", err)
	}
	if player.Platform != "ios" {
		t.Fatalf("expected primary platform ios, got %q", player.Platform)
	}
}

func TestListEmptyCatalogue(t *testing.T) {
	env := setupCLITestEnv(t)
	out := mustRun(t, env, "profile", "list")
	requireContains(t, out, "No profiles")

	out = mustRun(t, env, "station", "list", "--json")
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", out)
	}
}

func TestProfileSaveReleasesPlayer(t *testing.T) {
	env := setupCLITestEnv(t)
	mustRun(t, env, "import")

	record := `{"id": "jazz", "name": "Jazz Picks", "stationIds": ["bebop"], "playerId": "player-one"}`
	out, stderr, err := runCLIWithInput(t, []string{"profile", "save", "--file", "-"}, env.configPath, record)
	if err != nil {
		t.Fatalf("profile save: %v (stderr: %s)", err, stderr)
	}
	requireContains(t, out, "Saved profile jazz")
	requireContains(t, out, "Released player app from profile chill")

	out = mustRun(t, env, "profile", "show", "chill")
	var chill catalog.ExportProfile
	if err := json.Unmarshal([]byte(out), &chill); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if chill.PlayerID != nil {
		t.Fatalf("expected chill released, got %q", *chill.PlayerID)
	}
}

func TestSaveRejectsInvalidRecord(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLIWithInput(t, []string{"station", "save", "-f", "-"}, env.configPath, `{"id": "x", "name": "", "bitrate": -1}`)
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "name")
}

func TestDeleteStation(t *testing.T) {
	env := setupCLITestEnv(t)
	mustRun(t, env, "import")

	out := mustRun(t, env, "station", "delete", "bebop")
	requireContains(t, out, "Deleted station bebop")

	if _, _, err := runCLI(t, []string{"station", "show", "bebop"}, env.configPath); err == nil {
		t.Fatal("expected not found after delete")
	}
	if _, _, err := runCLI(t, []string{"station", "delete", "bebop"}, env.configPath); err == nil {
		t.Fatal("expected error deleting missing station")
	}
}
