package api

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"stationdeck/internal/catalog"
	"stationdeck/internal/config"
	"stationdeck/internal/export"
	"stationdeck/internal/store"
	"stationdeck/internal/testsupport"
)

func newExportService(t *testing.T, cfg *config.Config, data catalog.Snapshot) (*ExportService, *store.Store) {
	t.Helper()
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.MustImport(t, st, data)
	svc, err := NewExportService(cfg, st, nil)
	if err != nil {
		t.Fatalf("NewExportService: %v", err)
	}
	return svc, st
}

func readPayload(t *testing.T, path string) export.Payload {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var payload export.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return payload
}

func TestExportRunWritesOneFilePerPlatform(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	svc, _ := newExportService(t, cfg, testsupport.Catalog())

	result, err := svc.Run(context.Background(), "chill", false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.PlayerID != "player-one" || result.DanglingPlayer || result.DryRun {
		t.Fatalf("unexpected export header: %+v", result)
	}

	var names []string
	for _, f := range result.Files {
		names = append(names, filepath.Base(f.Path))
		if f.Stations != 2 {
			t.Fatalf("%s: expected 2 stations, got %d", f.Path, f.Stations)
		}
	}
	want := []string{"chill-mix-ios.json", "chill-mix-android.json", "chill-mix-homeassistant.json"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("file names mismatch (-want +got):\n%s", diff)
	}

	ios := readPayload(t, filepath.Join(cfg.Paths.ExportDir, "chill-mix-ios.json"))
	if ios.Ads == nil || ios.Ads.Mode != "vmap" {
		t.Fatalf("expected vmap ads for ios, got %+v", ios.Ads)
	}
	if got := ios.Ads.Placements.AudioRules.Path(); got != "/1234567/webradio/audio_adrules" {
		t.Fatalf("ios audio rules = %q", got)
	}
	if ios.Settings != nil {
		t.Fatal("ios payload must not carry settings")
	}
	var stationNames []string
	for _, s := range ios.Stations {
		stationNames = append(stationNames, s.Name)
	}
	if diff := cmp.Diff([]string{"Drone Zone", "SomaFM Groove Salad"}, stationNames); diff != "" {
		t.Fatalf("station order mismatch (-want +got):\n%s", diff)
	}

	ha := readPayload(t, filepath.Join(cfg.Paths.ExportDir, "chill-mix-homeassistant.json"))
	if ha.Settings == nil || !ha.Settings.AdsEnabled || ha.Settings.UITheme != "dark" {
		t.Fatalf("unexpected home assistant settings: %+v", ha.Settings)
	}
	if ha.App == nil || ha.App.Platform != "homeassistant" || ha.App.ID != "radio-player-pro" {
		t.Fatalf("unexpected home assistant app block: %+v", ha.App)
	}
}

func TestExportRunDryRunWritesNothing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	svc, _ := newExportService(t, cfg, testsupport.Catalog())
	ctx := context.Background()

	dry, err := svc.Run(ctx, "chill", true)
	if err != nil {
		t.Fatalf("Run dry: %v", err)
	}
	if !dry.DryRun || len(dry.Files) != 3 {
		t.Fatalf("unexpected dry run result: %+v", dry)
	}
	for _, f := range dry.Files {
		if _, err := os.Stat(f.Path); !os.IsNotExist(err) {
			t.Fatalf("dry run wrote %s", f.Path)
		}
	}

	if _, err := svc.Run(ctx, "chill", false); err != nil {
		t.Fatalf("Run: %v", err)
	}
	again, err := svc.Run(ctx, "chill", false)
	if err != nil {
		t.Fatalf("Run again: %v", err)
	}
	for _, f := range again.Files {
		if !f.Unchanged {
			t.Fatalf("expected %s unchanged on second run", f.Path)
		}
	}
}

func TestExportRunWithoutPlayer(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	svc, _ := newExportService(t, cfg, testsupport.Catalog())

	result, err := svc.Run(context.Background(), "jazz", false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected one file, got %+v", result.Files)
	}
	f := result.Files[0]
	if f.Platform != "" || filepath.Base(f.Path) != "jazz-picks.json" {
		t.Fatalf("unexpected file: %+v", f)
	}
	payload := readPayload(t, f.Path)
	if payload.App != nil || payload.Ads != nil || payload.Settings != nil {
		t.Fatalf("expected stations-only payload, got %+v", payload)
	}
	if len(payload.Stations) != 1 || payload.Stations[0].ID != "bebop" {
		t.Fatalf("expected explicitly selected inactive station, got %+v", payload.Stations)
	}
}

func TestExportRunDanglingPlayer(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	data := testsupport.Catalog()
	ghost := "ghost"
	data.ExportProfiles[1].PlayerID = &ghost
	svc, _ := newExportService(t, cfg, data)

	result, err := svc.Run(context.Background(), "jazz", false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.DanglingPlayer || result.PlayerID != "ghost" {
		t.Fatalf("expected dangling player reported, got %+v", result)
	}
	if len(result.Files) != 1 || result.Files[0].Platform != "" {
		t.Fatalf("expected single stations-only file, got %+v", result.Files)
	}
}

func TestExportRunUnknownProfile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	svc, _ := newExportService(t, cfg, testsupport.Catalog())

	_, err := svc.Run(context.Background(), "missing", false)
	if !errors.Is(err, export.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if _, err := svc.Run(context.Background(), " ", false); err == nil {
		t.Fatal("expected error for blank profile id")
	}
}

func TestExportAutoOnlyEnabledProfiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	svc, _ := newExportService(t, cfg, testsupport.Catalog())

	results, err := svc.Auto(context.Background(), false)
	if err != nil {
		t.Fatalf("Auto: %v", err)
	}
	if len(results) != 1 || results[0].ProfileID != "chill" {
		t.Fatalf("expected only chill exported, got %+v", results)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.ExportDir, "jazz-picks.json")); !os.IsNotExist(err) {
		t.Fatalf("jazz profile must not be auto-exported, stat err=%v", err)
	}
}

func TestExportNetworkCodeResolution(t *testing.T) {
	data := testsupport.Catalog()
	data.PlayerApps[0].NetworkCode = ""
	data.PlayerApps[0].Placements = catalog.Placements{}

	tests := []struct {
		name    string
		opts    []testsupport.ConfigOption
		setting string
		want    string
	}{
		{name: "no code", want: ""},
		{name: "stored setting", setting: "5550001", want: "5550001"},
		{name: "config override", opts: []testsupport.ConfigOption{testsupport.WithNetworkCode("7654321")}, setting: "5550001", want: "7654321"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testsupport.NewConfig(t, tt.opts...)
			svc, st := newExportService(t, cfg, data)
			if tt.setting != "" {
				if err := st.SetSetting(context.Background(), store.SettingDefaultNetworkCode, tt.setting); err != nil {
					t.Fatalf("SetSetting: %v", err)
				}
			}
			result, err := svc.Run(context.Background(), "chill", false)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			payload := readPayload(t, result.Files[0].Path)
			if payload.Ads == nil {
				t.Fatal("expected ads block")
			}
			if payload.Ads.NetworkCode != tt.want {
				t.Fatalf("network code = %q, want %q", payload.Ads.NetworkCode, tt.want)
			}
			if enabled := payload.Ads.Placements.AudioRules.Enabled; enabled != (tt.want != "") {
				t.Fatalf("audio rules enabled = %v for code %q", enabled, tt.want)
			}
		})
	}
}

func TestNewExportServiceRequiresDependencies(t *testing.T) {
	if _, err := NewExportService(nil, nil, nil); err == nil {
		t.Fatal("expected error without config")
	}
	if _, err := NewExportService(testsupport.NewConfig(t), nil, nil); err == nil {
		t.Fatal("expected error without store")
	}
}
