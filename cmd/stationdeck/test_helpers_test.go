package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stationdeck/internal/config"
	"stationdeck/internal/testsupport"
)

const testSeed = `{
  "genres": [
    {"id": "chillout", "name": "Chillout", "subGenres": ["Downtempo", "Ambient"]},
    {"id": "jazz", "name": "Jazz", "subGenres": "Bebop"}
  ],
  "stations": [
    {"id": "groove", "name": "Groove Salad", "genreId": "chillout", "subGenres": ["Downtempo"], "imaAdType": "audio", "streamUrl": "https://ice.example.com/groove"},
    {"id": "drone", "name": "Drone Zone", "genreId": "chillout", "subGenres": ["Ambient"], "imaAdType": "video"},
    {"id": "bebop", "name": "Bebop Nights", "genreId": "jazz", "isActive": false}
  ],
  "playerApps": [
    {"id": "player-one", "name": "Radio Player Pro", "platforms": ["iOS", "Android", "Web"], "imaEnabled": true,
     "placements": {"preroll": "/1234567/radio/preroll"}}
  ],
  "exportProfiles": [
    {"id": "chill", "name": "Chill Mix", "genreIds": ["chillout"], "playerId": "player-one", "autoExport": {"enabled": true}},
    {"id": "jazz", "name": "Jazz Picks", "stationIds": ["bebop"]}
  ]
}`

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	seedPath   string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("STATIONDECK_DEFAULT_NETWORK_CODE", "")
	t.Chdir(base)

	cfg := testsupport.NewConfig(t)
	seedPath := filepath.Join(base, "seed.json")
	testsupport.WriteFile(t, seedPath, []byte(testSeed))

	configPath := filepath.Join(homeDir, ".config", "stationdeck", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg, seedPath)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		seedPath:   seedPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	return runCLIWithInput(t, args, configPath, "")
}

func runCLIWithInput(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config, seedPath string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nexport_dir = %q\nlog_dir = %q\n\n[catalog]\nseed_path = %q\n\n[logging]\nlevel = \"error\"\n",
		cfg.Paths.DataDir,
		cfg.Paths.ExportDir,
		cfg.Paths.LogDir,
		seedPath,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func mustRun(t *testing.T, env *cliTestEnv, args ...string) string {
	t.Helper()
	out, stderr, err := runCLI(t, args, env.configPath)
	if err != nil {
		t.Fatalf("%s: %v (stderr: %s)", strings.Join(args, " "), err, stderr)
	}
	return out
}
