package main

import (
	"testing"
)

func TestLogsCommandFiltersByProfile(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRun(t, env, "logs")
	requireContains(t, out, "No log lines")

	mustRun(t, env, "--log-level", "info", "import")
	mustRun(t, env, "--log-level", "info", "export", "run", "--profile", "jazz")

	out = mustRun(t, env, "logs", "--profile", "jazz")
	requireContains(t, out, "export target written")
	requireContains(t, out, "profile_id=jazz")

	if _, _, err := runCLI(t, []string{"logs", "-n", "0"}, env.configPath); err == nil {
		t.Fatal("expected error for non-positive line count")
	}
}
