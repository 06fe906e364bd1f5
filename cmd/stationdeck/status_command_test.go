package main

import (
	"strings"
	"testing"

	"stationdeck/internal/api"
	"stationdeck/internal/preflight"
)

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRun(t, env, "status")
	requireContains(t, out, "== Paths ==")
	requireContains(t, out, "Export directory")
	requireContains(t, out, "Seed file")
	requireContains(t, out, "Network code")

	mustRun(t, env, "import")
	out = mustRun(t, env, "status")
	requireContains(t, out, "3 (2 active)")
	requireContains(t, out, "1234567")
}

func TestRenderStatusColor(t *testing.T) {
	checks := []preflight.Result{
		{Name: "Export directory", Passed: true, Detail: "/tmp/exports (read/write ok)"},
		{Name: "Seed file", Detail: "/tmp/seed.json (error: does not exist)"},
	}
	status := api.CatalogStatus{PlayerApps: 1}

	plain := renderStatus(checks, status, false)
	if strings.Contains(plain, "\x1b[") {
		t.Fatalf("plain output contains ANSI codes: %q", plain)
	}
	requireContains(t, plain, "[ERROR] /tmp/seed.json")
	requireContains(t, plain, "[WARN] none stored")

	colored := renderStatus(checks, status, true)
	requireContains(t, colored, ansiRed)
	requireContains(t, colored, ansiGreen)
}
