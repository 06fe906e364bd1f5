package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"stationdeck/internal/api"
	"stationdeck/internal/preflight"
)

type statusReport struct {
	Checks  []checkResult     `json:"checks"`
	Catalog api.CatalogStatus `json:"catalog"`
}

type checkResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show directory readiness and catalogue contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			checks := preflight.RunAll(cmd.Context(), cfg)

			return ctx.withCatalog(func(svc *api.CatalogService) error {
				catalogStatus, err := svc.Status(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					report := statusReport{Catalog: catalogStatus}
					for _, c := range checks {
						report.Checks = append(report.Checks, checkResult(c))
					}
					return writeJSON(cmd, report)
				}
				fmt.Fprint(cmd.OutOrStdout(), renderStatus(checks, catalogStatus, shouldColorize(cmd.OutOrStdout())))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func renderStatus(checks []preflight.Result, status api.CatalogStatus, colorize bool) string {
	var lines []string

	lines = append(lines, renderSectionHeader("Paths", colorize)...)
	for _, check := range checks {
		lines = append(lines, renderStatusLine(check.Name, statusFor(check.Passed), check.Detail, colorize))
	}

	lines = append(lines, "")
	lines = append(lines, renderSectionHeader("Catalogue", colorize)...)
	lines = append(lines, renderValueLine("Database", status.Database))
	lines = append(lines, renderValueLine("Genres", strconv.Itoa(status.Genres)))
	lines = append(lines, renderValueLine("Stations", fmt.Sprintf("%d (%d active)", status.Stations, status.ActiveStations)))
	lines = append(lines, renderValueLine("Player apps", strconv.Itoa(status.PlayerApps)))
	lines = append(lines, renderValueLine("Profiles", fmt.Sprintf("%d (%d auto-export, %d with player)", status.Profiles, status.AutoExportProfiles, status.AssignedPlayers)))

	switch {
	case status.NetworkCode != "":
		lines = append(lines, renderStatusLine("Network code", statusOK, status.NetworkCode, colorize))
	case status.PlayerApps > 0:
		lines = append(lines, renderStatusLine("Network code", statusWarn, "none stored; ad placements may be disabled", colorize))
	default:
		lines = append(lines, renderStatusLine("Network code", statusInfo, "not set", colorize))
	}

	return strings.Join(lines, "\n") + "\n"
}
