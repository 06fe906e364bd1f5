package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"stationdeck/internal/api"
	"stationdeck/internal/preflight"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Compile export profiles into per-platform JSON files",
	}
	exportCmd.AddCommand(newExportRunCommand(ctx))
	exportCmd.AddCommand(newExportAutoCommand(ctx))
	return exportCmd
}

func newExportRunCommand(ctx *commandContext) *cobra.Command {
	var profileID string
	var dryRun bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Export a single profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkExportDirs(ctx); err != nil {
				return err
			}
			return ctx.withExporter(func(svc *api.ExportService) error {
				result, err := svc.Run(cmd.Context(), profileID, dryRun)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, result)
				}
				printProfileExport(cmd.OutOrStdout(), result)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&profileID, "profile", "p", "", "Export profile id")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compile and report without writing files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func newExportAutoCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Export every profile with auto-export enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkExportDirs(ctx); err != nil {
				return err
			}
			return ctx.withExporter(func(svc *api.ExportService) error {
				results, err := svc.Auto(cmd.Context(), dryRun)
				if jsonOutput {
					if results == nil {
						results = []api.ProfileExport{}
					}
					if encErr := writeJSON(cmd, results); encErr != nil {
						return encErr
					}
					return err
				}
				out := cmd.OutOrStdout()
				for _, result := range results {
					printProfileExport(out, result)
				}
				if err != nil {
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(out, "No profiles have auto-export enabled")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compile and report without writing files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

// checkExportDirs fails fast when a directory the export writes to is unusable.
func checkExportDirs(ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	var errs []error
	for _, result := range []preflight.Result{
		preflight.CheckDirectoryAccess("data directory", cfg.Paths.DataDir),
		preflight.CheckDirectoryAccess("export directory", cfg.Paths.ExportDir),
	} {
		if !result.Passed {
			errs = append(errs, fmt.Errorf("%s: %s", result.Name, result.Detail))
		}
	}
	return errors.Join(errs...)
}

var exportTable = tableLayout{
	headers: []string{"Platform", "File", "Stations", "Bytes", "State"},
	aligns:  []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
}

func printProfileExport(out io.Writer, result api.ProfileExport) {
	verb := "Exported"
	if result.DryRun {
		verb = "Would export"
	}
	fmt.Fprintf(out, "%s profile %s (%s)\n", verb, result.ProfileID, result.ProfileName)
	if result.DanglingPlayer {
		fmt.Fprintf(out, "Warning: player app %s does not exist; exported stations only\n", result.PlayerID)
	}

	rows := make([][]string, 0, len(result.Files))
	for _, f := range result.Files {
		platform := f.Platform
		if platform == "" {
			platform = "-"
		}
		state := "written"
		switch {
		case f.Unchanged:
			state = "unchanged"
		case result.DryRun:
			state = "pending"
		}
		rows = append(rows, []string{platform, f.Path, strconv.Itoa(f.Stations), strconv.Itoa(f.Bytes), state})
	}
	fmt.Fprintln(out, exportTable.render(rows))
}
