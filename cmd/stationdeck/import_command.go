package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stationdeck/internal/api"
	"stationdeck/internal/store"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var replace bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "import [seed.json]",
		Short: "Import a seed dataset into the catalogue",
		Long: "Import a seed dataset into the catalogue. Without an argument the\n" +
			"configured catalog.seed_path is used. Records are merged over the\n" +
			"stored catalogue unless --replace is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.Catalog.SeedPath
			if len(args) == 1 {
				path = strings.TrimSpace(args[0])
			}
			mode := store.ImportMerge
			if replace {
				mode = store.ImportReplace
			}

			return ctx.withCatalog(func(svc *api.CatalogService) error {
				summary, err := svc.ImportSeed(cmd.Context(), path, mode)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, summary)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %s (%s)\n", summary.Path, summary.Mode)
				fmt.Fprintf(out, "  %d genres, %d stations, %d player apps, %d profiles\n",
					summary.Genres, summary.Stations, summary.PlayerApps, summary.Profiles)
				if summary.NetworkCode != "" {
					fmt.Fprintf(out, "  default network code: %s\n", summary.NetworkCode)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the stored catalogue instead of merging")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}
