package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"stationdeck/internal/api"
	"stationdeck/internal/catalog"
)

// entityCommand describes the list/show/save/delete verbs for one record type.
type entityCommand[T any] struct {
	use    string
	kind   string
	short  string
	layout tableLayout
	row    func(T) []string
	id     func(T) string
	list   func(*api.CatalogService, context.Context) ([]T, error)
	show   func(*api.CatalogService, context.Context, string) (T, error)
	save   func(*api.CatalogService, context.Context, T) (T, []string, error)
	remove func(*api.CatalogService, context.Context, string) error
}

func newEntityCommand[T any](ctx *commandContext, def entityCommand[T]) *cobra.Command {
	root := &cobra.Command{
		Use:   def.use,
		Short: def.short,
	}

	var listJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss", def.kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(svc *api.CatalogService) error {
				records, err := def.list(svc, cmd.Context())
				if err != nil {
					return err
				}
				if listJSON {
					if records == nil {
						records = []T{}
					}
					return writeJSON(cmd, records)
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintf(out, "No %ss\n", def.kind)
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, def.row(record))
				}
				fmt.Fprintln(out, def.layout.render(rows))
				return nil
			})
		},
	}
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Emit JSON output")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: fmt.Sprintf("Show one %s as JSON", def.kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(svc *api.CatalogService) error {
				record, err := def.show(svc, cmd.Context(), strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				return writeJSON(cmd, record)
			})
		},
	}

	var file string
	var saveJSON bool
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: fmt.Sprintf("Create or update a %s from a JSON record", def.kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var record T
			if err := readRecord(cmd, file, &record); err != nil {
				return err
			}
			return ctx.withCatalog(func(svc *api.CatalogService) error {
				saved, notes, err := def.save(svc, cmd.Context(), record)
				if err != nil {
					return err
				}
				if saveJSON {
					return writeJSON(cmd, saved)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Saved %s %s\n", def.kind, def.id(saved))
				for _, note := range notes {
					fmt.Fprintln(out, note)
				}
				return nil
			})
		},
	}
	saveCmd.Flags().StringVarP(&file, "file", "f", "", "JSON record to save (- for stdin)")
	saveCmd.Flags().BoolVar(&saveJSON, "json", false, "Print the canonical record as JSON")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s", def.kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			return ctx.withCatalog(func(svc *api.CatalogService) error {
				if err := def.remove(svc, cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", def.kind, id)
				return nil
			})
		},
	}

	root.AddCommand(listCmd, showCmd, saveCmd, deleteCmd)
	return root
}

func newGenreCommand(ctx *commandContext) *cobra.Command {
	return newEntityCommand(ctx, entityCommand[catalog.Genre]{
		use:    "genre",
		kind:   "genre",
		short:  "Manage genres",
		layout: tableLayout{headers: []string{"ID", "Name", "Sub-genres"}},
		row: func(g catalog.Genre) []string {
			return []string{g.ID, g.Name, strings.Join(g.SubGenres, ", ")}
		},
		id:   func(g catalog.Genre) string { return g.ID },
		list: (*api.CatalogService).Genres,
		show: (*api.CatalogService).Genre,
		save: func(svc *api.CatalogService, ctx context.Context, g catalog.Genre) (catalog.Genre, []string, error) {
			saved, err := svc.SaveGenre(ctx, g)
			return saved, nil, err
		},
		remove: (*api.CatalogService).DeleteGenre,
	})
}

func newStationCommand(ctx *commandContext) *cobra.Command {
	return newEntityCommand(ctx, entityCommand[catalog.Station]{
		use:   "station",
		kind:  "station",
		short: "Manage stations",
		layout: tableLayout{
			headers: []string{"ID", "Name", "Genre", "Ad type", "Active", "Bitrate"},
			aligns:  []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
		},
		row: func(s catalog.Station) []string {
			bitrate := ""
			if s.Bitrate > 0 {
				bitrate = strconv.Itoa(s.Bitrate)
			}
			return []string{s.ID, s.Name, s.GenreID, string(s.ImaAdType), yesNo(s.Active()), bitrate}
		},
		id:   func(s catalog.Station) string { return s.ID },
		list: (*api.CatalogService).Stations,
		show: (*api.CatalogService).Station,
		save: func(svc *api.CatalogService, ctx context.Context, s catalog.Station) (catalog.Station, []string, error) {
			saved, err := svc.SaveStation(ctx, s)
			return saved, nil, err
		},
		remove: (*api.CatalogService).DeleteStation,
	})
}

func newPlayerCommand(ctx *commandContext) *cobra.Command {
	return newEntityCommand(ctx, entityCommand[catalog.PlayerApp]{
		use:    "player",
		kind:   "player app",
		short:  "Manage player apps",
		layout: tableLayout{headers: []string{"ID", "Name", "Platforms", "Network code", "IMA"}},
		row: func(p catalog.PlayerApp) []string {
			return []string{p.ID, p.Name, strings.Join(p.Platforms, ", "), p.NetworkCode, yesNo(p.ImaEnabled)}
		},
		id:   func(p catalog.PlayerApp) string { return p.ID },
		list: (*api.CatalogService).PlayerApps,
		show: (*api.CatalogService).PlayerApp,
		save: func(svc *api.CatalogService, ctx context.Context, p catalog.PlayerApp) (catalog.PlayerApp, []string, error) {
			saved, err := svc.SavePlayerApp(ctx, p)
			return saved, nil, err
		},
		remove: (*api.CatalogService).DeletePlayerApp,
	})
}

func newProfileCommand(ctx *commandContext) *cobra.Command {
	return newEntityCommand(ctx, entityCommand[catalog.ExportProfile]{
		use:   "profile",
		kind:  "profile",
		short: "Manage export profiles",
		layout: tableLayout{
			headers: []string{"ID", "Name", "Player", "Genres", "Stations", "Sub-genres", "Auto"},
			aligns:  []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
		},
		row: func(p catalog.ExportProfile) []string {
			player := ""
			if p.PlayerID != nil {
				player = *p.PlayerID
			}
			return []string{
				p.ID,
				p.Name,
				player,
				strconv.Itoa(len(p.GenreIDs)),
				strconv.Itoa(len(p.StationIDs)),
				strconv.Itoa(len(p.SubGenres)),
				yesNo(p.AutoExport.Enabled),
			}
		},
		id:   func(p catalog.ExportProfile) string { return p.ID },
		list: (*api.CatalogService).Profiles,
		show: (*api.CatalogService).Profile,
		save: func(svc *api.CatalogService, ctx context.Context, p catalog.ExportProfile) (catalog.ExportProfile, []string, error) {
			saved, result, err := svc.SaveProfile(ctx, p)
			if err != nil {
				return saved, nil, err
			}
			notes := make([]string, 0, len(result.Released))
			for _, id := range result.Released {
				notes = append(notes, fmt.Sprintf("Released player app from profile %s", id))
			}
			return saved, notes, nil
		},
		remove: (*api.CatalogService).DeleteProfile,
	})
}
