package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"stationdeck/internal/ads"
	"stationdeck/internal/catalog"
	"stationdeck/internal/config"
	"stationdeck/internal/export"
	"stationdeck/internal/exportwriter"
	"stationdeck/internal/logging"
	"stationdeck/internal/logo"
	"stationdeck/internal/selection"
	"stationdeck/internal/store"
)

// ExportStore abstracts the reads an export run needs.
type ExportStore interface {
	Snapshot(ctx context.Context) (catalog.Snapshot, error)
	Setting(ctx context.Context, key string) (string, bool, error)
}

// ExportService compiles profiles and writes their artifacts.
type ExportService struct {
	cfg    *config.Config
	store  ExportStore
	writer *exportwriter.Writer
	logger *slog.Logger
}

// NewExportService wires an export service writing into the configured
// export directory.
func NewExportService(cfg *config.Config, st ExportStore, logger *slog.Logger) (*ExportService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}
	return &ExportService{
		cfg:    cfg,
		store:  st,
		writer: exportwriter.New(cfg.Paths.ExportDir, logger),
		logger: logging.NewComponentLogger(logger, "export"),
	}, nil
}

// Run exports a single profile. With dryRun the artifacts are compiled and
// reported but not written.
func (s *ExportService) Run(ctx context.Context, profileID string, dryRun bool) (ProfileExport, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return ProfileExport{}, fmt.Errorf("profile id is required")
	}
	snap, compiler, err := s.prepare(ctx)
	if err != nil {
		return ProfileExport{}, err
	}
	exp, err := s.export(ctx, compiler, snap, profileID, dryRun)
	if err != nil {
		if errors.Is(err, export.ErrProfileNotFound) {
			return ProfileExport{}, fmt.Errorf("profile %q: %w", profileID, err)
		}
		return ProfileExport{}, err
	}
	return exp, nil
}

// Auto exports every profile with auto-export enabled, in stored order. It
// stops at the first failing profile and returns what was exported so far.
func (s *ExportService) Auto(ctx context.Context, dryRun bool) ([]ProfileExport, error) {
	snap, compiler, err := s.prepare(ctx)
	if err != nil {
		return nil, err
	}
	var exports []ProfileExport
	for _, profile := range snap.ExportProfiles {
		if !profile.AutoExport.Enabled {
			continue
		}
		if err := ctx.Err(); err != nil {
			return exports, err
		}
		exp, err := s.export(ctx, compiler, snap, profile.ID, dryRun)
		if err != nil {
			return exports, fmt.Errorf("profile %q: %w", profile.ID, err)
		}
		exports = append(exports, exp)
	}
	if len(exports) == 0 {
		s.logger.Info("no profiles have auto-export enabled")
	}
	return exports, nil
}

func (s *ExportService) export(ctx context.Context, compiler *export.Compiler, snap catalog.Snapshot, profileID string, dryRun bool) (ProfileExport, error) {
	compiled, targets, err := compiler.Build(profileID, snap)
	if err != nil {
		return ProfileExport{}, err
	}
	exp := ProfileExport{
		ProfileID:      compiled.Profile.ID,
		ProfileName:    compiled.Profile.Name,
		PlayerID:       derefString(compiled.Profile.PlayerID),
		DanglingPlayer: compiled.DanglingPlayer,
		DryRun:         dryRun,
	}
	if compiled.DanglingPlayer {
		logging.WarnWithContext(s.logger, "profile references a missing player app", "dangling_player",
			logging.String(logging.FieldProfileID, exp.ProfileID),
			logging.String(logging.FieldPlayerID, exp.PlayerID),
			logging.String(logging.FieldErrorHint, "assign an existing player app with 'stationdeck profile save'"),
			logging.String(logging.FieldImpact, "export contains stations only"),
		)
	}

	var results []exportwriter.Result
	if dryRun {
		results, err = s.writer.Plan(targets)
	} else {
		results, err = s.writer.Write(ctx, targets)
	}
	if err != nil {
		return exp, err
	}
	exp.Files = fromResults(results)
	return exp, nil
}

func (s *ExportService) prepare(ctx context.Context) (catalog.Snapshot, *export.Compiler, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return catalog.Snapshot{}, nil, fmt.Errorf("load catalogue: %w", err)
	}
	code, err := s.networkCode(ctx, snap)
	if err != nil {
		return catalog.Snapshot{}, nil, err
	}

	lang := language.English
	if tag, err := language.Parse(s.cfg.Catalog.CollationLanguage); err == nil {
		lang = tag
	}
	selector := selection.NewSelector(
		selection.WithLanguage(lang),
		selection.WithLogoResolver(logo.NewResolver(s.cfg.Logos.BaseURL, s.cfg.Logos.PlaceholderURL)),
	)
	compiler := export.NewCompiler(selector, ads.NewSynthesizer(code), s.cfg.Ads.AppVersion)
	return snap, compiler, nil
}

// networkCode resolves the default network code: the configured override,
// then the code stored by the last seed import, then the code shared by the
// catalogue's player apps.
func (s *ExportService) networkCode(ctx context.Context, snap catalog.Snapshot) (string, error) {
	if code := strings.TrimSpace(s.cfg.Ads.DefaultNetworkCode); code != "" {
		return code, nil
	}
	code, ok, err := s.store.Setting(ctx, store.SettingDefaultNetworkCode)
	if err != nil {
		return "", err
	}
	if ok && strings.TrimSpace(code) != "" {
		return strings.TrimSpace(code), nil
	}
	return ads.DefaultNetworkCode(snap.PlayerApps), nil
}
