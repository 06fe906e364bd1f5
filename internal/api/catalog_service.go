package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"stationdeck/internal/catalog"
	"stationdeck/internal/logging"
	"stationdeck/internal/seed"
	"stationdeck/internal/store"
)

// CatalogStore abstracts the persistence operations the catalogue service needs.
type CatalogStore interface {
	Snapshot(ctx context.Context) (catalog.Snapshot, error)
	Genre(ctx context.Context, id string) (catalog.Genre, error)
	Station(ctx context.Context, id string) (catalog.Station, error)
	PlayerApp(ctx context.Context, id string) (catalog.PlayerApp, error)
	Profile(ctx context.Context, id string) (catalog.ExportProfile, error)
	SaveGenre(ctx context.Context, genre catalog.Genre) (catalog.Genre, error)
	SaveStation(ctx context.Context, station catalog.Station) (catalog.Station, error)
	SavePlayerApp(ctx context.Context, app catalog.PlayerApp) (catalog.PlayerApp, error)
	SaveProfile(ctx context.Context, profile catalog.ExportProfile) (catalog.ExportProfile, []string, error)
	DeleteGenre(ctx context.Context, id string) error
	DeleteStation(ctx context.Context, id string) error
	DeletePlayerApp(ctx context.Context, id string) error
	DeleteProfile(ctx context.Context, id string) error
	Import(ctx context.Context, data catalog.Snapshot, mode store.ImportMode) (store.ImportResult, error)
	Setting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	Stats(ctx context.Context) (store.Stats, error)
	Path() string
}

// ErrSeedPathRequired is returned by ImportSeed when neither an argument nor
// the config names a seed file.
var ErrSeedPathRequired = errors.New("seed file path is required")

// CatalogService exposes catalogue operations.
type CatalogService struct {
	store  CatalogStore
	logger *slog.Logger
}

// NewCatalogService constructs a CatalogService around the provided store.
func NewCatalogService(st CatalogStore, logger *slog.Logger) *CatalogService {
	if st == nil {
		return nil
	}
	return &CatalogService{store: st, logger: logging.NewComponentLogger(logger, "catalog")}
}

// Snapshot returns the full canonical catalogue.
func (s *CatalogService) Snapshot(ctx context.Context) (catalog.Snapshot, error) {
	return s.store.Snapshot(ctx)
}

// Genres lists genres in stored order.
func (s *CatalogService) Genres(ctx context.Context) ([]catalog.Genre, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Genres, nil
}

// Stations lists stations in stored order.
func (s *CatalogService) Stations(ctx context.Context) ([]catalog.Station, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Stations, nil
}

// PlayerApps lists player apps in stored order.
func (s *CatalogService) PlayerApps(ctx context.Context) ([]catalog.PlayerApp, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.PlayerApps, nil
}

// Profiles lists export profiles in stored order.
func (s *CatalogService) Profiles(ctx context.Context) ([]catalog.ExportProfile, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.ExportProfiles, nil
}

func (s *CatalogService) Genre(ctx context.Context, id string) (catalog.Genre, error) {
	return s.store.Genre(ctx, id)
}

func (s *CatalogService) Station(ctx context.Context, id string) (catalog.Station, error) {
	return s.store.Station(ctx, id)
}

func (s *CatalogService) PlayerApp(ctx context.Context, id string) (catalog.PlayerApp, error) {
	return s.store.PlayerApp(ctx, id)
}

func (s *CatalogService) Profile(ctx context.Context, id string) (catalog.ExportProfile, error) {
	return s.store.Profile(ctx, id)
}

func (s *CatalogService) SaveGenre(ctx context.Context, genre catalog.Genre) (catalog.Genre, error) {
	return s.store.SaveGenre(ctx, genre)
}

func (s *CatalogService) SaveStation(ctx context.Context, station catalog.Station) (catalog.Station, error) {
	return s.store.SaveStation(ctx, station)
}

func (s *CatalogService) SavePlayerApp(ctx context.Context, app catalog.PlayerApp) (catalog.PlayerApp, error) {
	return s.store.SavePlayerApp(ctx, app)
}

// SaveProfile persists a profile. When the profile claims a player app that
// other profiles held, those profiles are released and logged.
func (s *CatalogService) SaveProfile(ctx context.Context, profile catalog.ExportProfile) (catalog.ExportProfile, SavedProfile, error) {
	saved, released, err := s.store.SaveProfile(ctx, profile)
	if err != nil {
		return catalog.ExportProfile{}, SavedProfile{}, err
	}
	for _, id := range released {
		s.logger.Info("player app reassigned",
			logging.String(logging.FieldProfileID, id),
			logging.String(logging.FieldPlayerID, derefString(saved.PlayerID)),
			logging.String("claimed_by", saved.ID),
		)
	}
	if released == nil {
		released = []string{}
	}
	return saved, SavedProfile{ID: saved.ID, Released: released}, nil
}

func (s *CatalogService) DeleteGenre(ctx context.Context, id string) error {
	return s.store.DeleteGenre(ctx, id)
}

func (s *CatalogService) DeleteStation(ctx context.Context, id string) error {
	return s.store.DeleteStation(ctx, id)
}

func (s *CatalogService) DeletePlayerApp(ctx context.Context, id string) error {
	return s.store.DeletePlayerApp(ctx, id)
}

func (s *CatalogService) DeleteProfile(ctx context.Context, id string) error {
	return s.store.DeleteProfile(ctx, id)
}

// ImportSeed loads a seed dataset from path and imports it. The default
// network code derived from the dataset is stored alongside the catalogue.
func (s *CatalogService) ImportSeed(ctx context.Context, path string, mode store.ImportMode) (ImportSummary, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return ImportSummary{}, ErrSeedPathRequired
	}
	if mode == "" {
		mode = store.ImportMerge
	}

	data, err := seed.Load(path)
	if err != nil {
		return ImportSummary{}, err
	}
	result, err := s.store.Import(ctx, data, mode)
	if err != nil {
		return ImportSummary{}, err
	}

	summary := ImportSummary{
		Path:       path,
		Mode:       string(mode),
		Genres:     result.Genres,
		Stations:   result.Stations,
		PlayerApps: result.PlayerApps,
		Profiles:   result.Profiles,
	}
	if code := seed.NetworkCode(data); code != "" {
		if err := s.store.SetSetting(ctx, store.SettingDefaultNetworkCode, code); err != nil {
			return summary, fmt.Errorf("store default network code: %w", err)
		}
		summary.NetworkCode = code
	}

	s.logger.Info("seed imported",
		logging.String(logging.FieldPath, path),
		logging.String("mode", summary.Mode),
		logging.Int(logging.FieldStations, summary.Stations),
		logging.Int("profiles", summary.Profiles),
	)
	return summary, nil
}

// Status summarizes catalogue contents and the stored default network code.
func (s *CatalogService) Status(ctx context.Context) (CatalogStatus, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return CatalogStatus{}, err
	}
	status := fromStats(s.store.Path(), stats)
	code, _, err := s.store.Setting(ctx, store.SettingDefaultNetworkCode)
	if err != nil {
		return status, err
	}
	status.NetworkCode = code
	return status, nil
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
