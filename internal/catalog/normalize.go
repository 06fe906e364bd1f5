package catalog

import (
	"strings"

	"stationdeck/internal/textutil"
)

const (
	// DefaultPlatform is assigned to player apps that declare no platform.
	DefaultPlatform = "web"
	// DefaultVideoPrerollSize is the video preroll size used when a player app sets none.
	DefaultVideoPrerollSize = "640x480"
)

// NormalizeGenre trims the genre and deduplicates its sub-genres
// case-insensitively, keeping the first spelling of each.
func NormalizeGenre(genre Genre) Genre {
	return Genre{
		ID:        strings.TrimSpace(genre.ID),
		Name:      strings.TrimSpace(genre.Name),
		SubGenres: textutil.UniqueFold(genre.SubGenres),
	}
}

// SplitSubGenres parses the comma-separated sub-genre form accepted by imports
// and the CLI.
func SplitSubGenres(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return textutil.UniqueFold(strings.Split(raw, ","))
}

// NormalizeStationSubGenres keeps the entries of raw that name a sub-genre of
// the genre identified by genreID, mapped to the genre's spelling. Unknown or
// blank genre ids yield an empty set.
func NormalizeStationSubGenres(raw []string, genreID string, genres []Genre) []string {
	genre, ok := findGenre(genres, genreID)
	if !ok {
		return []string{}
	}
	canonical := make(map[string]string)
	for _, sub := range NormalizeGenre(genre).SubGenres {
		canonical[textutil.FoldKey(sub)] = sub
	}

	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, value := range raw {
		key := textutil.FoldKey(value)
		name, ok := canonical[key]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}

// NormalizeStation trims the station record and restricts its sub-genres to
// the ones its genre defines. The logo URL is passed through untouched.
func NormalizeStation(station Station, genres []Genre) Station {
	out := station.clone()
	out.ID = strings.TrimSpace(station.ID)
	out.Name = strings.TrimSpace(station.Name)
	out.StreamURL = strings.TrimSpace(station.StreamURL)
	out.Description = strings.TrimSpace(station.Description)
	out.GenreID = strings.TrimSpace(station.GenreID)
	out.Language = strings.TrimSpace(station.Language)
	out.Region = strings.TrimSpace(station.Region)
	out.ImaAdType = ParseImaAdType(string(station.ImaAdType))
	out.SubGenres = NormalizeStationSubGenres(station.SubGenres, out.GenreID, genres)
	out.Tags = trimNonEmpty(station.Tags)
	if out.Bitrate < 0 {
		out.Bitrate = 0
	}
	return out
}

// NormalizePlayerApp folds the legacy single platform into the platform list,
// lower-cases and deduplicates it, defaults it to ["web"], and resets Platform
// to the first entry.
func NormalizePlayerApp(app PlayerApp) PlayerApp {
	candidates := make([]string, 0, len(app.Platforms)+1)
	if legacy := strings.TrimSpace(app.Platform); legacy != "" {
		candidates = append(candidates, legacy)
	}
	candidates = append(candidates, app.Platforms...)
	for i, value := range candidates {
		candidates[i] = strings.ToLower(strings.TrimSpace(value))
	}
	platforms := textutil.UniqueFold(candidates)
	if len(platforms) == 0 {
		platforms = []string{DefaultPlatform}
	}

	size := strings.TrimSpace(app.VideoPrerollDefaultSize)
	if size == "" {
		size = DefaultVideoPrerollSize
	}

	return PlayerApp{
		ID:                      strings.TrimSpace(app.ID),
		Name:                    strings.TrimSpace(app.Name),
		Platforms:               platforms,
		Platform:                platforms[0],
		NetworkCode:             strings.TrimSpace(app.NetworkCode),
		ImaEnabled:              app.ImaEnabled,
		VideoPrerollDefaultSize: size,
		Placements: Placements{
			Preroll:  strings.TrimSpace(app.Placements.Preroll),
			Midroll:  strings.TrimSpace(app.Placements.Midroll),
			Rewarded: strings.TrimSpace(app.Placements.Rewarded),
		},
	}
}

// NormalizeProfile trims the profile, deduplicates its id sets and
// sub-genres, and turns a blank player reference into nil.
func NormalizeProfile(profile ExportProfile) ExportProfile {
	out := ExportProfile{
		ID:         strings.TrimSpace(profile.ID),
		Name:       strings.TrimSpace(profile.Name),
		GenreIDs:   uniqueExact(profile.GenreIDs),
		StationIDs: uniqueExact(profile.StationIDs),
		SubGenres:  textutil.UniqueFold(profile.SubGenres),
		AutoExport: profile.AutoExport,
	}
	if profile.PlayerID != nil {
		if id := strings.TrimSpace(*profile.PlayerID); id != "" {
			out.PlayerID = &id
		}
	}
	return out
}

// NormalizeSnapshot canonicalizes every record of the snapshot. Genres are
// normalized first so station sub-genres are checked against canonical sets.
func NormalizeSnapshot(s Snapshot) Snapshot {
	out := Snapshot{
		Genres:         make([]Genre, 0, len(s.Genres)),
		Stations:       make([]Station, 0, len(s.Stations)),
		PlayerApps:     make([]PlayerApp, 0, len(s.PlayerApps)),
		ExportProfiles: make([]ExportProfile, 0, len(s.ExportProfiles)),
	}
	for _, genre := range s.Genres {
		out.Genres = append(out.Genres, NormalizeGenre(genre))
	}
	for _, station := range s.Stations {
		out.Stations = append(out.Stations, NormalizeStation(station, out.Genres))
	}
	for _, app := range s.PlayerApps {
		out.PlayerApps = append(out.PlayerApps, NormalizePlayerApp(app))
	}
	for _, profile := range s.ExportProfiles {
		out.ExportProfiles = SaveProfile(profile, out.ExportProfiles)
	}
	return out
}

func uniqueExact(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
