package selection

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stationdeck/internal/catalog"
	"stationdeck/internal/textutil"
)

// LogoResolver normalizes raw station artwork URLs for export.
type LogoResolver interface {
	ResolveLogoURL(raw string) string
}

// Selector selects and exports stations for profiles.
type Selector struct {
	lang  language.Tag
	logos LogoResolver
}

// Option configures a Selector.
type Option func(*Selector)

// WithLanguage sets the collation language used to order station names.
func WithLanguage(tag language.Tag) Option {
	return func(s *Selector) {
		s.lang = tag
	}
}

// WithLogoResolver sets the resolver applied to exported logo URLs.
func WithLogoResolver(resolver LogoResolver) Option {
	return func(s *Selector) {
		s.logos = resolver
	}
}

// NewSelector builds a Selector. Without options names are collated as
// English and logo URLs pass through unchanged.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{lang: language.English}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectStations returns the stations selected by profile using the default
// Selector.
func SelectStations(profile catalog.ExportProfile, snap catalog.Snapshot) []catalog.Station {
	return NewSelector().Select(profile, snap)
}

// Select returns the deduplicated, name-ordered stations selected by profile.
// Dangling genre and station ids never match anything.
func (s *Selector) Select(profile catalog.ExportProfile, snap catalog.Snapshot) []catalog.Station {
	genreIDs := make(map[string]struct{}, len(profile.GenreIDs))
	for _, id := range profile.GenreIDs {
		genreIDs[id] = struct{}{}
	}
	stationIDs := make(map[string]struct{}, len(profile.StationIDs))
	for _, id := range profile.StationIDs {
		stationIDs[id] = struct{}{}
	}
	subGenres := textutil.FoldSet(profile.SubGenres)

	seen := make(map[string]struct{}, len(snap.Stations))
	selected := make([]catalog.Station, 0, len(snap.Stations))
	for _, station := range snap.Stations {
		if _, dup := seen[station.ID]; dup {
			continue
		}
		if !matches(station, genreIDs, stationIDs, subGenres) {
			continue
		}
		seen[station.ID] = struct{}{}
		selected = append(selected, station)
	}

	col := collate.New(s.lang)
	sort.SliceStable(selected, func(i, j int) bool {
		if c := col.CompareString(selected[i].Name, selected[j].Name); c != 0 {
			return c < 0
		}
		return selected[i].ID < selected[j].ID
	})
	return selected
}

func matches(station catalog.Station, genreIDs, stationIDs, subGenres map[string]struct{}) bool {
	if _, explicit := stationIDs[station.ID]; explicit {
		return true
	}
	if !station.Active() {
		return false
	}
	if _, ok := genreIDs[station.GenreID]; ok && station.GenreID != "" {
		return true
	}
	for _, sub := range station.SubGenres {
		if _, ok := subGenres[textutil.FoldKey(sub)]; ok {
			return true
		}
	}
	return false
}
