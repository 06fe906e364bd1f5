package selection

import (
	"strings"

	"stationdeck/internal/catalog"
	"stationdeck/internal/textutil"
)

// GenreRef is the denormalized genre attached to an exported station.
type GenreRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdMeta carries ad targeting hints for a station.
type AdMeta struct {
	Section *string `json:"section"`
}

// ExportedStation is the station record written into export payloads.
type ExportedStation struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StreamURL   string    `json:"streamUrl"`
	Description string    `json:"description,omitempty"`
	Genre       *GenreRef `json:"genre"`
	SubGenres   []string  `json:"subGenres"`
	LogoURL     string    `json:"logoUrl"`
	Bitrate     int       `json:"bitrate,omitempty"`
	Language    string    `json:"language,omitempty"`
	Region      string    `json:"region,omitempty"`
	Tags        []string  `json:"tags"`
	ImaAdType   string    `json:"imaAdType"`
	IsFavorite  bool      `json:"isFavorite"`
	AdMeta      AdMeta    `json:"adMeta"`
}

// Export selects the profile's stations and maps them to ExportedStation.
func (s *Selector) Export(profile catalog.ExportProfile, snap catalog.Snapshot) []ExportedStation {
	stations := s.Select(profile, snap)
	out := make([]ExportedStation, 0, len(stations))
	for _, station := range stations {
		var genre *GenreRef
		if g, ok := snap.Genre(station.GenreID); ok {
			genre = &GenreRef{ID: g.ID, Name: g.Name}
		}
		out = append(out, ExportedStation{
			ID:          station.ID,
			Name:        station.Name,
			StreamURL:   station.StreamURL,
			Description: station.Description,
			Genre:       genre,
			SubGenres:   nonNil(station.SubGenres),
			LogoURL:     s.resolveLogo(station.LogoURL),
			Bitrate:     station.Bitrate,
			Language:    station.Language,
			Region:      station.Region,
			Tags:        nonNil(station.Tags),
			ImaAdType:   string(catalog.ParseImaAdType(string(station.ImaAdType))),
			IsFavorite:  station.IsFavorite,
			AdMeta:      AdMeta{Section: Section(station.Tags, genre)},
		})
	}
	return out
}

// Section derives the ad section for a station. When a tag mentions the
// genre name the section is the genre token; otherwise the first tag; with
// no tags the genre token; nil when there is neither.
func Section(tags []string, genre *GenreRef) *string {
	var token string
	if genre != nil {
		token = strings.ToLower(strings.TrimSpace(genre.Name))
	}
	var first string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if first == "" {
			first = strings.ToLower(tag)
		}
		if token != "" && textutil.ContainsFold(tag, token) {
			return &token
		}
	}
	switch {
	case first != "":
		return &first
	case token != "":
		return &token
	default:
		return nil
	}
}

func (s *Selector) resolveLogo(raw string) string {
	if s.logos == nil {
		return raw
	}
	return s.logos.ResolveLogoURL(raw)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
