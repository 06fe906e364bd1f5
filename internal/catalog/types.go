package catalog

import "strings"

// ImaAdType selects which ad route a station requests.
type ImaAdType string

const (
	AdTypeAudio ImaAdType = "audio"
	AdTypeVideo ImaAdType = "video"
	AdTypeNone  ImaAdType = "no"
)

// ParseImaAdType maps free-form input to an ImaAdType. Unknown or blank
// values resolve to AdTypeNone.
func ParseImaAdType(value string) ImaAdType {
	switch ImaAdType(strings.ToLower(strings.TrimSpace(value))) {
	case AdTypeAudio:
		return AdTypeAudio
	case AdTypeVideo:
		return AdTypeVideo
	default:
		return AdTypeNone
	}
}

// Genre groups stations and scopes the sub-genres they may carry.
type Genre struct {
	ID        string   `json:"id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	SubGenres []string `json:"subGenres"`
}

// Station is a single radio stream in the catalogue.
type Station struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	StreamURL   string    `json:"streamUrl" validate:"omitempty,url"`
	Description string    `json:"description,omitempty"`
	GenreID     string    `json:"genreId,omitempty"`
	SubGenres   []string  `json:"subGenres"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	Bitrate     int       `json:"bitrate,omitempty" validate:"gte=0"`
	Language    string    `json:"language,omitempty"`
	Region      string    `json:"region,omitempty"`
	Tags        []string  `json:"tags"`
	ImaAdType   ImaAdType `json:"imaAdType" validate:"omitempty,oneof=audio video no"`
	// IsActive is nil for records that never set the flag; only an explicit
	// false deactivates a station.
	IsActive   *bool `json:"isActive,omitempty"`
	IsFavorite bool  `json:"isFavorite"`
}

// Active reports whether the station counts as active.
func (s Station) Active() bool {
	return s.IsActive == nil || *s.IsActive
}

// Placements holds the ad-server inventory paths configured on a player app.
type Placements struct {
	Preroll  string `json:"preroll,omitempty" validate:"omitempty,adpath"`
	Midroll  string `json:"midroll,omitempty" validate:"omitempty,adpath"`
	Rewarded string `json:"rewarded,omitempty" validate:"omitempty,adpath"`
}

// PlayerApp is a downstream player application that consumes exports.
type PlayerApp struct {
	ID                      string     `json:"id" validate:"required"`
	Name                    string     `json:"name" validate:"required"`
	Platforms               []string   `json:"platforms" validate:"min=1,dive,required"`
	Platform                string     `json:"platform,omitempty"`
	NetworkCode             string     `json:"networkCode,omitempty" validate:"omitempty,numeric"`
	ImaEnabled              bool       `json:"imaEnabled"`
	VideoPrerollDefaultSize string     `json:"videoPrerollDefaultSize,omitempty"`
	Placements              Placements `json:"placements"`
}

// AutoExport controls whether a profile is included in unattended export runs.
type AutoExport struct {
	Enabled bool `json:"enabled"`
}

// ExportProfile names a bundle of stations and the player app it targets.
type ExportProfile struct {
	ID         string     `json:"id" validate:"required"`
	Name       string     `json:"name" validate:"required"`
	GenreIDs   []string   `json:"genreIds"`
	StationIDs []string   `json:"stationIds"`
	SubGenres  []string   `json:"subGenres"`
	PlayerID   *string    `json:"playerId"`
	AutoExport AutoExport `json:"autoExport"`
}

// HasPlayer reports whether the profile claims the given player app.
func (p ExportProfile) HasPlayer(playerID string) bool {
	return p.PlayerID != nil && playerID != "" && *p.PlayerID == playerID
}

// Snapshot is the full catalogue as read from persistence.
type Snapshot struct {
	Stations       []Station       `json:"stations"`
	Genres         []Genre         `json:"genres"`
	PlayerApps     []PlayerApp     `json:"playerApps"`
	ExportProfiles []ExportProfile `json:"exportProfiles"`
}

// Genre returns the genre with the given id.
func (s Snapshot) Genre(id string) (Genre, bool) {
	return findGenre(s.Genres, id)
}

// Station returns the station with the given id.
func (s Snapshot) Station(id string) (Station, bool) {
	for _, station := range s.Stations {
		if station.ID == id {
			return station, true
		}
	}
	return Station{}, false
}

// PlayerApp returns the player app with the given id.
func (s Snapshot) PlayerApp(id string) (PlayerApp, bool) {
	for _, app := range s.PlayerApps {
		if app.ID == id {
			return app, true
		}
	}
	return PlayerApp{}, false
}

// Profile returns the export profile with the given id.
func (s Snapshot) Profile(id string) (ExportProfile, bool) {
	for _, profile := range s.ExportProfiles {
		if profile.ID == id {
			return profile, true
		}
	}
	return ExportProfile{}, false
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Stations:       make([]Station, len(s.Stations)),
		Genres:         make([]Genre, len(s.Genres)),
		PlayerApps:     make([]PlayerApp, len(s.PlayerApps)),
		ExportProfiles: make([]ExportProfile, len(s.ExportProfiles)),
	}
	for i, station := range s.Stations {
		out.Stations[i] = station.clone()
	}
	for i, genre := range s.Genres {
		out.Genres[i] = genre.clone()
	}
	for i, app := range s.PlayerApps {
		out.PlayerApps[i] = app.clone()
	}
	for i, profile := range s.ExportProfiles {
		out.ExportProfiles[i] = profile.clone()
	}
	return out
}

func findGenre(genres []Genre, id string) (Genre, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Genre{}, false
	}
	for _, genre := range genres {
		if strings.TrimSpace(genre.ID) == id {
			return genre, true
		}
	}
	return Genre{}, false
}

func (g Genre) clone() Genre {
	g.SubGenres = cloneStrings(g.SubGenres)
	return g
}

func (s Station) clone() Station {
	s.SubGenres = cloneStrings(s.SubGenres)
	s.Tags = cloneStrings(s.Tags)
	if s.IsActive != nil {
		active := *s.IsActive
		s.IsActive = &active
	}
	return s
}

func (a PlayerApp) clone() PlayerApp {
	a.Platforms = cloneStrings(a.Platforms)
	return a
}

func (p ExportProfile) clone() ExportProfile {
	p.GenreIDs = cloneStrings(p.GenreIDs)
	p.StationIDs = cloneStrings(p.StationIDs)
	p.SubGenres = cloneStrings(p.SubGenres)
	if p.PlayerID != nil {
		id := *p.PlayerID
		p.PlayerID = &id
	}
	return p
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
