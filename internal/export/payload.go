package export

import (
	"stationdeck/internal/ads"
	"stationdeck/internal/selection"
)

// App identifies the player build a payload targets.
type App struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Version  string `json:"version"`
}

// Settings is the generic player configuration attached for platforms that
// are neither iOS nor Android.
type Settings struct {
	Autoplay      bool    `json:"autoplay"`
	VolumeDefault float64 `json:"volume_default"`
	AdsEnabled    bool    `json:"ads_enabled"`
	UITheme       string  `json:"ui_theme"`
}

// Payload is the document written for one export target.
type Payload struct {
	Stations []selection.ExportedStation `json:"stations"`
	App      *App                        `json:"app,omitempty"`
	Ads      *ads.Block                  `json:"ads,omitempty"`
	Settings *Settings                   `json:"settings,omitempty"`
}

// Target is one materialized payload and the artifact name it is written to.
type Target struct {
	ProfileID string
	Platform  string
	FileName  string
	Payload   Payload
}

const (
	defaultVolume  = 0.7
	defaultUITheme = "dark"
)

func genericSettings(adsEnabled bool) *Settings {
	return &Settings{
		Autoplay:      false,
		VolumeDefault: defaultVolume,
		AdsEnabled:    adsEnabled,
		UITheme:       defaultUITheme,
	}
}
