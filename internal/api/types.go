package api

import (
	"stationdeck/internal/exportwriter"
	"stationdeck/internal/store"
)

// ImportSummary reports a seed import.
type ImportSummary struct {
	Path        string `json:"path"`
	Mode        string `json:"mode"`
	Genres      int    `json:"genres"`
	Stations    int    `json:"stations"`
	PlayerApps  int    `json:"playerApps"`
	Profiles    int    `json:"profiles"`
	NetworkCode string `json:"networkCode,omitempty"`
}

// SavedProfile is a profile save result together with the profiles whose
// player app was released by the save.
type SavedProfile struct {
	ID       string   `json:"id"`
	Released []string `json:"released"`
}

// CatalogStatus summarizes catalogue contents.
type CatalogStatus struct {
	Database           string `json:"database"`
	Genres             int    `json:"genres"`
	Stations           int    `json:"stations"`
	ActiveStations     int    `json:"activeStations"`
	PlayerApps         int    `json:"playerApps"`
	Profiles           int    `json:"profiles"`
	AutoExportProfiles int    `json:"autoExportProfiles"`
	AssignedPlayers    int    `json:"assignedPlayers"`
	NetworkCode        string `json:"networkCode,omitempty"`
}

// ExportedFile describes one artifact of an export run.
type ExportedFile struct {
	Platform  string `json:"platform"`
	Path      string `json:"path"`
	Stations  int    `json:"stations"`
	Bytes     int    `json:"bytes"`
	Unchanged bool   `json:"unchanged"`
}

// ProfileExport reports the artifacts produced for one profile.
type ProfileExport struct {
	ProfileID      string         `json:"profileId"`
	ProfileName    string         `json:"profileName"`
	PlayerID       string         `json:"playerId,omitempty"`
	DanglingPlayer bool           `json:"danglingPlayer,omitempty"`
	DryRun         bool           `json:"dryRun"`
	Files          []ExportedFile `json:"files"`
}

func fromStats(path string, stats store.Stats) CatalogStatus {
	return CatalogStatus{
		Database:           path,
		Genres:             stats.Genres,
		Stations:           stats.Stations,
		ActiveStations:     stats.ActiveStations,
		PlayerApps:         stats.PlayerApps,
		Profiles:           stats.Profiles,
		AutoExportProfiles: stats.AutoExportProfiles,
		AssignedPlayers:    stats.AssignedPlayers,
	}
}

func fromResults(results []exportwriter.Result) []ExportedFile {
	files := make([]ExportedFile, 0, len(results))
	for _, r := range results {
		files = append(files, ExportedFile{
			Platform:  r.Platform,
			Path:      r.Path,
			Stations:  r.Stations,
			Bytes:     r.Bytes,
			Unchanged: r.Unchanged,
		})
	}
	return files
}
