package catalog

import "stationdeck/internal/textutil"

// ApplyGenre upserts the normalized genre and re-canonicalizes the
// sub-genres of its stations, so sub-genres removed from the genre disappear
// from the stations that carried them.
func ApplyGenre(s Snapshot, genre Genre) Snapshot {
	out := s.Clone()
	saved := NormalizeGenre(genre)
	replaced := false
	for i, existing := range out.Genres {
		if existing.ID == saved.ID {
			out.Genres[i] = saved
			replaced = true
			break
		}
	}
	if !replaced {
		out.Genres = append(out.Genres, saved)
	}
	for i, station := range out.Stations {
		if station.GenreID == saved.ID {
			out.Stations[i].SubGenres = NormalizeStationSubGenres(station.SubGenres, saved.ID, out.Genres)
		}
	}
	return out
}

// DeleteGenre removes a genre. Its stations lose their genre and sub-genres;
// profiles lose the genre id and any sub-genre no other genre defines.
func DeleteGenre(s Snapshot, id string) Snapshot {
	out := s.Clone()
	var deleted Genre
	genres := out.Genres[:0]
	for _, genre := range out.Genres {
		if genre.ID == id {
			deleted = genre
			continue
		}
		genres = append(genres, genre)
	}
	out.Genres = genres

	remaining := make(map[string]struct{})
	for _, genre := range out.Genres {
		for _, sub := range genre.SubGenres {
			remaining[textutil.FoldKey(sub)] = struct{}{}
		}
	}
	exclusive := make(map[string]struct{})
	for _, sub := range deleted.SubGenres {
		key := textutil.FoldKey(sub)
		if _, shared := remaining[key]; !shared {
			exclusive[key] = struct{}{}
		}
	}

	for i, station := range out.Stations {
		if station.GenreID == id {
			out.Stations[i].GenreID = ""
			out.Stations[i].SubGenres = []string{}
		}
	}
	for i, profile := range out.ExportProfiles {
		out.ExportProfiles[i].GenreIDs = without(profile.GenreIDs, id)
		subs := make([]string, 0, len(profile.SubGenres))
		for _, sub := range profile.SubGenres {
			if _, gone := exclusive[textutil.FoldKey(sub)]; gone {
				continue
			}
			subs = append(subs, sub)
		}
		out.ExportProfiles[i].SubGenres = subs
	}
	return out
}

// DeleteStation removes a station and its explicit selections.
func DeleteStation(s Snapshot, id string) Snapshot {
	out := s.Clone()
	stations := out.Stations[:0]
	for _, station := range out.Stations {
		if station.ID != id {
			stations = append(stations, station)
		}
	}
	out.Stations = stations
	for i, profile := range out.ExportProfiles {
		out.ExportProfiles[i].StationIDs = without(profile.StationIDs, id)
	}
	return out
}

// DeletePlayerApp removes a player app and clears every profile pointing at it.
func DeletePlayerApp(s Snapshot, id string) Snapshot {
	out := s.Clone()
	apps := out.PlayerApps[:0]
	for _, app := range out.PlayerApps {
		if app.ID != id {
			apps = append(apps, app)
		}
	}
	out.PlayerApps = apps
	for i, profile := range out.ExportProfiles {
		if profile.HasPlayer(id) {
			out.ExportProfiles[i].PlayerID = nil
		}
	}
	return out
}

// DeleteProfile removes an export profile.
func DeleteProfile(s Snapshot, id string) Snapshot {
	out := s.Clone()
	profiles := out.ExportProfiles[:0]
	for _, profile := range out.ExportProfiles {
		if profile.ID != id {
			profiles = append(profiles, profile)
		}
	}
	out.ExportProfiles = profiles
	return out
}

func without(values []string, drop string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value != drop {
			out = append(out, value)
		}
	}
	return out
}
