package catalog

// SaveProfile upserts profile into profiles and returns the resulting set.
// When the saved profile claims a player app, every other profile holding the
// same player loses its assignment. The most recent save always wins.
func SaveProfile(profile ExportProfile, profiles []ExportProfile) []ExportProfile {
	saved := NormalizeProfile(profile)
	out := make([]ExportProfile, 0, len(profiles)+1)
	replaced := false
	for _, existing := range profiles {
		if existing.ID == saved.ID {
			if !replaced {
				out = append(out, saved)
				replaced = true
			}
			continue
		}
		current := existing.clone()
		if saved.PlayerID != nil && current.HasPlayer(*saved.PlayerID) {
			current.PlayerID = nil
		}
		out = append(out, current)
	}
	if !replaced {
		out = append(out, saved)
	}
	return out
}

// OwnerOf returns the profile that currently holds playerID.
func OwnerOf(profiles []ExportProfile, playerID string) (ExportProfile, bool) {
	for _, profile := range profiles {
		if profile.HasPlayer(playerID) {
			return profile, true
		}
	}
	return ExportProfile{}, false
}

// ReleasedProfiles lists the ids of profiles whose player assignment was
// cleared between before and after.
func ReleasedProfiles(before, after []ExportProfile) []string {
	previous := make(map[string]string, len(before))
	for _, profile := range before {
		if profile.PlayerID != nil {
			previous[profile.ID] = *profile.PlayerID
		}
	}
	var released []string
	for _, profile := range after {
		if _, had := previous[profile.ID]; had && profile.PlayerID == nil {
			released = append(released, profile.ID)
		}
	}
	return released
}
