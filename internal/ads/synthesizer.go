package ads

import (
	"strings"

	"stationdeck/internal/catalog"
)

// Synthesizer builds ad blocks for player apps.
type Synthesizer struct {
	defaultNetworkCode string
}

// NewSynthesizer returns a synthesizer that falls back to defaultNetworkCode
// when a player app carries no usable network code.
func NewSynthesizer(defaultNetworkCode string) *Synthesizer {
	return &Synthesizer{defaultNetworkCode: strings.TrimSpace(defaultNetworkCode)}
}

// DefaultNetworkCode reports the configured fallback network code.
func (s *Synthesizer) DefaultNetworkCode() string {
	if s == nil {
		return ""
	}
	return s.defaultNetworkCode
}

// Build returns the ad block for player on platform, or nil when the player
// is absent or has IMA disabled.
func (s *Synthesizer) Build(player *catalog.PlayerApp, platform string) *Block {
	if player == nil || !player.ImaEnabled {
		return nil
	}
	shape := ClassifyPlatform(platform)
	networkCode := s.NetworkCode(*player)
	return &Block{
		Mode:            shape.Mode(),
		Platform:        strings.ToLower(strings.TrimSpace(platform)),
		NetworkCode:     networkCode,
		Placements:      shape.placements(*player, networkCode),
		Route:           shape.route(),
		PrivacyDefaults: defaultPrivacy(),
		AdLock:          defaultAdLock(),
	}
}

// NetworkCode resolves the network code for player: the explicit code, then
// one embedded in the preroll, midroll or rewarded path, then the default.
func (s *Synthesizer) NetworkCode(player catalog.PlayerApp) string {
	if code := embeddedNetworkCode(player); code != "" {
		return code
	}
	return s.DefaultNetworkCode()
}

// DefaultNetworkCode derives the catalogue-wide fallback from a seed set of
// player apps: the network code they share when exactly one distinct code is
// present, otherwise "".
func DefaultNetworkCode(players []catalog.PlayerApp) string {
	var found string
	for _, player := range players {
		code := embeddedNetworkCode(player)
		if code == "" {
			continue
		}
		if found != "" && found != code {
			return ""
		}
		found = code
	}
	return found
}

func embeddedNetworkCode(player catalog.PlayerApp) string {
	if code := strings.TrimSpace(player.NetworkCode); code != "" {
		return code
	}
	for _, path := range []string{player.Placements.Preroll, player.Placements.Midroll, player.Placements.Rewarded} {
		if code := ExtractNetworkCode(path); code != "" {
			return code
		}
	}
	return ""
}
