package export

import (
	"errors"
	"strings"

	"stationdeck/internal/ads"
	"stationdeck/internal/catalog"
	"stationdeck/internal/selection"
	"stationdeck/internal/textutil"
)

// ErrProfileNotFound is returned by Build for unknown profile ids.
var ErrProfileNotFound = errors.New("export profile not found")

// DefaultAppVersion is stamped into app blocks when no version is configured.
const DefaultAppVersion = "1.0.0"

// Compiler turns profiles into export payloads.
type Compiler struct {
	selector   *selection.Selector
	synth      *ads.Synthesizer
	appVersion string
}

// NewCompiler wires a compiler. Nil collaborators fall back to defaults:
// an English-collating selector and a synthesizer without a default network
// code.
func NewCompiler(selector *selection.Selector, synth *ads.Synthesizer, appVersion string) *Compiler {
	if selector == nil {
		selector = selection.NewSelector()
	}
	if synth == nil {
		synth = ads.NewSynthesizer("")
	}
	appVersion = strings.TrimSpace(appVersion)
	if appVersion == "" {
		appVersion = DefaultAppVersion
	}
	return &Compiler{selector: selector, synth: synth, appVersion: appVersion}
}

// Context is a compiled payload together with the profile and player app it
// was built for.
type Context struct {
	Profile catalog.ExportProfile
	// Player is nil when the profile has no player or points at a missing one.
	Player *catalog.PlayerApp
	// DanglingPlayer is set when the profile names a player that does not exist.
	DanglingPlayer bool
	Base           Payload
}

// Compile selects the profile's stations and, when the profile's player app
// exists, attaches app and ad blocks for the player's primary platform.
func (c *Compiler) Compile(profile catalog.ExportProfile, snap catalog.Snapshot) Context {
	ctx := Context{
		Profile: profile,
		Base:    Payload{Stations: c.selector.Export(profile, snap)},
	}
	if profile.PlayerID == nil {
		return ctx
	}
	app, ok := snap.PlayerApp(*profile.PlayerID)
	if !ok {
		ctx.DanglingPlayer = true
		return ctx
	}
	player := catalog.NormalizePlayerApp(app)
	ctx.Player = &player
	ctx.Base.App = c.app(player, player.Platform)
	ctx.Base.Ads = c.synth.Build(&player, player.Platform)
	return ctx
}

// Materialize produces one target per distinct platform key in platforms.
// Each target shares the compiled station list and gets its own app, ads and
// settings blocks. A context without a player yields a single target with no
// platform.
func (c *Compiler) Materialize(ctx Context, platforms []string) []Target {
	if ctx.Player == nil {
		return []Target{{
			ProfileID: ctx.Profile.ID,
			FileName:  FileName(ctx.Profile, ""),
			Payload:   Payload{Stations: ctx.Base.Stations},
		}}
	}

	keys := PlatformKeys(platforms)
	targets := make([]Target, 0, len(keys))
	for _, platform := range keys {
		payload := Payload{
			Stations: ctx.Base.Stations,
			App:      c.app(*ctx.Player, platform),
			Ads:      c.synth.Build(ctx.Player, platform),
		}
		if !mobilePlatform(platform) {
			payload.Settings = genericSettings(ctx.Player.ImaEnabled)
		}
		targets = append(targets, Target{
			ProfileID: ctx.Profile.ID,
			Platform:  platform,
			FileName:  FileName(ctx.Profile, platform),
			Payload:   payload,
		})
	}
	return targets
}

// Build compiles and materializes the profile with the given id.
func (c *Compiler) Build(profileID string, snap catalog.Snapshot) (Context, []Target, error) {
	profile, ok := snap.Profile(profileID)
	if !ok {
		return Context{}, nil, ErrProfileNotFound
	}
	ctx := c.Compile(profile, snap)
	var platforms []string
	if ctx.Player != nil {
		platforms = ctx.Player.Platforms
	}
	return ctx, c.Materialize(ctx, platforms), nil
}

func (c *Compiler) app(player catalog.PlayerApp, platform string) *App {
	return &App{
		ID:       AppID(player),
		Platform: textutil.PlatformKey(platform),
		Version:  c.appVersion,
	}
}

func mobilePlatform(key string) bool {
	return key == "ios" || key == "android"
}

// AppID slugs the player app name, falling back to the player id.
func AppID(player catalog.PlayerApp) string {
	if slug := textutil.Slugify(player.Name); slug != "" {
		return slug
	}
	return player.ID
}

// PlatformKeys normalizes and deduplicates platform names, keeping order.
func PlatformKeys(platforms []string) []string {
	keys := make([]string, 0, len(platforms))
	seen := make(map[string]struct{}, len(platforms))
	for _, platform := range platforms {
		key := textutil.PlatformKey(platform)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// FileName names the artifact for a profile and platform key:
// "<profile-slug>-<platform>.json", or "<profile-slug>.json" without a
// platform.
func FileName(profile catalog.ExportProfile, platform string) string {
	base := textutil.Slugify(profile.Name)
	if base == "" {
		base = textutil.Slugify(profile.ID)
	}
	if base == "" {
		base = "export"
	}
	if suffix := textutil.Slugify(platform); suffix != "" {
		return base + "-" + suffix + ".json"
	}
	return base + ".json"
}
