package ads

import (
	"stationdeck/internal/catalog"
	"stationdeck/internal/textutil"
)

const iosPlatform = "ios"

// Shape is the closed set of ad block layouts: VMAPShape or VASTShape.
type Shape interface {
	Mode() Mode
	placements(app catalog.PlayerApp, networkCode string) Placements
	route() Route
}

// VMAPShape lays out ad-rule placements for the iOS player family.
type VMAPShape struct{}

// VASTShape lays out preroll tag placements for Android and all other platforms.
type VASTShape struct{}

// ClassifyPlatform selects the ad shape for a platform name. Only "ios"
// (after normalization) uses VMAP.
func ClassifyPlatform(platform string) Shape {
	if textutil.PlatformKey(platform) == iosPlatform {
		return VMAPShape{}
	}
	return VASTShape{}
}

func (VMAPShape) Mode() Mode { return ModeVMAP }

func (VMAPShape) route() Route { return newRoute("audio_rules", "video_rules") }

func (VMAPShape) placements(app catalog.PlayerApp, networkCode string) Placements {
	audio := NormalizeVMAPPath(app.Placements.Preroll, defaultPath(networkCode, "audio_adrules"), "audio_adrules")
	video := NormalizeVMAPPath(videoSource(app.Placements), defaultPath(networkCode, "video_adrules"), "video_adrules")
	return Placements{
		AudioRules: newPlacement(audio, ""),
		VideoRules: newPlacement(video, ""),
	}
}

func (VASTShape) Mode() Mode { return ModeVAST }

func (VASTShape) route() Route { return newRoute("audio_preroll", "video_preroll") }

func (VASTShape) placements(app catalog.PlayerApp, networkCode string) Placements {
	audio := NormalizeVASTPath(app.Placements.Preroll, defaultPath(networkCode, "audio_preroll"), "audio_preroll")
	video := NormalizeVASTPath(videoSource(app.Placements), defaultPath(networkCode, "video_preroll"), "video_preroll")
	size := app.VideoPrerollDefaultSize
	if size == "" {
		size = catalog.DefaultVideoPrerollSize
	}
	return Placements{
		AudioPreroll: newPlacement(audio, audioPrerollSize),
		VideoPreroll: newPlacement(video, size),
	}
}

const audioPrerollSize = "1x1"

func videoSource(p catalog.Placements) string {
	if p.Midroll != "" {
		return p.Midroll
	}
	return p.Rewarded
}

func defaultPath(networkCode, leaf string) string {
	if networkCode == "" {
		return ""
	}
	return "/" + networkCode + "/webradio/" + leaf
}
