// Package ads synthesizes the advertising block embedded in player exports.
//
// A player app's placements are rewritten into one of two layouts:
//
//   - VMAP (ad rules) for the iOS player family: audio_rules / video_rules
//     placements whose leaves end in "_adrules".
//   - VAST (manual preroll tags) for Android and every other platform:
//     audio_preroll / video_preroll placements with creative sizes.
//
// ClassifyPlatform is the only place that inspects the platform name; the
// rest of the package works on the Shape it returns. Both layouts share the
// same privacy defaults and ad-lock policy.
//
// The network code falls back from the player's explicit code, to the code
// embedded in its placement paths, to the catalogue-wide default handed to
// NewSynthesizer at startup.
package ads
