package ads

import "testing"

func TestNormalizeVMAPPath(t *testing.T) {
	const fallback = "/1234567/webradio/audio_adrules"
	tests := []struct {
		name     string
		source   string
		fallback string
		expected string
		want     string
	}{
		{"preroll suffix", "/1234567/radio/station_preroll", fallback, "audio_adrules", "/1234567/webradio/station_adrules"},
		{"midroll suffix", "/1234567/app/video_midroll", fallback, "video_adrules", "/1234567/app/video_adrules"},
		{"bare leaf replaced", "/1234567/radio/preroll", fallback, "audio_adrules", "/1234567/webradio/audio_adrules"},
		{"already adrules", "/1234567/radio/audio_adrules", fallback, "audio_adrules", "/1234567/webradio/audio_adrules"},
		{"leaf only borrows prefix", "audio_preroll", fallback, "audio_adrules", "/1234567/webradio/audio_adrules"},
		{"malformed falls back", "https://ads.example.com/preroll", fallback, "audio_adrules", fallback},
		{"blank falls back", "", fallback, "audio_adrules", fallback},
		{"nothing derivable", "", "", "audio_adrules", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeVMAPPath(tt.source, tt.fallback, tt.expected); got != tt.want {
				t.Fatalf("NormalizeVMAPPath(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestNormalizeVASTPath(t *testing.T) {
	const fallback = "/1234567/webradio/audio_preroll"
	tests := []struct {
		name     string
		source   string
		expected string
		want     string
	}{
		{"adrules suffix", "/1234567/radio/audio_adrules", "audio_preroll", "/1234567/webradio/audio_preroll"},
		{"midroll suffix", "/1234567/app/video_midroll", "video_preroll", "/1234567/app/video_preroll"},
		{"wrong leaf forced", "/1234567/radio/preroll", "audio_preroll", "/1234567/webradio/audio_preroll"},
		{"case-insensitive match kept", "/1234567/app/Audio_Preroll", "audio_preroll", "/1234567/app/Audio_Preroll"},
		{"no expected bare preroll", "/1234567/radio/banner", "", "/1234567/radio/preroll"},
		{"no expected keeps preroll leaf", "/1234567/radio/station_preroll", "", "/1234567/webradio/station_preroll"},
		{"leaf only borrows prefix", "video_midroll", "video_preroll", "/1234567/webradio/video_preroll"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeVASTPath(tt.source, fallback, tt.expected); got != tt.want {
				t.Fatalf("NormalizeVASTPath(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestExtractNetworkCode(t *testing.T) {
	tests := map[string]string{
		"/1234567/radio/preroll": "1234567",
		"/123":                   "123",
		"/12/radio":              "",
		"1234567/radio":          "",
		"/abc123/radio":          "",
		"":                       "",
	}
	for in, want := range tests {
		if got := ExtractNetworkCode(in); got != want {
			t.Errorf("ExtractNetworkCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClassifyPlatform(t *testing.T) {
	for _, platform := range []string{"ios", "iOS", " IOS "} {
		if _, ok := ClassifyPlatform(platform).(VMAPShape); !ok {
			t.Fatalf("expected VMAP for %q", platform)
		}
	}
	for _, platform := range []string{"android", "web", "homeassistant", ""} {
		if _, ok := ClassifyPlatform(platform).(VASTShape); !ok {
			t.Fatalf("expected VAST for %q", platform)
		}
	}
}
