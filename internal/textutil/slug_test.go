package textutil

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Radio Player", "radio-player"},
		{"  Café Del Mar! ", "cafe-del-mar"},
		{"Déjà   Vu -- FM", "deja-vu-fm"},
		{"***", ""},
		{"", ""},
		{"Station 42", "station-42"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlatformKey(t *testing.T) {
	for _, in := range []string{"iOS", "ios", " IOS "} {
		if got := PlatformKey(in); got != "ios" {
			t.Errorf("PlatformKey(%q) = %q, want ios", in, got)
		}
	}
	if got := PlatformKey("Home Assistant"); got != "homeassistant" {
		t.Errorf("PlatformKey(Home Assistant) = %q", got)
	}
}

func TestUniqueFoldKeepsFirstSpelling(t *testing.T) {
	got := UniqueFold([]string{" Downtempo", "downtempo", "", "Trip-Hop", "TRIP-HOP", "Ambient "})
	want := []string{"Downtempo", "Trip-Hop", "Ambient"}
	if len(got) != len(want) {
		t.Fatalf("UniqueFold = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UniqueFold = %v, want %v", got, want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Chillout Vibes", "chillout") {
		t.Fatal("expected case-insensitive containment")
	}
	if ContainsFold("ambient", "") {
		t.Fatal("blank needle must not match")
	}
	if !EqualFold(" CHILLOUT", "chillout ") {
		t.Fatal("expected trimmed case-insensitive equality")
	}
}
