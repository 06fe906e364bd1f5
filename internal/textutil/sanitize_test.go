package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chill-mix-ios.json", "chill-mix-ios.json"},
		{"a/b\\c:d*e.json", "a-b-c-d-e.json"},
		{"what?<>|\".json", "what.json"},
		{"../escape.json", "-escape.json"},
		{"  .hidden.json ", "hidden.json"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeFileName(tt.in); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
