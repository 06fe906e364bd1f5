package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify lowercases value, strips diacritics and joins alphanumeric runs
// with single dashes ("Café Del Mar!" -> "cafe-del-mar"). It returns "" when
// nothing alphanumeric remains.
func Slugify(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	// Chained transformers keep state, so build one per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, value)
	if err != nil {
		plain = value
	}

	var b strings.Builder
	b.Grow(len(plain))
	pendingDash := false
	for _, r := range strings.ToLower(plain) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// PlatformKey normalizes a platform name for use as a map key: trimmed,
// lower-cased and with all internal whitespace removed
// ("Home Assistant" -> "homeassistant").
func PlatformKey(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, value)
}
