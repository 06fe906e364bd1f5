package ads

import (
	"regexp"
	"strings"
)

var networkCodePattern = regexp.MustCompile(`^/(\d{3,})(?:/|$)`)

// ExtractNetworkCode returns the leading numeric segment of an ad unit path
// ("/1234567/radio/preroll" -> "1234567"), or "" when there is none.
func ExtractNetworkCode(path string) string {
	match := networkCodePattern.FindStringSubmatch(strings.TrimSpace(path))
	if match == nil {
		return ""
	}
	return match[1]
}

// NormalizeVMAPPath rewrites an ad unit path into ad-rules form. "_preroll"
// and "_midroll" leaf suffixes become "_adrules"; a leaf without "_adrules"
// is replaced by expectedLeaf. Ad-rules paths under /radio/ move to
// /webradio/. Missing or malformed sources fall back to fallback.
func NormalizeVMAPPath(source, fallback, expectedLeaf string) string {
	prefix, leaf, ok := resolveSource(source, fallback)
	if !ok {
		return ""
	}
	leaf = replaceLeafSuffix(leaf, "_adrules", "_preroll", "_midroll")
	if expectedLeaf != "" && !strings.Contains(strings.ToLower(leaf), "_adrules") {
		leaf = expectedLeaf
	}
	if leaf == "" {
		return ""
	}
	path := prefix + "/" + leaf
	if strings.Contains(strings.ToLower(path), "_adrules") {
		path = toWebradio(path)
	}
	return path
}

// NormalizeVASTPath rewrites an ad unit path into preroll form. "_adrules"
// and "_midroll" leaf suffixes become "_preroll"; when expectedLeaf is set
// any other leaf is replaced by it, otherwise a leaf without "_preroll"
// becomes "preroll". Preroll paths under /radio/ move to /webradio/.
// Missing or malformed sources fall back to fallback.
func NormalizeVASTPath(source, fallback, expectedLeaf string) string {
	prefix, leaf, ok := resolveSource(source, fallback)
	if !ok {
		return ""
	}
	leaf = replaceLeafSuffix(leaf, "_preroll", "_adrules", "_midroll")
	switch {
	case expectedLeaf != "":
		if !strings.EqualFold(leaf, expectedLeaf) {
			leaf = expectedLeaf
		}
	case !strings.Contains(strings.ToLower(leaf), "_preroll"):
		leaf = "preroll"
	}
	path := prefix + "/" + leaf
	if strings.Contains(strings.ToLower(leaf), "_preroll") {
		path = toWebradio(path)
	}
	return path
}

// resolveSource splits the source path, borrowing the fallback's prefix when
// the source is a bare leaf. A blank source, or one whose prefix lacks a
// network code, is replaced by the fallback entirely.
func resolveSource(source, fallback string) (prefix, leaf string, ok bool) {
	source = strings.TrimSpace(source)
	fallback = strings.TrimSpace(fallback)
	fallbackPrefix, fallbackLeaf := splitPath(fallback)

	prefix, leaf = splitPath(source)
	switch {
	case source == "":
		prefix, leaf = fallbackPrefix, fallbackLeaf
	case prefix != "" && ExtractNetworkCode(source) == "":
		prefix, leaf = fallbackPrefix, fallbackLeaf
	case prefix == "":
		prefix = fallbackPrefix
	}
	if prefix == "" {
		return "", "", false
	}
	return prefix, leaf, true
}

func splitPath(path string) (prefix, leaf string) {
	path = strings.TrimRight(path, "/")
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", path
	}
	return path[:idx], path[idx+1:]
}

func replaceLeafSuffix(leaf, replacement string, suffixes ...string) string {
	lower := strings.ToLower(leaf)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, suffix) {
			return leaf[:len(leaf)-len(suffix)] + replacement
		}
	}
	return leaf
}

func toWebradio(path string) string {
	return strings.Replace(path, "/radio/", "/webradio/", 1)
}
