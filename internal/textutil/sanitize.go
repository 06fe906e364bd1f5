package textutil

import "strings"

var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a file name.
// Path separators, colons and asterisks become dashes; other unsafe
// characters are dropped. Leading dots are stripped so an artifact can never
// become a hidden file or climb out of its directory.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(fileNameReplacer.Replace(strings.TrimSpace(name)))
	return strings.TrimLeft(name, ".")
}
