package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Categorize maps an extension (lower-case, leading dot included) to its
// category name. Unknown extensions land in Fallback; the lookup never fails.
func Categorize(ext string) string {
	for _, category := range table {
		for _, candidate := range category.Extensions {
			if candidate == ext {
				return category.Name
			}
		}
	}
	return Fallback
}

// ExtensionOf derives the lower-cased extension from an entry name. A name
// without a dot, or a dotfile whose only dot is the leading one, has no
// extension and yields the empty string.
func ExtensionOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(name[idx:])
}

var titleCaser = cases.Title(language.English)

// DisplayName renders a category identifier for table output.
func DisplayName(name string) string {
	return titleCaser.String(name)
}
