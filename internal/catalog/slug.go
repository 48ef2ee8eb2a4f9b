package catalog

import "strings"

// The four category slugs the storefront knows about. Products are stored with
// one of these; display labels never reach the database.
const (
	SlugFineArt      = "fine-art"
	SlugAntiques     = "antiques"
	SlugJewelry      = "jewelry"
	SlugCollectibles = "collectibles"
)

var knownSlugs = map[string]bool{
	SlugFineArt:      true,
	SlugAntiques:     true,
	SlugJewelry:      true,
	SlugCollectibles: true,
}

// NormalizeSlug converts a category value to slug form: lowercase, trimmed,
// interior whitespace and underscores collapsed to single hyphens. "Fine Art"
// and "fine-art" normalize to the same value.
func NormalizeSlug(category string) string {
	s := strings.ToLower(strings.TrimSpace(category))
	s = strings.ReplaceAll(s, "_", " ")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-'
	})
	return strings.Join(fields, "-")
}

// IsKnownSlug reports whether slug is one of the four storefront categories.
// Callers must normalize first; this is an exact match.
func IsKnownSlug(slug string) bool {
	return knownSlugs[slug]
}

// Slugs returns the known category slugs in display order.
func Slugs() []string {
	return []string{SlugFineArt, SlugAntiques, SlugJewelry, SlugCollectibles}
}
