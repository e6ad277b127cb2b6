package models

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a product name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphen. Applying it to an already slugified name is a no-op.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
