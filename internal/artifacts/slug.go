// Package artifacts writes the JSON and Markdown files produced by a
// generation run: article-<slug>.json, article-<slug>.md, and
// keywords-<slug>.json under a configurable output directory.
package artifacts

import "strings"

// Slug derives a filename-safe name from a topic: lowercased, with spaces
// and path separators replaced by hyphens. Slug is idempotent, so a value
// that is already a slug passes through unchanged.
func Slug(topic string) string {
	s := strings.ToLower(strings.TrimSpace(topic))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	return s
}
