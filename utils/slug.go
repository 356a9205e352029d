package utils

import (
	"regexp"
	"strings"
)

var (
	nonWordChars  = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens   = regexp.MustCompile(`^-+|-+$`)
)

// Slugify turns free text into a URL-safe slug: lower-cased, non-word
// characters stripped, whitespace/underscore runs collapsed to single
// hyphens, leading and trailing hyphens trimmed.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonWordChars.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}

// GenerateSlug returns the trimmed override verbatim when supplied,
// otherwise a slug derived from the title. Uniqueness is not checked
// here; the database unique constraint is the authority.
func GenerateSlug(title, override string) string {
	if o := strings.TrimSpace(override); o != "" {
		return o
	}
	return Slugify(title)
}
