package content

import (
	"encoding/json"
	"html"
	"strings"
	"time"

	"opendraft/utils"

	"github.com/microcosm-cc/bluemonday"
)

// Free-text fields end up in public API responses, so markup is stripped
// on the way in.
var textPolicy = bluemonday.StrictPolicy()

// stripMarkup removes HTML tags from free text while keeping the text
// itself byte-for-byte: the sanitizer entity-escapes characters like &
// and <, so the escaping is undone after tags are gone.
func stripMarkup(s string) string {
	return html.UnescapeString(textPolicy.Sanitize(s))
}

// nullIfEmpty maps blank optional strings to NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// BuildContentData merges a validated draft into the persisted record
// shape. Pure: the clock is injected, no storage is touched.
//
// published_at is stamped fresh on every save where status is published,
// so republishing updates the timestamp. scheduled_at is stored only when
// the draft is scheduled and a date was supplied.
func BuildContentData(input ContentInput, body json.RawMessage, authorID string, now time.Time) ContentData {
	slug := utils.GenerateSlug(input.Title, input.Slug)

	var publishedAt *time.Time
	if input.Status == StatusPublished {
		t := now
		publishedAt = &t
	}

	var scheduledAt *time.Time
	if input.Status == StatusScheduled && input.ScheduledAt != nil {
		scheduledAt = input.ScheduledAt
	}

	excerpt := stripMarkup(strings.TrimSpace(input.Excerpt))

	return ContentData{
		Title:         strings.TrimSpace(input.Title),
		Slug:          slug,
		Body:          body,
		BodyFormat:    BodyFormat,
		Type:          input.Type,
		Status:        input.Status,
		Visibility:    input.Visibility,
		Excerpt:       nullIfEmpty(excerpt),
		CategoryID:    nullIfEmpty(input.CategoryID),
		ThumbnailURL:  nullIfEmpty(input.ThumbnailURL),
		IsFeatured:    input.IsFeatured,
		AllowComments: input.AllowComments,
		AuthorID:      authorID,
		PublishedAt:   publishedAt,
		ScheduledAt:   scheduledAt,
		UpdatedAt:     now,
	}
}
