package content

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBody = json.RawMessage(`{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"hi"}]}]}`)

func TestBuildContentData(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("draft leaves publication fields empty", func(t *testing.T) {
		data := BuildContentData(ContentInput{
			Title:  "  My Post  ",
			Status: StatusDraft,
		}, testBody, "author-1", now)

		assert.Equal(t, "My Post", data.Title)
		assert.Equal(t, "my-post", data.Slug)
		assert.Equal(t, BodyFormat, data.BodyFormat)
		assert.Equal(t, "author-1", data.AuthorID)
		assert.Nil(t, data.PublishedAt)
		assert.Nil(t, data.ScheduledAt)
		assert.Equal(t, now, data.UpdatedAt)
	})

	t.Run("publishing stamps published_at with the save time", func(t *testing.T) {
		data := BuildContentData(ContentInput{
			Title:  "My Post",
			Status: StatusPublished,
		}, testBody, "author-1", now)

		require.NotNil(t, data.PublishedAt)
		assert.Equal(t, now, *data.PublishedAt)
	})

	t.Run("scheduling keeps the scheduled date", func(t *testing.T) {
		at := now.Add(48 * time.Hour)
		data := BuildContentData(ContentInput{
			Title:       "My Post",
			Status:      StatusScheduled,
			ScheduledAt: &at,
		}, testBody, "author-1", now)

		require.NotNil(t, data.ScheduledAt)
		assert.Equal(t, at, *data.ScheduledAt)
		assert.Nil(t, data.PublishedAt)
	})

	t.Run("slug override passes through verbatim", func(t *testing.T) {
		data := BuildContentData(ContentInput{
			Title:  "My Post",
			Slug:   "custom-slug",
			Status: StatusDraft,
		}, testBody, "author-1", now)

		assert.Equal(t, "custom-slug", data.Slug)
	})

	t.Run("excerpt is sanitized and trimmed", func(t *testing.T) {
		data := BuildContentData(ContentInput{
			Title:   "My Post",
			Status:  StatusDraft,
			Excerpt: `  <script>alert("x")</script>A short summary  `,
		}, testBody, "author-1", now)

		require.NotNil(t, data.Excerpt)
		assert.Equal(t, "A short summary", *data.Excerpt)
	})

	t.Run("excerpt keeps plain text intact when tags are stripped", func(t *testing.T) {
		data := BuildContentData(ContentInput{
			Title:   "My Post",
			Status:  StatusDraft,
			Excerpt: "Q&A with the team <b>tonight</b>",
		}, testBody, "author-1", now)

		require.NotNil(t, data.Excerpt)
		assert.Equal(t, "Q&A with the team tonight", *data.Excerpt)
	})

	t.Run("empty excerpt stores null", func(t *testing.T) {
		data := BuildContentData(ContentInput{
			Title:   "My Post",
			Status:  StatusDraft,
			Excerpt: "   ",
		}, testBody, "author-1", now)

		assert.Nil(t, data.Excerpt)
	})

	t.Run("empty category stores null", func(t *testing.T) {
		data := BuildContentData(ContentInput{
			Title:  "My Post",
			Status: StatusDraft,
		}, testBody, "author-1", now)

		assert.Nil(t, data.CategoryID)
	})
}
