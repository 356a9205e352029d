package content

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBody(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		body, err := ParseBody(`{"type":"doc","content":[{"type":"paragraph"}]}`)
		require.NoError(t, err)
		assert.NotNil(t, body)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := ParseBody(`{"type":"doc"`)
		assert.ErrorIs(t, err, ErrInvalidBody)
	})

	t.Run("error message matches form copy", func(t *testing.T) {
		assert.Equal(t, "Invalid content format", ErrInvalidBody.Error())
	})
}

func TestBodyIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "nil-like root", body: `{}`, want: true},
		{name: "wrong root type", body: `{"type":"paragraph"}`, want: true},
		{name: "doc with no blocks", body: `{"type":"doc","content":[]}`, want: true},
		{name: "single empty paragraph", body: `{"type":"doc","content":[{"type":"paragraph"}]}`, want: true},
		{name: "paragraph with text", body: `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"hi"}]}]}`, want: false},
		{name: "two empty paragraphs", body: `{"type":"doc","content":[{"type":"paragraph"},{"type":"paragraph"}]}`, want: false},
		{name: "single non-paragraph block", body: `{"type":"doc","content":[{"type":"heading"}]}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BodyIsEmpty(json.RawMessage(tt.body)))
		})
	}
}

func TestValidateContent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	t.Run("draft needs only a title", func(t *testing.T) {
		result := ValidateContent(ContentInput{Title: "Hello", Status: StatusDraft}, true, now)
		assert.True(t, result.Valid)
	})

	t.Run("missing title", func(t *testing.T) {
		result := ValidateContent(ContentInput{Title: "  ", Status: StatusDraft}, true, now)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgTitleRequired, result.Joined())
	})

	t.Run("publishing an empty body", func(t *testing.T) {
		result := ValidateContent(ContentInput{Title: "Hello", Status: StatusPublished}, true, now)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgBodyRequired, result.Joined())
	})

	t.Run("scheduled without a date", func(t *testing.T) {
		result := ValidateContent(ContentInput{Title: "Hello", Status: StatusScheduled}, false, now)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgScheduleRequired, result.Joined())
	})

	t.Run("scheduled in the past", func(t *testing.T) {
		result := ValidateContent(ContentInput{Title: "Hello", Status: StatusScheduled, ScheduledAt: &past}, false, now)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgScheduleInPast, result.Joined())
	})

	t.Run("scheduled exactly now is in the past", func(t *testing.T) {
		at := now
		result := ValidateContent(ContentInput{Title: "Hello", Status: StatusScheduled, ScheduledAt: &at}, false, now)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgScheduleInPast, result.Joined())
	})

	t.Run("valid scheduled post", func(t *testing.T) {
		result := ValidateContent(ContentInput{Title: "Hello", Status: StatusScheduled, ScheduledAt: &future}, false, now)
		assert.True(t, result.Valid)
	})

	t.Run("failures accumulate in order", func(t *testing.T) {
		result := ValidateContent(ContentInput{Title: "", Status: StatusScheduled}, true, now)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgTitleRequired+", "+MsgScheduleRequired, result.Joined())
	})
}
