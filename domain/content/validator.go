package content

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Validation messages surfaced to the editing form.
const (
	MsgTitleRequired    = "Title is required"
	MsgBodyRequired     = "Content is required to publish"
	MsgScheduleRequired = "Schedule date is required for scheduled posts"
	MsgScheduleInPast   = "Schedule date must be in the future"
)

// ErrInvalidBody is returned when the raw body is not a well-formed
// document. Validation short-circuits on it.
var ErrInvalidBody = errors.New("Invalid content format")

// ValidationResult accumulates every failed business rule.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Joined renders the accumulated errors for display.
func (r ValidationResult) Joined() string {
	return strings.Join(r.Errors, ", ")
}

// ParseBody decodes the raw rich-text document. The decoded document is
// returned as raw JSON for storage; callers short-circuit on error.
func ParseBody(raw string) (json.RawMessage, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, ErrInvalidBody
	}
	return json.RawMessage(raw), nil
}

// docNode is the subset of the rich-text schema the emptiness check needs.
type docNode struct {
	Type    string    `json:"type"`
	Content []docNode `json:"content"`
}

// BodyIsEmpty reports whether a document holds no authored content: not a
// well-formed document root, no child blocks, or a single paragraph with
// no inline content.
func BodyIsEmpty(body json.RawMessage) bool {
	var doc docNode
	if err := json.Unmarshal(body, &doc); err != nil {
		return true
	}
	if doc.Type != "doc" {
		return true
	}
	if len(doc.Content) == 0 {
		return true
	}
	if len(doc.Content) == 1 && doc.Content[0].Type == "paragraph" && len(doc.Content[0].Content) == 0 {
		return true
	}
	return false
}

func validateTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return MsgTitleRequired
	}
	return ""
}

func validateBodyForPublish(status string, bodyIsEmpty bool) string {
	if status == StatusPublished && bodyIsEmpty {
		return MsgBodyRequired
	}
	return ""
}

func validateScheduledDate(status string, scheduledAt *time.Time, now time.Time) string {
	if status != StatusScheduled {
		return ""
	}
	if scheduledAt == nil {
		return MsgScheduleRequired
	}
	if !scheduledAt.After(now) {
		return MsgScheduleInPast
	}
	return ""
}

// ValidateContent runs every business rule against the draft and reports
// all failures together. The clock is injected so scheduling rules are
// testable.
func ValidateContent(input ContentInput, bodyIsEmpty bool, now time.Time) ValidationResult {
	var errs []string

	if msg := validateTitle(input.Title); msg != "" {
		errs = append(errs, msg)
	}
	if msg := validateBodyForPublish(input.Status, bodyIsEmpty); msg != "" {
		errs = append(errs, msg)
	}
	if msg := validateScheduledDate(input.Status, input.ScheduledAt, now); msg != "" {
		errs = append(errs, msg)
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
