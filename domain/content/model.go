package content

import (
	"encoding/json"
	"time"
)

// BodyFormat tags the schema of the rich-text document stored in the body
// column. Only one schema is supported.
const BodyFormat = "tiptap-json"

// Content types
const (
	TypePost          = "post"
	TypePage          = "page"
	TypeDocumentation = "documentation"
	TypeProduct       = "product"
	TypeLandingPage   = "landing_page"
)

// Content statuses
const (
	StatusDraft         = "draft"
	StatusPendingReview = "pending_review"
	StatusScheduled     = "scheduled"
	StatusPublished     = "published"
	StatusArchived      = "archived"
)

// Content visibilities
const (
	VisibilityPublic      = "public"
	VisibilityPrivate     = "private"
	VisibilityMembersOnly = "members_only"
)

var ValidTypes = map[string]bool{
	TypePost:          true,
	TypePage:          true,
	TypeDocumentation: true,
	TypeProduct:       true,
	TypeLandingPage:   true,
}

var ValidStatuses = map[string]bool{
	StatusDraft:         true,
	StatusPendingReview: true,
	StatusScheduled:     true,
	StatusPublished:     true,
	StatusArchived:      true,
}

var ValidVisibilities = map[string]bool{
	VisibilityPublic:      true,
	VisibilityPrivate:     true,
	VisibilityMembersOnly: true,
}

// SaveContentRequest is the request payload for the save pipeline.
type SaveContentRequest struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Body          string     `json:"body"` // raw rich-text document JSON
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Visibility    string     `json:"visibility"`
	Excerpt       string     `json:"excerpt"`
	CategoryID    string     `json:"category_id"`
	ThumbnailURL  string     `json:"thumbnail_url"`
	IsFeatured    bool       `json:"is_featured"`
	AllowComments *bool      `json:"allow_comments"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	TagIDs        []string   `json:"tag_ids"`
	Seo           SeoInput   `json:"seo"`
}

// SeoInput carries the SEO override fields of a save request.
type SeoInput struct {
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	OgImageURL      string `json:"og_image_url"`
	CanonicalURL    string `json:"canonical_url"`
}

// ContentInput is the normalized editable draft fed into the validator
// and assembler.
type ContentInput struct {
	ID            string
	Title         string
	Slug          string
	BodyJSON      string
	Type          string
	Status        string
	Visibility    string
	Excerpt       string
	CategoryID    string
	ThumbnailURL  string
	IsFeatured    bool
	AllowComments bool
	ScheduledAt   *time.Time
	TagIDs        []string
	Seo           SeoInput
}

// ContentData is the persisted record shape produced by the assembler.
type ContentData struct {
	Title         string
	Slug          string
	Body          json.RawMessage
	BodyFormat    string
	Type          string
	Status        string
	Visibility    string
	Excerpt       *string
	CategoryID    *string
	ThumbnailURL  *string
	IsFeatured    bool
	AllowComments bool
	AuthorID      string
	PublishedAt   *time.Time
	ScheduledAt   *time.Time
	UpdatedAt     time.Time
}

// Content is a stored content row.
type Content struct {
	ID            string          `db:"id" json:"id"`
	Title         string          `db:"title" json:"title"`
	Slug          string          `db:"slug" json:"slug"`
	Body          json.RawMessage `db:"body" json:"body"`
	BodyFormat    string          `db:"body_format" json:"body_format"`
	Type          string          `db:"type" json:"type"`
	Status        string          `db:"status" json:"status"`
	Visibility    string          `db:"visibility" json:"visibility"`
	Excerpt       *string         `db:"excerpt" json:"excerpt"`
	CategoryID    *string         `db:"category_id" json:"category_id"`
	ThumbnailURL  *string         `db:"thumbnail_url" json:"thumbnail_url"`
	IsFeatured    bool            `db:"is_featured" json:"is_featured"`
	AllowComments bool            `db:"allow_comments" json:"allow_comments"`
	AuthorID      string          `db:"author_id" json:"author_id"`
	PublishedAt   *time.Time      `db:"published_at" json:"published_at"`
	ScheduledAt   *time.Time      `db:"scheduled_at" json:"scheduled_at"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// SeoMeta is the per-content SEO metadata row.
type SeoMeta struct {
	ContentID       string    `db:"content_id" json:"content_id"`
	MetaTitle       *string   `db:"meta_title" json:"meta_title"`
	MetaDescription *string   `db:"meta_description" json:"meta_description"`
	OgImageURL      *string   `db:"og_image_url" json:"og_image_url"`
	CanonicalURL    *string   `db:"canonical_url" json:"canonical_url"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// FullContent is the editable view of one content item: the base record
// plus its tag associations and SEO metadata.
type FullContent struct {
	Content
	TagIDs  []string `json:"tag_ids"`
	SeoMeta *SeoMeta `json:"seo_meta"`
}

// ContentListItem is one row of the admin content list.
type ContentListItem struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Slug        string     `db:"slug" json:"slug"`
	Type        string     `db:"type" json:"type"`
	Status      string     `db:"status" json:"status"`
	Visibility  string     `db:"visibility" json:"visibility"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
	PublishedAt *time.Time `db:"published_at" json:"published_at"`
	AuthorID    string     `db:"author_id" json:"author_id"`
	AuthorName  *string    `db:"author_name" json:"author_name"`
}

// ContentFilters narrows the admin content list.
type ContentFilters struct {
	Search string
	Status string
	Type   string
	Page   int
	Limit  int
}

// PaginatedContents is a windowed list result with an exact total.
type PaginatedContents struct {
	Data       []ContentListItem `json:"data"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// FormState is the mutation response shape: error is null on success.
type FormState struct {
	Error     *string `json:"error"`
	Success   bool    `json:"success"`
	ContentID string  `json:"content_id,omitempty"`
}

// BulkIDsRequest is the payload for bulk delete.
type BulkIDsRequest struct {
	IDs []string `json:"ids"`
}

// BulkStatusRequest is the payload for bulk status change.
type BulkStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

// QuickEditRequest is the payload for status/visibility quick edits.
type QuickEditRequest struct {
	Status     string `json:"status"`
	Visibility string `json:"visibility"`
}
