package public

import (
	"encoding/json"
	"time"
)

// PostTag is a tag attached to a public post.
type PostTag struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
}

// Post is the public read-model of a published, public content item.
type Post struct {
	ID            string          `db:"id" json:"id"`
	Title         string          `db:"title" json:"title"`
	Slug          string          `db:"slug" json:"slug"`
	Body          json.RawMessage `db:"body" json:"body"`
	BodyFormat    string          `db:"body_format" json:"body_format"`
	Type          string          `db:"type" json:"type"`
	Excerpt       *string         `db:"excerpt" json:"excerpt"`
	ThumbnailURL  *string         `db:"thumbnail_url" json:"thumbnail_url"`
	IsFeatured    bool            `db:"is_featured" json:"is_featured"`
	AllowComments bool            `db:"allow_comments" json:"allow_comments"`
	CategoryID    *string         `db:"category_id" json:"category_id"`
	CategoryName  *string         `db:"category_name" json:"category_name"`
	CategorySlug  *string         `db:"category_slug" json:"category_slug"`
	AuthorName    *string         `db:"author_name" json:"author_name"`
	PublishedAt   *time.Time      `db:"published_at" json:"published_at"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
	Tags          []PostTag       `json:"tags"`
}

// RelatedPost is a compact card for the related posts strip.
type RelatedPost struct {
	ID           string     `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Slug         string     `db:"slug" json:"slug"`
	Excerpt      *string    `db:"excerpt" json:"excerpt"`
	ThumbnailURL *string    `db:"thumbnail_url" json:"thumbnail_url"`
	PublishedAt  *time.Time `db:"published_at" json:"published_at"`
	AuthorName   *string    `db:"author_name" json:"author_name"`
}

// CategorySummary is a public category with its published post count.
type CategorySummary struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Slug        string  `db:"slug" json:"slug"`
	Description *string `db:"description" json:"description"`
	PostCount   int     `db:"post_count" json:"post_count"`
}

// TagSummary is a public tag with its published post count.
type TagSummary struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Slug      string `db:"slug" json:"slug"`
	PostCount int    `db:"post_count" json:"post_count"`
}

// Pagination is the window descriptor attached to list responses.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PostFilters narrows the public post list.
type PostFilters struct {
	Type         string
	CategorySlug string
	TagSlug      string
	Featured     bool
	Search       string
	Sort         string
	Ascending    bool
	Page         int
	Limit        int
}
