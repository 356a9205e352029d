package tag

import "time"

// Tag is a stored tag row.
type Tag struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// TagListItem is one row of the admin tag list with its usage count.
type TagListItem struct {
	Tag
	ContentCount int `db:"content_count" json:"content_count"`
}

// SaveTagRequest is the payload for create and update.
type SaveTagRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FormState is the mutation response shape: error is null on success.
type FormState struct {
	Error   *string `json:"error"`
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Tag     *Tag    `json:"tag,omitempty"`
}
