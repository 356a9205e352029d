package category

import "time"

// Category is a stored category row.
type Category struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description"`
	ParentID    *string   `db:"parent_id" json:"parent_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CategoryListItem is one row of the admin category list, enriched with
// the parent's name and the number of content items filed under it.
type CategoryListItem struct {
	Category
	ParentName   *string `db:"parent_name" json:"parent_name"`
	ContentCount int     `db:"content_count" json:"content_count"`
}

// SaveCategoryRequest is the payload for create and update.
type SaveCategoryRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id"`
}

// FormState is the mutation response shape: error is null on success.
type FormState struct {
	Error   *string `json:"error"`
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
}
