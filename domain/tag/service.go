package tag

import (
	"database/sql"
	"errors"
	"time"

	"opendraft/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicateSlug is returned when a tag insert or update collides on
// the slug unique index.
var ErrDuplicateSlug = errors.New("a tag with this slug already exists")

// ListTags returns all tags ordered by name with their usage counts.
func ListTags(db *sqlx.DB) ([]TagListItem, error) {
	query := `
		SELECT t.id, t.name, t.slug, t.created_at,
		       (SELECT COUNT(*) FROM content_tags ct WHERE ct.tag_id = t.id) AS content_count
		FROM tags t
		ORDER BY t.name ASC`

	items := []TagListItem{}
	if err := db.Select(&items, query); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateTag inserts a new tag and returns the stored row, so callers
// creating tags on the fly can attach them immediately.
func CreateTag(db *sqlx.DB, name, slug string, now time.Time) (*Tag, error) {
	t := Tag{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		CreatedAt: now,
	}

	_, err := db.Exec(`INSERT INTO tags (id, name, slug, created_at) VALUES (?, ?, ?, ?)`,
		t.ID, t.Name, t.Slug, t.CreatedAt)
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return &t, nil
}

// UpdateTag rewrites a tag's name and slug.
func UpdateTag(db *sqlx.DB, id, name, slug string) error {
	_, err := db.Exec(`UPDATE tags SET name = ?, slug = ? WHERE id = ?`, name, slug, id)
	if err != nil && utils.IsDuplicateEntry(err) {
		return ErrDuplicateSlug
	}
	return err
}

// DeleteTag removes a tag after clearing its content associations.
func DeleteTag(db *sqlx.DB, id string) error {
	if _, err := db.Exec(`DELETE FROM content_tags WHERE tag_id = ?`, id); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM tags WHERE id = ?`, id)
	return err
}

// FindTagBySlug returns one tag or nil when absent.
func FindTagBySlug(db *sqlx.DB, slug string) (*Tag, error) {
	var t Tag
	err := db.Get(&t, `SELECT id, name, slug, created_at FROM tags WHERE slug = ?`, slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
