package category

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"opendraft/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicateSlug is returned when a category insert or update collides
// on the slug unique index.
var ErrDuplicateSlug = errors.New("category with this slug already exists")

// HasContentError blocks deletion of a category that still has content
// filed under it.
type HasContentError struct {
	Count int
}

func (e *HasContentError) Error() string {
	return fmt.Sprintf("Cannot delete category with %d content item(s)", e.Count)
}

// HasChildrenError blocks deletion of a category that still has
// sub-categories.
type HasChildrenError struct {
	Count int
}

func (e *HasChildrenError) Error() string {
	return fmt.Sprintf("Cannot delete category with %d sub-categories", e.Count)
}

// ListCategories returns all categories ordered by name, each with its
// parent's name and content count.
func ListCategories(db *sqlx.DB) ([]CategoryListItem, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.description, c.parent_id, c.created_at, c.updated_at,
		       p.name AS parent_name,
		       (SELECT COUNT(*) FROM contents ct WHERE ct.category_id = c.id) AS content_count
		FROM categories c
		LEFT JOIN categories p ON p.id = c.parent_id
		ORDER BY c.name ASC`

	items := []CategoryListItem{}
	if err := db.Select(&items, query); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateCategory inserts a new category and returns its generated id.
func CreateCategory(db *sqlx.DB, name, slug string, description, parentID *string, now time.Time) (string, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO categories (id, name, slug, description, parent_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := db.Exec(query, id, name, slug, description, parentID, now, now)
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			return "", ErrDuplicateSlug
		}
		return "", err
	}
	return id, nil
}

// UpdateCategory rewrites an existing category row.
func UpdateCategory(db *sqlx.DB, id, name, slug string, description, parentID *string, now time.Time) error {
	query := `
		UPDATE categories
		SET name = ?, slug = ?, description = ?, parent_id = ?, updated_at = ?
		WHERE id = ?`

	_, err := db.Exec(query, name, slug, description, parentID, now, id)
	if err != nil && utils.IsDuplicateEntry(err) {
		return ErrDuplicateSlug
	}
	return err
}

// DeleteCategory removes a category once it has no content and no
// sub-categories. The guard checks and the delete are separate round
// trips.
func DeleteCategory(db *sqlx.DB, id string) error {
	var contentCount int
	if err := db.Get(&contentCount, `SELECT COUNT(*) FROM contents WHERE category_id = ?`, id); err != nil {
		return err
	}
	if contentCount > 0 {
		return &HasContentError{Count: contentCount}
	}

	var childCount int
	if err := db.Get(&childCount, `SELECT COUNT(*) FROM categories WHERE parent_id = ?`, id); err != nil {
		return err
	}
	if childCount > 0 {
		return &HasChildrenError{Count: childCount}
	}

	_, err := db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	return err
}

// FindCategoryByID returns one category or nil when absent.
func FindCategoryByID(db *sqlx.DB, id string) (*Category, error) {
	var cat Category
	err := db.Get(&cat, `SELECT id, name, slug, description, parent_id, created_at, updated_at FROM categories WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// FindCategoryBySlug returns one category or nil when absent.
func FindCategoryBySlug(db *sqlx.DB, slug string) (*Category, error) {
	var cat Category
	err := db.Get(&cat, `SELECT id, name, slug, description, parent_id, created_at, updated_at FROM categories WHERE slug = ?`, slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
