package content

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"opendraft/pkg/logger"
	"opendraft/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

// ErrDuplicateSlug is returned when a save collides with the unique
// constraint on contents.slug.
var ErrDuplicateSlug = errors.New("a content with this slug already exists")

// CreateContent inserts a new content row and returns its generated id.
func CreateContent(db *sqlx.DB, data ContentData) (string, error) {
	id := uuid.NewString()

	_, err := db.Exec(`
		INSERT INTO contents
			(id, title, slug, body, body_format, type, status, visibility,
			 excerpt, category_id, thumbnail_url, is_featured, allow_comments,
			 author_id, published_at, scheduled_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, data.Title, data.Slug, []byte(data.Body), data.BodyFormat,
		data.Type, data.Status, data.Visibility,
		data.Excerpt, data.CategoryID, data.ThumbnailURL,
		data.IsFeatured, data.AllowComments,
		data.AuthorID, data.PublishedAt, data.ScheduledAt,
		data.UpdatedAt, data.UpdatedAt)
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			return "", ErrDuplicateSlug
		}
		return "", err
	}

	return id, nil
}

// UpdateContent overwrites an existing content row. Updating a missing id
// is a no-op, not an error; callers must not assume existence was checked.
func UpdateContent(db *sqlx.DB, id string, data ContentData) error {
	_, err := db.Exec(`
		UPDATE contents
		SET title = ?, slug = ?, body = ?, body_format = ?, type = ?,
		    status = ?, visibility = ?, excerpt = ?, category_id = ?,
		    thumbnail_url = ?, is_featured = ?, allow_comments = ?,
		    published_at = ?, scheduled_at = ?, updated_at = ?
		WHERE id = ?`,
		data.Title, data.Slug, []byte(data.Body), data.BodyFormat, data.Type,
		data.Status, data.Visibility, data.Excerpt, data.CategoryID,
		data.ThumbnailURL, data.IsFeatured, data.AllowComments,
		data.PublishedAt, data.ScheduledAt, data.UpdatedAt,
		id)
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// FindContentByID fetches one content row; a miss returns (nil, nil).
func FindContentByID(db *sqlx.DB, id string) (*Content, error) {
	var c Content
	err := db.Get(&c, `SELECT * FROM contents WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteContentByID removes one content row. Tag associations go with it
// via the foreign key cascade; SEO metadata is left behind.
func DeleteContentByID(db *sqlx.DB, id string) error {
	_, err := db.Exec(`DELETE FROM contents WHERE id = ?`, id)
	return err
}

// FindContentsWithFilters returns a windowed admin list. Search matches
// title or slug as a substring, status/type filter exactly unless "all",
// and rows arrive most-recently-updated first.
func FindContentsWithFilters(db *sqlx.DB, filters ContentFilters) (PaginatedContents, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	where := "1=1"
	var args []interface{}

	if s := filters.Search; s != "" {
		where += " AND (c.title LIKE ? OR c.slug LIKE ?)"
		pattern := "%" + s + "%"
		args = append(args, pattern, pattern)
	}
	if filters.Status != "" && filters.Status != "all" {
		where += " AND c.status = ?"
		args = append(args, filters.Status)
	}
	if filters.Type != "" && filters.Type != "all" {
		where += " AND c.type = ?"
		args = append(args, filters.Type)
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM contents c WHERE %s", where)
	if err := db.Get(&total, countQuery, args...); err != nil {
		return PaginatedContents{}, err
	}

	listQuery := fmt.Sprintf(`
		SELECT c.id, c.title, c.slug, c.type, c.status, c.visibility,
		       c.created_at, c.updated_at, c.published_at, c.author_id,
		       p.display_name AS author_name
		FROM contents c
		LEFT JOIN profiles p ON p.id = c.author_id
		WHERE %s
		ORDER BY c.updated_at DESC
		LIMIT ? OFFSET ?`, where)

	rows := []ContentListItem{}
	listArgs := append(args, limit, offset)
	if err := db.Select(&rows, listQuery, listArgs...); err != nil {
		return PaginatedContents{}, err
	}

	totalPages := (total + limit - 1) / limit

	return PaginatedContents{
		Data:       rows,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// BulkDeleteContentsByIDs removes every row in the id list and reports
// the backend's all-or-nothing count.
func BulkDeleteContentsByIDs(db *sqlx.DB, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`DELETE FROM contents WHERE id IN (?)`, ids)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// BulkUpdateContentStatus sets the status on every row in the id list.
// Publishing stamps published_at batch-wide with the same timestamp.
func BulkUpdateContentStatus(db *sqlx.DB, ids []string, status string, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var query string
	var args []interface{}
	var err error

	if status == StatusPublished {
		query, args, err = sqlx.In(
			`UPDATE contents SET status = ?, published_at = ? WHERE id IN (?)`,
			status, now, ids)
	} else {
		query, args, err = sqlx.In(
			`UPDATE contents SET status = ? WHERE id IN (?)`,
			status, ids)
	}
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateContentStatusByID is the quick-edit path for a single row's
// status, bypassing the full save pipeline.
func UpdateContentStatusByID(db *sqlx.DB, id, status string, now time.Time) error {
	if status == StatusPublished {
		_, err := db.Exec(`UPDATE contents SET status = ?, published_at = ? WHERE id = ?`,
			status, now, id)
		return err
	}
	_, err := db.Exec(`UPDATE contents SET status = ? WHERE id = ?`, status, id)
	return err
}

// UpdateContentVisibilityByID is the quick-edit path for visibility.
func UpdateContentVisibilityByID(db *sqlx.DB, id, visibility string) error {
	_, err := db.Exec(`UPDATE contents SET visibility = ? WHERE id = ?`, visibility, id)
	return err
}

// FindTagIDsByContentID returns the tag ids associated with one content
// row, oldest association first.
func FindTagIDsByContentID(db *sqlx.DB, contentID string) ([]string, error) {
	ids := []string{}
	err := db.Select(&ids, `SELECT tag_id FROM content_tags WHERE content_id = ?`, contentID)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// SyncContentTags replaces the full association set for one content row:
// delete everything, then insert the new set. The two steps are separate
// round trips; a failure in between leaves the content with zero tags.
func SyncContentTags(db *sqlx.DB, contentID string, tagIDs []string) error {
	if _, err := db.Exec(`DELETE FROM content_tags WHERE content_id = ?`, contentID); err != nil {
		return err
	}

	if len(tagIDs) == 0 {
		return nil
	}

	query := `INSERT INTO content_tags (content_id, tag_id) VALUES `
	var args []interface{}
	for i, tagID := range tagIDs {
		if i > 0 {
			query += ", "
		}
		query += "(?, ?)"
		args = append(args, contentID, tagID)
	}

	_, err := db.Exec(query, args...)
	return err
}

// GetFullContent reconstructs the editable view of one content item: the
// base record plus tag ids and SEO metadata, fetched concurrently. A
// missing base record returns (nil, nil); missing tags or SEO default to
// empty/null rather than failing the read.
func GetFullContent(db *sqlx.DB, id string) (*FullContent, error) {
	base, err := FindContentByID(db, id)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, nil
	}

	full := &FullContent{Content: *base, TagIDs: []string{}}

	g := new(errgroup.Group)
	g.Go(func() error {
		tagIDs, err := FindTagIDsByContentID(db, id)
		if err != nil {
			return err
		}
		full.TagIDs = tagIDs
		return nil
	})
	g.Go(func() error {
		seo, err := FindSeoByContentID(db, id)
		if err != nil {
			return err
		}
		full.SeoMeta = seo
		return nil
	})

	if err := g.Wait(); err != nil {
		// Auxiliary reads are best-effort; the base record is still usable.
		logger.Get().WithComponent("content").Warn("Failed to load content extras",
			logger.ContentID(id), logger.Err(err))
	}

	return full, nil
}
