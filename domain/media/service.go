package media

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// FindMediaWithFilters returns a page of the media library, newest
// first. Search matches original name and alt text; type narrows by
// MIME prefix (image, video, ...).
func FindMediaWithFilters(db *sqlx.DB, filters MediaFilters) (PaginatedMedia, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	where := "1=1"
	args := []interface{}{}

	if search := strings.TrimSpace(filters.Search); search != "" {
		where += " AND (m.original_name LIKE ? OR m.alt_text LIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	if filters.Type != "" && filters.Type != "all" {
		where += " AND m.mime_type LIKE ?"
		args = append(args, filters.Type+"/%")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM media m WHERE %s`, where)
	if err := db.Get(&total, countQuery, args...); err != nil {
		return PaginatedMedia{}, err
	}

	listQuery := fmt.Sprintf(`
		SELECT m.id, m.filename, m.original_name, m.mime_type, m.size, m.url,
		       m.storage_path, m.alt_text, m.caption, m.uploaded_by, m.created_at,
		       p.display_name AS uploader_name
		FROM media m
		LEFT JOIN profiles p ON p.id = m.uploaded_by
		WHERE %s
		ORDER BY m.created_at DESC
		LIMIT ? OFFSET ?`, where)

	items := []MediaListItem{}
	if err := db.Select(&items, listQuery, append(args, limit, offset)...); err != nil {
		return PaginatedMedia{}, err
	}

	return PaginatedMedia{
		Data:       items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// InsertMedia records an uploaded blob and returns the stored row.
func InsertMedia(db *sqlx.DB, item MediaItem) (*MediaItem, error) {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()

	query := `
		INSERT INTO media (id, filename, original_name, mime_type, size, url,
		                   storage_path, alt_text, caption, uploaded_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := db.Exec(query,
		item.ID, item.Filename, item.OriginalName, item.MimeType, item.Size,
		item.URL, item.StoragePath, item.AltText, item.Caption, item.UploadedBy,
		item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateMediaMeta rewrites a media item's alt text and caption.
func UpdateMediaMeta(db *sqlx.DB, id string, altText, caption *string) error {
	_, err := db.Exec(`UPDATE media SET alt_text = ?, caption = ? WHERE id = ?`, altText, caption, id)
	return err
}

// FindMediaByID returns one media item or nil when absent.
func FindMediaByID(db *sqlx.DB, id string) (*MediaItem, error) {
	var item MediaItem
	err := db.Get(&item, `
		SELECT id, filename, original_name, mime_type, size, url,
		       storage_path, alt_text, caption, uploaded_by, created_at
		FROM media WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindStoragePathsByIDs returns the storage paths for the given media
// ids.
func FindStoragePathsByIDs(db *sqlx.DB, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT storage_path FROM media WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	paths := []string{}
	if err := db.Select(&paths, query, args...); err != nil {
		return nil, err
	}
	return paths, nil
}

// DeleteMediaByID removes one media row.
func DeleteMediaByID(db *sqlx.DB, id string) error {
	_, err := db.Exec(`DELETE FROM media WHERE id = ?`, id)
	return err
}

// BulkDeleteMediaByIDs removes every media row in the id list and
// returns how many were deleted.
func BulkDeleteMediaByIDs(db *sqlx.DB, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`DELETE FROM media WHERE id IN (?)`, ids)
	if err != nil {
		return 0, err
	}

	result, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
