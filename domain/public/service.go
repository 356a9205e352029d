package public

import (
	"database/sql"
	"fmt"
	"strings"

	"opendraft/domain/content"

	"github.com/jmoiron/sqlx"
)

// validSortFields whitelists the public list sort columns.
var validSortFields = map[string]bool{
	"published_at": true,
	"updated_at":   true,
	"created_at":   true,
	"title":        true,
}

const postColumns = `
	c.id, c.title, c.slug, c.body, c.body_format, c.type, c.excerpt,
	c.thumbnail_url, c.is_featured, c.allow_comments, c.category_id,
	cat.name AS category_name, cat.slug AS category_slug,
	p.display_name AS author_name,
	c.published_at, c.created_at, c.updated_at`

const postJoins = `
	FROM contents c
	LEFT JOIN categories cat ON cat.id = c.category_id
	LEFT JOIN profiles p ON p.id = c.author_id`

// visibleOnly restricts every public query to published, public rows.
const visibleOnly = `c.status = 'published' AND c.visibility = 'public'`

func clampWindow(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// attachTags loads the tag lists for a page of posts in one query.
func attachTags(db *sqlx.DB, posts []Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, len(posts))
	index := make(map[string]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		index[p.ID] = i
		posts[i].Tags = []PostTag{}
	}

	query, args, err := sqlx.In(`
		SELECT ct.content_id, t.id, t.name, t.slug
		FROM content_tags ct
		JOIN tags t ON t.id = ct.tag_id
		WHERE ct.content_id IN (?)
		ORDER BY t.name ASC`, ids)
	if err != nil {
		return err
	}

	rows := []struct {
		ContentID string `db:"content_id"`
		PostTag
	}{}
	if err := db.Select(&rows, query, args...); err != nil {
		return err
	}

	for _, row := range rows {
		i := index[row.ContentID]
		posts[i].Tags = append(posts[i].Tags, row.PostTag)
	}
	return nil
}

// FindPosts returns a page of published, public posts with their tags.
func FindPosts(db *sqlx.DB, filters PostFilters) ([]Post, Pagination, error) {
	page, limit := clampWindow(filters.Page, filters.Limit)
	offset := (page - 1) * limit

	where := visibleOnly
	args := []interface{}{}

	if filters.Type != "" {
		where += " AND c.type = ?"
		args = append(args, filters.Type)
	}
	if filters.Featured {
		where += " AND c.is_featured = 1"
	}
	if filters.CategorySlug != "" {
		where += " AND cat.slug = ?"
		args = append(args, filters.CategorySlug)
	}
	if filters.TagSlug != "" {
		where += ` AND c.id IN (
			SELECT ct.content_id FROM content_tags ct
			JOIN tags t ON t.id = ct.tag_id
			WHERE t.slug = ?)`
		args = append(args, filters.TagSlug)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		where += " AND (c.title LIKE ? OR c.excerpt LIKE ? OR c.slug LIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	sort := filters.Sort
	if !validSortFields[sort] {
		sort = "published_at"
	}
	direction := "DESC"
	if filters.Ascending {
		direction = "ASC"
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) %s WHERE %s`, postJoins, where)
	if err := db.Get(&total, countQuery, args...); err != nil {
		return nil, Pagination{}, err
	}

	listQuery := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY c.%s %s LIMIT ? OFFSET ?`,
		postColumns, postJoins, where, sort, direction)

	posts := []Post{}
	if err := db.Select(&posts, listQuery, append(args, limit, offset)...); err != nil {
		return nil, Pagination{}, err
	}

	if err := attachTags(db, posts); err != nil {
		return nil, Pagination{}, err
	}

	pagination := Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
	return posts, pagination, nil
}

// FindPostBySlug returns one published, public post or nil when absent.
func FindPostBySlug(db *sqlx.DB, slug string) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE %s AND c.slug = ?`, postColumns, postJoins, visibleOnly)

	var post Post
	err := db.Get(&post, query, slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	posts := []Post{post}
	if err := attachTags(db, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// FindSeoByContentID returns the SEO metadata for a post, nil when
// absent.
func FindSeoByContentID(db *sqlx.DB, contentID string) (*content.SeoMeta, error) {
	return content.FindSeoByContentID(db, contentID)
}

// FindRelatedPosts returns the latest published posts of the same type,
// excluding the post itself.
func FindRelatedPosts(db *sqlx.DB, postType, excludeID string, limit int) ([]RelatedPost, error) {
	if limit < 1 {
		limit = 5
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.title, c.slug, c.excerpt, c.thumbnail_url, c.published_at,
		       p.display_name AS author_name
		%s
		WHERE %s AND c.type = ? AND c.id != ?
		ORDER BY c.published_at DESC
		LIMIT ?`, postJoins, visibleOnly)

	posts := []RelatedPost{}
	if err := db.Select(&posts, query, postType, excludeID, limit); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListCategories returns all categories with published post counts,
// ordered by name.
func ListCategories(db *sqlx.DB) ([]CategorySummary, error) {
	query := `
		SELECT cat.id, cat.name, cat.slug, cat.description,
		       (SELECT COUNT(*) FROM contents c
		        WHERE c.category_id = cat.id AND ` + visibleOnly + `) AS post_count
		FROM categories cat
		ORDER BY cat.name ASC`

	items := []CategorySummary{}
	if err := db.Select(&items, query); err != nil {
		return nil, err
	}
	return items, nil
}

// ListTags returns all tags with published post counts, ordered by
// name.
func ListTags(db *sqlx.DB) ([]TagSummary, error) {
	query := `
		SELECT t.id, t.name, t.slug,
		       (SELECT COUNT(*) FROM content_tags ct
		        JOIN contents c ON c.id = ct.content_id
		        WHERE ct.tag_id = t.id AND ` + visibleOnly + `) AS post_count
		FROM tags t
		ORDER BY t.name ASC`

	items := []TagSummary{}
	if err := db.Select(&items, query); err != nil {
		return nil, err
	}
	return items, nil
}
