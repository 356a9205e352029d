package content

import (
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// UpsertSeoMeta writes the SEO record for one content item, keyed on
// content_id. Blank fields are stored as NULL.
func UpsertSeoMeta(db *sqlx.DB, contentID string, seo SeoInput, now time.Time) error {
	metaTitle := nullIfEmpty(strings.TrimSpace(seo.MetaTitle))
	metaDescription := nullIfEmpty(stripMarkup(strings.TrimSpace(seo.MetaDescription)))
	ogImageURL := nullIfEmpty(seo.OgImageURL)
	canonicalURL := nullIfEmpty(strings.TrimSpace(seo.CanonicalURL))

	_, err := db.Exec(`
		INSERT INTO seo_meta (content_id, meta_title, meta_description, og_image_url, canonical_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			meta_title = VALUES(meta_title),
			meta_description = VALUES(meta_description),
			og_image_url = VALUES(og_image_url),
			canonical_url = VALUES(canonical_url),
			updated_at = VALUES(updated_at)`,
		contentID, metaTitle, metaDescription, ogImageURL, canonicalURL, now)
	return err
}

// FindSeoByContentID fetches the SEO record for one content item; a miss
// returns (nil, nil).
func FindSeoByContentID(db *sqlx.DB, contentID string) (*SeoMeta, error) {
	var seo SeoMeta
	err := db.Get(&seo, `SELECT * FROM seo_meta WHERE content_id = ?`, contentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seo, nil
}
