package settings

import (
	"encoding/json"
	"time"

	"opendraft/pkg/logger"

	"github.com/jmoiron/sqlx"
)

type settingRow struct {
	Key   string `db:"key"`
	Value []byte `db:"value"`
}

// settingKeys is the stable write order of the known keys.
var settingKeys = []string{
	"site_name",
	"site_description",
	"site_logo",
	"site_favicon",
	"site_url",
	"posts_per_page",
	"comments_enabled",
	"comments_moderation",
	"social_twitter",
	"social_facebook",
	"social_instagram",
	"social_github",
}

func toValues(s SiteSettings) map[string]interface{} {
	return map[string]interface{}{
		"site_name":           s.SiteName,
		"site_description":    s.SiteDescription,
		"site_logo":           s.SiteLogo,
		"site_favicon":        s.SiteFavicon,
		"site_url":            s.SiteURL,
		"posts_per_page":      s.PostsPerPage,
		"comments_enabled":    s.CommentsEnabled,
		"comments_moderation": s.CommentsModeration,
		"social_twitter":      s.SocialTwitter,
		"social_facebook":     s.SocialFacebook,
		"social_instagram":    s.SocialInstagram,
		"social_github":       s.SocialGithub,
	}
}

func applyRow(s *SiteSettings, key string, raw []byte) {
	var target interface{}
	switch key {
	case "site_name":
		target = &s.SiteName
	case "site_description":
		target = &s.SiteDescription
	case "site_logo":
		target = &s.SiteLogo
	case "site_favicon":
		target = &s.SiteFavicon
	case "site_url":
		target = &s.SiteURL
	case "posts_per_page":
		target = &s.PostsPerPage
	case "comments_enabled":
		target = &s.CommentsEnabled
	case "comments_moderation":
		target = &s.CommentsModeration
	case "social_twitter":
		target = &s.SocialTwitter
	case "social_facebook":
		target = &s.SocialFacebook
	case "social_instagram":
		target = &s.SocialInstagram
	case "social_github":
		target = &s.SocialGithub
	default:
		return
	}

	if err := json.Unmarshal(raw, target); err != nil {
		// A malformed value falls back to the default for that key.
		logger.Get().WithComponent("settings").Warn("Skipping malformed setting value",
			logger.String("key", key), logger.Err(err))
	}
}

// GetSettings returns the stored settings merged over the defaults.
// Unknown keys in the table are ignored.
func GetSettings(db *sqlx.DB) (SiteSettings, error) {
	query, args, err := sqlx.In("SELECT `key`, `value` FROM settings WHERE `key` IN (?)", settingKeys)
	if err != nil {
		return DefaultSettings(), err
	}

	rows := []settingRow{}
	if err := db.Select(&rows, query, args...); err != nil {
		return DefaultSettings(), err
	}

	merged := DefaultSettings()
	for _, row := range rows {
		applyRow(&merged, row.Key, row.Value)
	}
	return merged, nil
}

// UpdateSettings upserts every key independently and returns the keys
// that failed. A partial failure leaves the successful keys committed.
func UpdateSettings(db *sqlx.DB, s SiteSettings, now time.Time) []string {
	log := logger.Get().WithComponent("settings")
	values := toValues(s)

	failed := []string{}
	for _, key := range settingKeys {
		raw, err := json.Marshal(values[key])
		if err != nil {
			failed = append(failed, key)
			continue
		}

		_, err = db.Exec(
			"INSERT INTO settings (`key`, `value`, updated_at) VALUES (?, ?, ?) "+
				"ON DUPLICATE KEY UPDATE `value` = VALUES(`value`), updated_at = VALUES(updated_at)",
			key, raw, now,
		)
		if err != nil {
			log.Error("Failed to update setting", err, logger.String("key", key))
			failed = append(failed, key)
		}
	}
	return failed
}
