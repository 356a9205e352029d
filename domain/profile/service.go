package profile

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

const profileColumns = `id, email, display_name, role, bio, avatar_url, password_hash, created_at, updated_at`

// FindProfileByID returns one profile or nil when absent.
func FindProfileByID(db *sqlx.DB, id string) (*Profile, error) {
	var p Profile
	err := db.Get(&p, `SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProfileByEmail returns one profile or nil when absent.
func FindProfileByEmail(db *sqlx.DB, email string) (*Profile, error) {
	var p Profile
	err := db.Get(&p, `SELECT `+profileColumns+` FROM profiles WHERE email = ?`, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile rewrites the editable fields of a profile.
func UpdateProfile(db *sqlx.DB, id, displayName string, bio, avatarURL *string, now time.Time) error {
	query := `
		UPDATE profiles
		SET display_name = ?, bio = ?, avatar_url = ?, updated_at = ?
		WHERE id = ?`

	_, err := db.Exec(query, displayName, bio, avatarURL, now, id)
	return err
}
