// Package seed loads a starter data set: two profiles, a few taxonomy
// terms, and one published welcome post.
package seed

import (
	"fmt"
	"log"
	"time"

	"opendraft/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Run inserts the starter rows. It is not idempotent; running it twice
// fails on the unique email and slug constraints.
func Run(db *sqlx.DB) error {
	now := time.Now()

	profiles := []struct {
		Email       string
		DisplayName string
		Role        string
		Password    string
	}{
		{Email: "admin@opendraft.local", DisplayName: "Site Admin", Role: "admin", Password: "admin-password"},
		{Email: "editor@opendraft.local", DisplayName: "Staff Editor", Role: "editor", Password: "editor-password"},
	}

	var adminID string
	for _, p := range profiles {
		hashed, err := utils.HashPassword(p.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", p.Email, err)
		}

		id := uuid.NewString()
		if p.Role == "admin" {
			adminID = id
		}

		_, err = db.Exec(
			"INSERT INTO profiles (id, email, display_name, role, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			id, p.Email, p.DisplayName, p.Role, hashed, now, now,
		)
		if err != nil {
			return fmt.Errorf("seed profile %s: %w", p.Email, err)
		}
		log.Printf("Seeded profile: %s", p.Email)
	}

	categories := []struct {
		Name string
		Slug string
	}{
		{Name: "Announcements", Slug: "announcements"},
		{Name: "Tutorials", Slug: "tutorials"},
		{Name: "Engineering", Slug: "engineering"},
	}

	var firstCategoryID string
	for _, cat := range categories {
		id := uuid.NewString()
		if firstCategoryID == "" {
			firstCategoryID = id
		}
		_, err := db.Exec(
			"INSERT INTO categories (id, name, slug, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			id, cat.Name, cat.Slug, now, now,
		)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", cat.Name, err)
		}
		log.Printf("Seeded category: %s", cat.Name)
	}

	tags := []struct {
		Name string
		Slug string
	}{
		{Name: "Go", Slug: "go"},
		{Name: "Release Notes", Slug: "release-notes"},
		{Name: "How To", Slug: "how-to"},
	}

	for _, t := range tags {
		_, err := db.Exec(
			"INSERT INTO tags (id, name, slug, created_at) VALUES (?, ?, ?, ?)",
			uuid.NewString(), t.Name, t.Slug, now,
		)
		if err != nil {
			return fmt.Errorf("seed tag %s: %w", t.Name, err)
		}
		log.Printf("Seeded tag: %s", t.Name)
	}

	body := `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Welcome to OpenDraft."}]}]}`
	_, err := db.Exec(`
		INSERT INTO contents (id, title, slug, body, body_format, type, status, visibility,
		                      excerpt, category_id, is_featured, allow_comments, author_id,
		                      published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, 'tiptap-json', 'post', 'published', 'public', ?, ?, 1, 1, ?, ?, ?, ?)`,
		uuid.NewString(), "Welcome to OpenDraft", "welcome-to-opendraft", body,
		"Your new publishing workspace is ready.", firstCategoryID, adminID, now, now, now,
	)
	if err != nil {
		return fmt.Errorf("seed welcome post: %w", err)
	}
	log.Println("Seeded welcome post")

	return nil
}
