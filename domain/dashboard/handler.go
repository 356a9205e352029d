package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"opendraft/config"
	"opendraft/pkg/apperrors"
	"opendraft/pkg/logger"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// DashboardStats summarizes the content pipeline for the overview page.
type DashboardStats struct {
	TotalPosts int `json:"total_posts"`
	Published  int `json:"published"`
	Drafts     int `json:"drafts"`
	Scheduled  int `json:"scheduled"`
	Categories int `json:"categories"`
	Tags       int `json:"tags"`
}

// RecentContent is one row of the recently edited list.
type RecentContent struct {
	ID         string    `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Status     string    `db:"status" json:"status"`
	Type       string    `db:"type" json:"type"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
	AuthorName *string   `db:"author_name" json:"author_name"`
}

// GetStats gathers the six overview counts in parallel.
func GetStats(db *sqlx.DB) (DashboardStats, error) {
	var stats DashboardStats

	count := func(dest *int, query string, args ...interface{}) func() error {
		return func() error {
			return db.Get(dest, query, args...)
		}
	}

	g := new(errgroup.Group)
	g.Go(count(&stats.TotalPosts, `SELECT COUNT(*) FROM contents`))
	g.Go(count(&stats.Published, `SELECT COUNT(*) FROM contents WHERE status = ?`, "published"))
	g.Go(count(&stats.Drafts, `SELECT COUNT(*) FROM contents WHERE status = ?`, "draft"))
	g.Go(count(&stats.Scheduled, `SELECT COUNT(*) FROM contents WHERE status = ?`, "scheduled"))
	g.Go(count(&stats.Categories, `SELECT COUNT(*) FROM categories`))
	g.Go(count(&stats.Tags, `SELECT COUNT(*) FROM tags`))

	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

// GetRecentContent returns the most recently edited content items with
// their author names.
func GetRecentContent(db *sqlx.DB, limit int) ([]RecentContent, error) {
	if limit < 1 {
		limit = 5
	}

	query := `
		SELECT c.id, c.title, c.status, c.type, c.updated_at,
		       p.display_name AS author_name
		FROM contents c
		LEFT JOIN profiles p ON p.id = c.author_id
		ORDER BY c.updated_at DESC
		LIMIT ?`

	items := []RecentContent{}
	if err := db.Select(&items, query, limit); err != nil {
		return nil, err
	}
	return items, nil
}

// GetDashboardHandler returns the overview stats and recent edits in one
// response.
func GetDashboardHandler(c echo.Context) error {
	log := logger.Get().WithComponent("dashboard")

	limit, _ := strconv.Atoi(c.QueryParam("recent_limit"))

	var (
		stats  DashboardStats
		recent []RecentContent
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		stats, err = GetStats(config.DB)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = GetRecentContent(config.DB, limit)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("Failed to load dashboard", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"stats":          stats,
		"recent_content": recent,
	})
}
