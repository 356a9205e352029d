package public

import (
	"net/http"
	"strconv"
	"strings"

	"opendraft/config"
	"opendraft/domain/category"
	"opendraft/domain/content"
	"opendraft/domain/tag"
	"opendraft/pkg/logger"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

func errJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

func windowParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

// ListPostsHandler serves GET /api/v1/posts.
func ListPostsHandler(c echo.Context) error {
	page, limit := windowParams(c)

	filters := PostFilters{
		Type:         c.QueryParam("type"),
		CategorySlug: c.QueryParam("category"),
		TagSlug:      c.QueryParam("tag"),
		Featured:     c.QueryParam("featured") == "true",
		Sort:         c.QueryParam("sort"),
		Ascending:    c.QueryParam("order") == "asc",
		Page:         page,
		Limit:        limit,
	}

	posts, pagination, err := FindPosts(config.DB, filters)
	if err != nil {
		logger.Get().WithComponent("public").Error("Failed to fetch posts", err)
		return errJSON(c, http.StatusInternalServerError, "Failed to fetch posts")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":       posts,
		"pagination": pagination,
	})
}

// GetPostHandler serves GET /api/v1/posts/:slug with SEO metadata and
// related posts.
func GetPostHandler(c echo.Context) error {
	log := logger.Get().WithComponent("public")
	slug := c.Param("slug")

	post, err := FindPostBySlug(config.DB, slug)
	if err != nil {
		log.Error("Failed to fetch post", err, logger.Slug(slug))
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if post == nil {
		return errJSON(c, http.StatusNotFound, "Post not found")
	}

	var (
		seo     *content.SeoMeta
		related []RelatedPost
	)

	// Extras are best effort; the post still renders without them.
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		seo, err = FindSeoByContentID(config.DB, post.ID)
		return err
	})
	g.Go(func() error {
		var err error
		related, err = FindRelatedPosts(config.DB, post.Type, post.ID, 5)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn("Failed to load post extras", logger.Err(err), logger.Slug(slug))
	}
	if related == nil {
		related = []RelatedPost{}
	}

	detail := struct {
		Post
		SeoMeta      *content.SeoMeta `json:"seo_meta"`
		RelatedPosts []RelatedPost    `json:"related_posts"`
	}{Post: *post, SeoMeta: seo, RelatedPosts: related}

	return c.JSON(http.StatusOK, map[string]interface{}{"data": detail})
}

// ListCategoriesHandler serves GET /api/v1/categories.
func ListCategoriesHandler(c echo.Context) error {
	items, err := ListCategories(config.DB)
	if err != nil {
		logger.Get().WithComponent("public").Error("Failed to fetch categories", err)
		return errJSON(c, http.StatusInternalServerError, "Failed to fetch categories")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

// ListTagsHandler serves GET /api/v1/tags.
func ListTagsHandler(c echo.Context) error {
	items, err := ListTags(config.DB)
	if err != nil {
		logger.Get().WithComponent("public").Error("Failed to fetch tags", err)
		return errJSON(c, http.StatusInternalServerError, "Failed to fetch tags")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

// CategoryPostsHandler serves GET /api/v1/categories/:slug/posts.
func CategoryPostsHandler(c echo.Context) error {
	log := logger.Get().WithComponent("public")
	slug := c.Param("slug")

	cat, err := category.FindCategoryBySlug(config.DB, slug)
	if err != nil {
		log.Error("Failed to fetch category", err, logger.Slug(slug))
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if cat == nil {
		return errJSON(c, http.StatusNotFound, "Category not found")
	}

	page, limit := windowParams(c)
	posts, pagination, err := FindPosts(config.DB, PostFilters{
		CategorySlug: slug,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		log.Error("Failed to fetch posts", err, logger.Slug(slug))
		return errJSON(c, http.StatusInternalServerError, "Failed to fetch posts")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": posts,
		"category": map[string]interface{}{
			"id":          cat.ID,
			"name":        cat.Name,
			"slug":        cat.Slug,
			"description": cat.Description,
		},
		"pagination": pagination,
	})
}

// TagPostsHandler serves GET /api/v1/tags/:slug/posts.
func TagPostsHandler(c echo.Context) error {
	log := logger.Get().WithComponent("public")
	slug := c.Param("slug")

	t, err := tag.FindTagBySlug(config.DB, slug)
	if err != nil {
		log.Error("Failed to fetch tag", err, logger.Slug(slug))
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if t == nil {
		return errJSON(c, http.StatusNotFound, "Tag not found")
	}

	page, limit := windowParams(c)
	posts, pagination, err := FindPosts(config.DB, PostFilters{
		TagSlug: slug,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		log.Error("Failed to fetch posts", err, logger.Slug(slug))
		return errJSON(c, http.StatusInternalServerError, "Failed to fetch posts")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": posts,
		"tag": map[string]interface{}{
			"id":   t.ID,
			"name": t.Name,
			"slug": t.Slug,
		},
		"pagination": pagination,
	})
}

// SearchHandler serves GET /api/v1/search.
func SearchHandler(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return errJSON(c, http.StatusBadRequest, "Search query is required")
	}

	page, limit := windowParams(c)
	posts, pagination, err := FindPosts(config.DB, PostFilters{
		Search: q,
		Type:   c.QueryParam("type"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		logger.Get().WithComponent("public").Error("Failed to search content", err)
		return errJSON(c, http.StatusInternalServerError, "Failed to search content")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":       posts,
		"query":      q,
		"pagination": pagination,
	})
}
