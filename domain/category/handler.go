package category

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"opendraft/config"
	"opendraft/pkg/apperrors"
	"opendraft/pkg/logger"
	"opendraft/utils"

	"github.com/labstack/echo/v4"
)

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, FormState{Error: &msg, Success: false})
}

func nullIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ListCategoriesHandler returns all categories with parent names and
// content counts.
func ListCategoriesHandler(c echo.Context) error {
	items, err := ListCategories(config.DB)
	if err != nil {
		logger.Get().WithComponent("category").Error("Failed to list categories", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, items)
}

// CreateCategoryHandler creates a category. The slug is derived from the
// name unless overridden.
func CreateCategoryHandler(c echo.Context) error {
	log := logger.Get().WithComponent("category")

	req := new(SaveCategoryRequest)
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fail(c, http.StatusBadRequest, "Name is required")
	}

	slug := utils.GenerateSlug(name, req.Slug)

	id, err := CreateCategory(config.DB, name, slug, nullIfEmpty(req.Description), nullIfEmpty(req.ParentID), time.Now())
	if err != nil {
		if err == ErrDuplicateSlug {
			return fail(c, http.StatusConflict, err.Error())
		}
		log.Error("Failed to create category", err, logger.Slug(slug))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	log.Info("Category created", logger.CategoryID(id), logger.Slug(slug))

	return c.JSON(http.StatusOK, FormState{Success: true, Message: "Category created successfully"})
}

// UpdateCategoryHandler rewrites a category. A category may not be its
// own parent.
func UpdateCategoryHandler(c echo.Context) error {
	log := logger.Get().WithComponent("category")
	id := c.Param("id")

	req := new(SaveCategoryRequest)
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fail(c, http.StatusBadRequest, "Name is required")
	}
	if req.ParentID == id {
		return fail(c, http.StatusBadRequest, "Category cannot be its own parent")
	}

	slug := utils.GenerateSlug(name, req.Slug)

	err := UpdateCategory(config.DB, id, name, slug, nullIfEmpty(req.Description), nullIfEmpty(req.ParentID), time.Now())
	if err != nil {
		if err == ErrDuplicateSlug {
			return fail(c, http.StatusConflict, err.Error())
		}
		log.Error("Failed to update category", err, logger.CategoryID(id))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	log.Info("Category updated", logger.CategoryID(id), logger.Slug(slug))

	return c.JSON(http.StatusOK, FormState{Success: true, Message: "Category updated successfully"})
}

// DeleteCategoryHandler removes a category unless content or
// sub-categories still reference it.
func DeleteCategoryHandler(c echo.Context) error {
	id := c.Param("id")

	if err := DeleteCategory(config.DB, id); err != nil {
		var contentErr *HasContentError
		var childErr *HasChildrenError
		if errors.As(err, &contentErr) || errors.As(err, &childErr) {
			return fail(c, http.StatusConflict, err.Error())
		}
		logger.Get().WithComponent("category").Error("Failed to delete category", err, logger.CategoryID(id))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, FormState{Success: true})
}
