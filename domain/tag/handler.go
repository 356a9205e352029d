package tag

import (
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

// ListTagsHandler returns all tags with usage counts.
func ListTagsHandler(c echo.Context) error {
	items, err := ListTags(config.DB)
	if err != nil {
		logger.Get().WithComponent("tag").Error("Failed to list tags", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, items)
}

// CreateTagHandler creates a tag and returns the stored row, so the
// editor can attach new tags without a reload.
func CreateTagHandler(c echo.Context) error {
	log := logger.Get().WithComponent("tag")

	req := new(SaveTagRequest)
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fail(c, http.StatusBadRequest, "Name is required")
	}

	slug := utils.GenerateSlug(name, req.Slug)

	t, err := CreateTag(config.DB, name, slug, time.Now())
	if err != nil {
		if err == ErrDuplicateSlug {
			return fail(c, http.StatusConflict, err.Error())
		}
		log.Error("Failed to create tag", err, logger.Slug(slug))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	log.Info("Tag created", logger.TagID(t.ID), logger.Slug(slug))

	return c.JSON(http.StatusOK, FormState{Success: true, Message: "Tag created successfully", Tag: t})
}

// UpdateTagHandler rewrites a tag.
func UpdateTagHandler(c echo.Context) error {
	log := logger.Get().WithComponent("tag")
	id := c.Param("id")

	req := new(SaveTagRequest)
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fail(c, http.StatusBadRequest, "Name is required")
	}

	slug := utils.GenerateSlug(name, req.Slug)

	if err := UpdateTag(config.DB, id, name, slug); err != nil {
		if err == ErrDuplicateSlug {
			return fail(c, http.StatusConflict, err.Error())
		}
		log.Error("Failed to update tag", err, logger.TagID(id))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	log.Info("Tag updated", logger.TagID(id), logger.Slug(slug))

	return c.JSON(http.StatusOK, FormState{Success: true, Message: "Tag updated successfully"})
}

// DeleteTagHandler removes a tag and its content associations.
func DeleteTagHandler(c echo.Context) error {
	id := c.Param("id")

	if err := DeleteTag(config.DB, id); err != nil {
		logger.Get().WithComponent("tag").Error("Failed to delete tag", err, logger.TagID(id))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, FormState{Success: true})
}
