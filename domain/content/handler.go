package content

import (
	"net/http"
	"strconv"
	"time"

	"opendraft/config"
	"opendraft/pkg/apperrors"
	"opendraft/pkg/logger"

	"github.com/labstack/echo/v4"
)

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, FormState{Error: &msg, Success: false})
}

// SaveContentHandler runs the full save pipeline: parse the raw draft,
// validate, assemble the record, upsert it, then sync tags and upsert SEO
// metadata. The three writes are independent round trips; a failure in a
// later step leaves the earlier writes committed.
func SaveContentHandler(c echo.Context) error {
	log := logger.Get().WithComponent("content")
	userID := c.Get("user_id").(string)
	log = log.WithUserID(userID)

	req := new(SaveContentRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidInput,
			"Invalid request payload.",
		))
	}

	// On PUT /contents/:id the path decides which row is updated; the
	// body id must not redirect the write or turn it into a create.
	if id := c.Param("id"); id != "" {
		req.ID = id
	}

	input := normalizeRequest(req)

	if !ValidTypes[input.Type] || !ValidStatuses[input.Status] || !ValidVisibilities[input.Visibility] {
		return fail(c, http.StatusBadRequest, "Invalid content type, status, or visibility")
	}

	body, err := ParseBody(input.BodyJSON)
	if err != nil {
		return fail(c, http.StatusBadRequest, ErrInvalidBody.Error())
	}

	now := time.Now()

	result := ValidateContent(input, BodyIsEmpty(body), now)
	if !result.Valid {
		return fail(c, http.StatusBadRequest, result.Joined())
	}

	data := BuildContentData(input, body, userID, now)

	contentID := input.ID
	if contentID != "" {
		err = UpdateContent(config.DB, contentID, data)
	} else {
		contentID, err = CreateContent(config.DB, data)
	}
	if err != nil {
		if err == ErrDuplicateSlug {
			return fail(c, http.StatusConflict, ErrDuplicateSlug.Error())
		}
		log.Error("Failed to save content", err, logger.Slug(data.Slug))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	log = log.WithFields(logger.ContentID(contentID))

	if err := SyncContentTags(config.DB, contentID, input.TagIDs); err != nil {
		// Accepted inconsistency: the content row is already committed.
		log.Warn("Failed to sync content tags", logger.Err(err))
	}

	if err := UpsertSeoMeta(config.DB, contentID, input.Seo, now); err != nil {
		// SEO metadata is non-critical; the save still reports success.
		log.Warn("Failed to upsert SEO metadata", logger.Err(err))
	}

	log.Info("Content saved", logger.Slug(data.Slug), logger.ContentStatus(data.Status))

	return c.JSON(http.StatusOK, FormState{Success: true, ContentID: contentID})
}

// normalizeRequest applies the draft defaults: type post, status draft,
// public visibility, comments allowed.
func normalizeRequest(req *SaveContentRequest) ContentInput {
	input := ContentInput{
		ID:           req.ID,
		Title:        req.Title,
		Slug:         req.Slug,
		BodyJSON:     req.Body,
		Type:         req.Type,
		Status:       req.Status,
		Visibility:   req.Visibility,
		Excerpt:      req.Excerpt,
		CategoryID:   req.CategoryID,
		ThumbnailURL: req.ThumbnailURL,
		IsFeatured:   req.IsFeatured,
		ScheduledAt:  req.ScheduledAt,
		TagIDs:       req.TagIDs,
		Seo:          req.Seo,
	}

	if input.Type == "" {
		input.Type = TypePost
	}
	if input.Status == "" {
		input.Status = StatusDraft
	}
	if input.Visibility == "" {
		input.Visibility = VisibilityPublic
	}

	input.AllowComments = true
	if req.AllowComments != nil {
		input.AllowComments = *req.AllowComments
	}

	return input
}

// ListContentsHandler returns the filtered, paginated admin content list.
func ListContentsHandler(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filters := ContentFilters{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
		Type:   c.QueryParam("type"),
		Page:   page,
		Limit:  limit,
	}

	result, err := FindContentsWithFilters(config.DB, filters)
	if err != nil {
		logger.Get().WithComponent("content").Error("Failed to list contents", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, result)
}

// GetContentHandler returns the full editable view of one content item.
func GetContentHandler(c echo.Context) error {
	id := c.Param("id")

	full, err := GetFullContent(config.DB, id)
	if err != nil {
		logger.Get().WithComponent("content").Error("Failed to fetch content", err, logger.ContentID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	if full == nil {
		return apperrors.RespondWithError(c, apperrors.NewNotFound(
			apperrors.ErrCodeContentNotFound,
			"Content not found.",
		))
	}

	return c.JSON(http.StatusOK, full)
}

// DeleteContentHandler removes one content item.
func DeleteContentHandler(c echo.Context) error {
	id := c.Param("id")

	if err := DeleteContentByID(config.DB, id); err != nil {
		logger.Get().WithComponent("content").Error("Failed to delete content", err, logger.ContentID(id))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, FormState{Success: true})
}

// BulkDeleteContentsHandler removes every content item in the id list.
func BulkDeleteContentsHandler(c echo.Context) error {
	req := new(BulkIDsRequest)
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload")
	}

	deleted, err := BulkDeleteContentsByIDs(config.DB, req.IDs)
	if err != nil {
		logger.Get().WithComponent("content").Error("Failed to bulk delete contents", err)
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"error":   nil,
		"success": true,
		"deleted": deleted,
	})
}

// BulkUpdateStatusHandler sets the status on every content item in the id
// list. Publishing stamps published_at across the batch.
func BulkUpdateStatusHandler(c echo.Context) error {
	req := new(BulkStatusRequest)
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if !ValidStatuses[req.Status] {
		return fail(c, http.StatusBadRequest, "Invalid status")
	}

	updated, err := BulkUpdateContentStatus(config.DB, req.IDs, req.Status, time.Now())
	if err != nil {
		logger.Get().WithComponent("content").Error("Failed to bulk update status", err)
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"error":   nil,
		"success": true,
		"updated": updated,
	})
}

// UpdateStatusHandler is the quick-edit affordance for a single item's
// status.
func UpdateStatusHandler(c echo.Context) error {
	id := c.Param("id")

	req := new(QuickEditRequest)
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if !ValidStatuses[req.Status] {
		return fail(c, http.StatusBadRequest, "Invalid status")
	}

	if err := UpdateContentStatusByID(config.DB, id, req.Status, time.Now()); err != nil {
		logger.Get().WithComponent("content").Error("Failed to update status", err, logger.ContentID(id))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, FormState{Success: true})
}

// UpdateVisibilityHandler is the quick-edit affordance for a single
// item's visibility.
func UpdateVisibilityHandler(c echo.Context) error {
	id := c.Param("id")

	req := new(QuickEditRequest)
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if !ValidVisibilities[req.Visibility] {
		return fail(c, http.StatusBadRequest, "Invalid visibility")
	}

	if err := UpdateContentVisibilityByID(config.DB, id, req.Visibility); err != nil {
		logger.Get().WithComponent("content").Error("Failed to update visibility", err, logger.ContentID(id))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, FormState{Success: true})
}
