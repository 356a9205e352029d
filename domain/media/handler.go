package media

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"opendraft/config"
	"opendraft/pkg/apperrors"
	"opendraft/pkg/logger"
	"opendraft/pkg/storage"

	"github.com/labstack/echo/v4"
)

// blobStore is the object store backing the media library. It is set
// once at startup.
var blobStore *storage.Store

// InitStorage wires the object store used by the upload handlers.
func InitStorage(s *storage.Store) {
	blobStore = s
}

const randomSuffixChars = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randomSuffixChars[rand.Intn(len(randomSuffixChars))]
	}
	return string(b)
}

// objectName builds the stored filename from a millisecond timestamp
// and a random suffix, keeping the original extension when one exists.
func objectName(originalName string, now time.Time) string {
	name := fmt.Sprintf("%d-%s", now.UnixMilli(), randomSuffix(6))
	if idx := strings.LastIndex(originalName, "."); idx >= 0 && idx < len(originalName)-1 {
		name += "." + originalName[idx+1:]
	}
	return name
}

func nullIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

type mediaResponse struct {
	Error *string    `json:"error"`
	Media *MediaItem `json:"media"`
}

func failUpload(c echo.Context, status int, msg string) error {
	return c.JSON(status, mediaResponse{Error: &msg})
}

// ListMediaHandler returns the filtered, paginated media library.
func ListMediaHandler(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filters := MediaFilters{
		Search: c.QueryParam("search"),
		Type:   c.QueryParam("type"),
		Page:   page,
		Limit:  limit,
	}

	result, err := FindMediaWithFilters(config.DB, filters)
	if err != nil {
		logger.Get().WithComponent("media").Error("Failed to list media", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, result)
}

// UploadMediaHandler accepts a multipart image upload, stores the blob,
// then records it. If the record insert fails the blob is removed again.
func UploadMediaHandler(c echo.Context) error {
	log := logger.Get().WithComponent("media")
	userID := c.Get("user_id").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return failUpload(c, http.StatusBadRequest, "No file provided")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !AllowedMimeTypes[contentType] {
		return failUpload(c, http.StatusBadRequest, "Invalid file type. Only images are allowed.")
	}
	if fileHeader.Size > MaxUploadSize {
		return failUpload(c, http.StatusBadRequest, "File too large. Maximum size is 10MB.")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return failUpload(c, http.StatusBadRequest, "No file provided")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		log.Error("Failed to read upload", err)
		return failUpload(c, http.StatusInternalServerError, "Failed to read file")
	}

	filename := objectName(fileHeader.Filename, time.Now())
	storagePath := fmt.Sprintf("uploads/%s/%s", userID, filename)

	url, err := blobStore.Upload(c.Request().Context(), storagePath, contentType, content)
	if err != nil {
		log.Error("Failed to store media blob", err, logger.StoragePath(storagePath))
		return failUpload(c, http.StatusInternalServerError, err.Error())
	}

	item, err := InsertMedia(config.DB, MediaItem{
		Filename:     filename,
		OriginalName: fileHeader.Filename,
		MimeType:     contentType,
		Size:         fileHeader.Size,
		URL:          url,
		StoragePath:  storagePath,
		UploadedBy:   &userID,
	})
	if err != nil {
		log.Error("Failed to record media", err, logger.StoragePath(storagePath))
		// The blob is orphaned otherwise.
		if rmErr := blobStore.Remove(c.Request().Context(), storagePath); rmErr != nil {
			log.Warn("Failed to remove orphaned blob", logger.Err(rmErr), logger.StoragePath(storagePath))
		}
		return failUpload(c, http.StatusInternalServerError, err.Error())
	}

	log.Info("Media uploaded", logger.MediaID(item.ID), logger.StoragePath(storagePath))

	return c.JSON(http.StatusOK, mediaResponse{Media: item})
}

// UpdateMediaHandler rewrites a media item's alt text and caption.
func UpdateMediaHandler(c echo.Context) error {
	id := c.Param("id")

	req := new(UpdateMediaRequest)
	if err := c.Bind(req); err != nil {
		return failUpload(c, http.StatusBadRequest, "Invalid request payload")
	}

	if err := UpdateMediaMeta(config.DB, id, nullIfEmpty(req.AltText), nullIfEmpty(req.Caption)); err != nil {
		logger.Get().WithComponent("media").Error("Failed to update media", err, logger.MediaID(id))
		return failUpload(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, mediaResponse{})
}

// DownloadURLHandler issues a short-lived pre-signed URL for a media
// blob, for buckets that are not publicly readable.
func DownloadURLHandler(c echo.Context) error {
	id := c.Param("id")

	item, err := FindMediaByID(config.DB, id)
	if err != nil {
		logger.Get().WithComponent("media").Error("Failed to fetch media", err, logger.MediaID(id))
		return failUpload(c, http.StatusInternalServerError, err.Error())
	}
	if item == nil {
		return failUpload(c, http.StatusNotFound, "Media not found")
	}

	url, err := blobStore.PresignGet(c.Request().Context(), item.StoragePath, 15*time.Minute)
	if err != nil {
		logger.Get().WithComponent("media").Error("Failed to presign media URL", err, logger.MediaID(id))
		return failUpload(c, http.StatusInternalServerError, "Failed to generate download URL")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"url": url})
}

// DeleteMediaHandler removes a media item. The blob is removed best
// effort; a storage failure does not keep the row alive.
func DeleteMediaHandler(c echo.Context) error {
	log := logger.Get().WithComponent("media")
	id := c.Param("id")

	item, err := FindMediaByID(config.DB, id)
	if err != nil {
		log.Error("Failed to fetch media", err, logger.MediaID(id))
		return failUpload(c, http.StatusInternalServerError, err.Error())
	}
	if item == nil {
		return failUpload(c, http.StatusNotFound, "Media not found")
	}

	if err := blobStore.Remove(c.Request().Context(), item.StoragePath); err != nil {
		log.Warn("Failed to remove media blob", logger.Err(err), logger.StoragePath(item.StoragePath))
	}

	if err := DeleteMediaByID(config.DB, id); err != nil {
		log.Error("Failed to delete media", err, logger.MediaID(id))
		return failUpload(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, mediaResponse{})
}

// BulkDeleteMediaHandler removes every media item in the id list, blobs
// first, then rows.
func BulkDeleteMediaHandler(c echo.Context) error {
	log := logger.Get().WithComponent("media")

	req := new(BulkIDsRequest)
	if err := c.Bind(req); err != nil {
		return failUpload(c, http.StatusBadRequest, "Invalid request payload")
	}

	paths, err := FindStoragePathsByIDs(config.DB, req.IDs)
	if err != nil {
		log.Error("Failed to resolve storage paths", err)
		return failUpload(c, http.StatusInternalServerError, err.Error())
	}
	if len(paths) > 0 {
		if err := blobStore.RemoveMany(c.Request().Context(), paths); err != nil {
			log.Warn("Failed to remove media blobs", logger.Err(err), logger.Count(len(paths)))
		}
	}

	deleted, err := BulkDeleteMediaByIDs(config.DB, req.IDs)
	if err != nil {
		log.Error("Failed to bulk delete media", err)
		return failUpload(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"error":   nil,
		"deleted": deleted,
	})
}
