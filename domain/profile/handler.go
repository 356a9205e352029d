package profile

import (
	"net/http"
	"strings"
	"time"

	"opendraft/config"
	"opendraft/pkg/apperrors"
	"opendraft/pkg/logger"

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

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(c echo.Context) error {
	userID := c.Get("user_id").(string)

	p, err := FindProfileByID(config.DB, userID)
	if err != nil {
		logger.Get().WithComponent("profile").Error("Failed to fetch profile", err, logger.UserID(userID))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	if p == nil {
		return apperrors.RespondWithError(c, apperrors.NewNotFound(
			apperrors.ErrCodeProfileNotFound,
			"Profile not found.",
		))
	}

	return c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler rewrites the authenticated user's display name,
// bio and avatar.
func UpdateProfileHandler(c echo.Context) error {
	userID := c.Get("user_id").(string)

	req := new(UpdateProfileRequest)
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload")
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		return fail(c, http.StatusBadRequest, "Name is required")
	}

	err := UpdateProfile(config.DB, userID, displayName, nullIfEmpty(req.Bio), nullIfEmpty(req.AvatarURL), time.Now())
	if err != nil {
		logger.Get().WithComponent("profile").Error("Failed to update profile", err, logger.UserID(userID))
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, FormState{Success: true, Message: "Profile updated successfully"})
}
