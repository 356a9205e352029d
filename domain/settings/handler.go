package settings

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"opendraft/config"
	"opendraft/pkg/logger"

	"github.com/labstack/echo/v4"
)

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, FormState{Error: &msg, Success: false})
}

// GetSettingsHandler returns the site settings merged over defaults.
// Read failures fall back to the defaults rather than erroring out.
func GetSettingsHandler(c echo.Context) error {
	s, err := GetSettings(config.DB)
	if err != nil {
		logger.Get().WithComponent("settings").Error("Failed to load settings", err)
	}
	return c.JSON(http.StatusOK, s)
}

// UpdateSettingsHandler saves the full settings form, one upsert per
// key.
func UpdateSettingsHandler(c echo.Context) error {
	req := new(SiteSettings)
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request payload")
	}

	if strings.TrimSpace(req.SiteName) == "" {
		return fail(c, http.StatusBadRequest, "Site name is required")
	}
	if req.PostsPerPage < 1 {
		req.PostsPerPage = 10
	}

	failed := UpdateSettings(config.DB, *req, time.Now())
	if len(failed) > 0 {
		return fail(c, http.StatusInternalServerError,
			fmt.Sprintf("Failed to update: %s", strings.Join(failed, ", ")))
	}

	return c.JSON(http.StatusOK, FormState{Success: true, Message: "Settings saved successfully"})
}
