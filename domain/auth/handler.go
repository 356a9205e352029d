package auth

import (
	"net/http"

	"opendraft/config"
	"opendraft/domain/profile"
	"opendraft/pkg/apperrors"
	"opendraft/pkg/logger"
	"opendraft/utils"

	"github.com/labstack/echo/v4"
)

// LoginHandler verifies credentials against the profiles table and
// issues a signed access token.
func LoginHandler(c echo.Context) error {
	log := logger.Get().WithComponent("auth")
	requestID := logger.GetRequestIDFromContext(c)
	log = log.WithRequestID(requestID)

	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		log.Warn("Invalid login request payload", logger.Err(err))
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	p, err := profile.FindProfileByEmail(config.DB, req.Email)
	if err != nil {
		log.Error("Failed to fetch profile", err, logger.String("email", req.Email))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	if p == nil || !utils.CheckPasswordHash(req.Password, p.PasswordHash) {
		log.Warn("Failed login attempt", logger.String("email", req.Email))
		return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
			apperrors.ErrCodeInvalidCredentials,
			"Invalid email or password.",
		))
	}

	token, err := utils.GenerateJWT(p.ID, p.Email, p.Role)
	if err != nil {
		log.Error("Failed to generate access token", err, logger.UserID(p.ID))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeUnexpectedError,
			"Internal server error.",
			err,
		))
	}

	log.Info("User logged in", logger.UserID(p.ID), logger.String("email", p.Email))

	return c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(utils.TokenExpiry.Seconds()),
		User: UserResponse{
			ID:          p.ID,
			Email:       p.Email,
			DisplayName: p.DisplayName,
			Role:        p.Role,
		},
	})
}

// LogoutHandler ends the session. Tokens are stateless, so this only
// acknowledges; clients drop the token.
func LogoutHandler(c echo.Context) error {
	userID := c.Get("user_id").(string)
	logger.Get().WithComponent("auth").WithUserID(userID).Info("User logged out")
	return c.JSON(http.StatusOK, map[string]string{"message": "Successfully logged out."})
}
