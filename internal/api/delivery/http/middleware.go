package http

import (
	"net/http"
	"strings"

	"github.com/strongDoorknob/moodsy/internal/api/service"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/labstack/echo/v4"
)

const userIDContextKey = "user_id"

// BearerAuth rejects requests without a valid access token and stores the
// caller's user ID on the echo context.
func BearerAuth(authService service.AuthService, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{keyDetail: "Authentication credentials were not provided."})
			}

			userID, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				log.Debug("Rejected access token", logger.ErrorField(err))
				return respondError(c, log, keyDetail, err)
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// currentUserID returns the user set by BearerAuth.
func currentUserID(c echo.Context) (uint, bool) {
	userID, ok := c.Get(userIDContextKey).(uint)
	return userID, ok && userID != 0
}
