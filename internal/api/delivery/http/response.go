package http

import (
	"net/http"

	"github.com/strongDoorknob/moodsy/pkg/apperror"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	keyError  = "error"
	keyDetail = "detail"
)

// respondError renders err under key. Validation errors are rendered as a
// map of field name to messages instead.
func respondError(c echo.Context, log *logger.Logger, key string, err error) error {
	status := apperror.Status(err)
	if fields := apperror.Fields(err); len(fields) > 0 {
		body := make(map[string][]string, len(fields))
		for field, msg := range fields {
			body[field] = []string{msg}
		}
		return c.JSON(http.StatusBadRequest, body)
	}

	if status >= http.StatusInternalServerError {
		log.Error("Request failed",
			logger.ErrorField(err),
			logger.StringField("method", c.Request().Method),
			logger.StringField("path", c.Path()),
		)
	}
	return c.JSON(status, echo.Map{key: apperror.Message(err)})
}
