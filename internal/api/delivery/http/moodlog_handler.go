package http

import (
	"net/http"

	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/internal/api/service"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MoodLogHandler handles HTTP requests for the caller's mood log.
type MoodLogHandler struct {
	moodLogService service.MoodLogService
	logger         *logger.Logger
}

// NewMoodLogHandler creates a new MoodLogHandler.
func NewMoodLogHandler(moodLogService service.MoodLogService, logger *logger.Logger) *MoodLogHandler {
	return &MoodLogHandler{moodLogService: moodLogService, logger: logger}
}

// RegisterRoutes registers the mood log routes to the Echo group. The group
// must already be behind BearerAuth.
func (h *MoodLogHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateMoodLog)
	g.GET("", h.ListMoodLogs)
}

// CreateMoodLog godoc
// @Summary Log a sentiment reaction
// @Description Store a reaction to an article for the authenticated user
// @Tags moodlog
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   log  body    dto.CreateSentimentLogRequest  true  "Reaction"
// @Success 201 {object} dto.SentimentLogResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} dto.DetailResponse
// @Router /moodlog [post]
func (h *MoodLogHandler) CreateMoodLog(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{keyDetail: "Authentication credentials were not provided."})
	}

	var req dto.CreateSentimentLogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{keyDetail: "Invalid request payload"})
	}

	record, err := h.moodLogService.Append(c.Request().Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, keyDetail, err)
	}
	return c.JSON(http.StatusCreated, record)
}

// ListMoodLogs godoc
// @Summary List my reactions
// @Tags moodlog
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} dto.SentimentLogResponse
// @Failure 401 {object} dto.DetailResponse
// @Router /moodlog [get]
func (h *MoodLogHandler) ListMoodLogs(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{keyDetail: "Authentication credentials were not provided."})
	}

	logs, err := h.moodLogService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.logger, keyDetail, err)
	}
	return c.JSON(http.StatusOK, logs)
}
