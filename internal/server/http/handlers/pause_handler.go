package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// PauseHandler exposes channel admission control.
type PauseHandler struct {
	facade PauseFacade
}

// NewPauseHandler constructs PauseHandler.
func NewPauseHandler(facade PauseFacade) *PauseHandler {
	return &PauseHandler{facade: facade}
}

// Status handles GET /api/order-pause/:serviceType.
func (h *PauseHandler) Status(c *gin.Context) {
	channel, err := model.ParseChannel(c.Param("serviceType"))
	if err != nil {
		respondError(c, err)
		return
	}
	status, err := h.facade.PauseStatus(c.Request.Context(), channel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPauseResponse(status))
}

// Set handles POST /api/order-pause.
func (h *PauseHandler) Set(c *gin.Context) {
	var req dto.PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}
	channel, err := model.ParseChannel(req.ServiceType)
	if err != nil {
		respondError(c, err)
		return
	}

	in := usecase.PauseInput{Channel: channel, Paused: req.IsPaused, Reason: req.PauseReason}
	if req.PauseDurationMinutes != nil {
		in.DurationMinutes = *req.PauseDurationMinutes
	}
	status, err := h.facade.SetPause(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPauseResponse(status))
}
