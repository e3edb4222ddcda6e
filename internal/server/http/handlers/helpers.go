package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// CurrentSession extracts the authenticated staff session from context.
func CurrentSession(c *gin.Context) (pkgAuth.Session, bool) {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return pkgAuth.Session{}, false
	}
	session, ok := val.(pkgAuth.Session)
	return session, ok
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Message: message})
}

func badRequest(c *gin.Context, message string) {
	respondMessage(c, http.StatusBadRequest, message)
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var unavailable *domainErrors.ServiceUnavailableError
	switch {
	case errors.As(err, &unavailable):
		c.JSON(http.StatusServiceUnavailable, dto.PausedResponse{
			Message:          err.Error(),
			ServiceType:      unavailable.Channel,
			PauseReason:      unavailable.Reason,
			RemainingMinutes: unavailable.RemainingMinutes(),
		})
	case errors.Is(err, domainErrors.ErrValidation):
		badRequest(c, err.Error())
	case errors.Is(err, domainErrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, "not found")
	case errors.Is(err, domainErrors.ErrInvalidState):
		respondMessage(c, http.StatusConflict, err.Error())
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		respondMessage(c, http.StatusConflict, "already exists")
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		respondMessage(c, http.StatusUnauthorized, "invalid username or password")
	default:
		_ = c.Error(err)
		respondMessage(c, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
