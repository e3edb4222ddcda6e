package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// AuthHandler processes staff login and session introspection.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

func newUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		badRequest(c, "username and password are required")
		return
	}

	user, token, session, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token, session.ExpiresAt)
	c.JSON(http.StatusOK, dto.LoginResponse{
		User:      newUserResponse(user),
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, dto.ErrorResponse{Message: "Logged out successfully"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := CurrentSession(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.facade.CurrentUser(c.Request.Context(), session.UserID)
	if err != nil {
		respondMessage(c, http.StatusUnauthorized, "user not found")
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}
