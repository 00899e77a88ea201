package handlers

import (
	"net/http"

	"inventory-manager/internal/auth"
	"inventory-manager/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler signs the local client in and out of the inventory API
type SessionHandler struct {
	logger *zap.Logger
	auth   *auth.Service
}

func NewSessionHandler(authService *auth.Service, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{logger: logger, auth: authService}
}

// Login godoc
// @Summary      Sign in
// @Description  Signs in against the remote API and keeps the token pair server-side.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request       body    LoginRequest       true  "Credentials"
// @Success      200  {object}  SessionResponse  "Signed in"
// @Failure      400  {object}  errors.StandardError  "Missing credentials"
// @Failure      502  {object}  errors.StandardError  "Rejected by the server"
// @Router       /session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{Authenticated: true, User: &user})
}

// Register godoc
// @Summary      Register
// @Description  Creates an account and signs in. Passwords must be at least 6 characters.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request       body    RegisterRequest    true  "New account"
// @Success      201  {object}  SessionResponse  "Registered and signed in"
// @Failure      400  {object}  errors.StandardError  "Validation failed"
// @Failure      502  {object}  errors.StandardError  "Rejected by the server"
// @Router       /session/register [post]
func (h *SessionHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, SessionResponse{Authenticated: true, User: &user})
}

// Logout godoc
// @Summary      Sign out
// @Description  Revokes the refresh token on a best-effort basis. The local session is cleared even when the server cannot be reached.
// @Tags         session
// @Produce      json
// @Success      200  {object}  SessionResponse  "Signed out"
// @Router       /session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		h.logger.Warn("Server-side logout failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
}

// Current godoc
// @Summary      Current session
// @Description  Reports whether a user is signed in and who.
// @Tags         session
// @Produce      json
// @Success      200  {object}  SessionResponse  "Session state"
// @Router       /session [get]
func (h *SessionHandler) Current(c *gin.Context) {
	user, ok := h.auth.CurrentUser()
	if !ok {
		c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{Authenticated: true, User: &user})
}
