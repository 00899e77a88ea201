package handlers

import (
	"net/http"

	"inventory-manager/internal/admin"
	"inventory-manager/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes user management and the own-profile forms
type AdminHandler struct {
	logger  *zap.Logger
	users   *admin.UsersService
	profile *admin.ProfileService
}

func NewAdminHandler(users *admin.UsersService, profile *admin.ProfileService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{logger: logger, users: users, profile: profile}
}

// ListUsers godoc
// @Summary      List users
// @Description  Lists every account. Requires the admin role.
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.User  "Users"
// @Failure      401  {object}  errors.StandardError  "No signed-in session"
// @Failure      403  {object}  errors.StandardError  "Admin role required"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Creates an account. The role defaults to user.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        request       body    CreateUserRequest  true  "New account"
// @Success      201  {object}  SuccessResponse  "User created"
// @Failure      400  {object}  errors.StandardError  "Validation failed"
// @Failure      403  {object}  errors.StandardError  "Admin role required"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	err := h.users.CreateUser(c.Request.Context(), admin.NewUser{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Message: "User created successfully"})
}

// SetRole godoc
// @Summary      Change a user's role
// @Description  Sets the role to user or admin.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        id            path    integer            true  "User ID"
// @Param        request       body    RoleRequest        true  "New role"
// @Success      200  {object}  SuccessResponse  "Role updated"
// @Failure      400  {object}  errors.StandardError  "Invalid role"
// @Failure      403  {object}  errors.StandardError  "Admin role required"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /admin/users/{id}/role [put]
func (h *AdminHandler) SetRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	if err := h.users.SetRole(c.Request.Context(), id, req.Role); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "User role updated to " + string(req.Role)})
}

// SetStatus godoc
// @Summary      Activate or deactivate a user
// @Description  Admins cannot deactivate their own account.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        id            path    integer            true  "User ID"
// @Param        request       body    StatusRequest      true  "New status"
// @Success      200  {object}  SuccessResponse  "Status updated"
// @Failure      400  {object}  errors.StandardError  "Own account or invalid body"
// @Failure      403  {object}  errors.StandardError  "Admin role required"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /admin/users/{id}/status [put]
func (h *AdminHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	if err := h.users.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		_ = c.Error(err)
		return
	}
	message := "User deactivated successfully"
	if *req.IsActive {
		message = "User activated successfully"
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Admins cannot delete their own account.
// @Tags         admin
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        id            path    integer            true  "User ID"
// @Success      200  {object}  SuccessResponse  "User deleted"
// @Failure      400  {object}  errors.StandardError  "Own account"
// @Failure      403  {object}  errors.StandardError  "Admin role required"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "User deleted successfully"})
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Changes the signed-in user's username and email.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        request       body    ProfileRequest     true  "Username and email"
// @Success      200  {object}  domain.User  "Updated user"
// @Failure      400  {object}  errors.StandardError  "Validation failed"
// @Failure      401  {object}  errors.StandardError  "No signed-in session"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /profile [put]
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	user, err := h.profile.UpdateProfile(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary      Change own password
// @Description  The new password must be at least 6 characters and match its confirmation.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        request       body    PasswordRequest    true  "Current and new password"
// @Success      200  {object}  SuccessResponse  "Password updated"
// @Failure      400  {object}  errors.StandardError  "Validation failed"
// @Failure      401  {object}  errors.StandardError  "No signed-in session"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /profile/password [put]
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	if err := h.profile.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Password updated successfully!"})
}
