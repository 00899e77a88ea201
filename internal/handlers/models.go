package handlers

import "inventory-manager/internal/domain"

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the body of POST /session/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /session/register
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse describes the signed-in user, if any
type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
}

// BatchRequest is a batch as typed into the form. An empty expire_date means no expiry.
type BatchRequest struct {
	Quantity   int    `json:"quantity"`
	ExpireDate string `json:"expire_date"`
}

// CreateItemRequest is the body of POST /inventory/items
type CreateItemRequest struct {
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Batches  []BatchRequest `json:"batches"`
}

// FieldUpdateRequest edits one field of an item or batch
type FieldUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// CategoriesResponse lists category suggestions
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// CreateUserRequest is the body of POST /admin/users
type CreateUserRequest struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// RoleRequest is the body of PUT /admin/users/:id/role
type RoleRequest struct {
	Role domain.Role `json:"role" binding:"required"`
}

// StatusRequest is the body of PUT /admin/users/:id/status
type StatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ProfileRequest is the body of PUT /profile
type ProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PasswordRequest is the body of PUT /profile/password
type PasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
