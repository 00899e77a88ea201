// Package admin wraps the user-management and own-profile endpoints of the
// inventory API. Input is validated before any request is sent.
package admin

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"inventory-manager/internal/domain"
	apperrors "inventory-manager/pkg/errors"

	"go.uber.org/zap"
)

// MinPasswordLength matches the server's password rule
const MinPasswordLength = 6

var (
	ErrUsernameRequired  = apperrors.NewValidationError("username is required", "username")
	ErrEmailRequired     = apperrors.NewValidationError("email is required", "email")
	ErrPasswordTooShort  = apperrors.NewValidationError(fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength), "password")
	ErrPasswordMismatch  = apperrors.NewValidationError("New passwords do not match", "confirmPassword")
	ErrCurrentPassword   = apperrors.NewValidationError("current password is required", "currentPassword")
	ErrInvalidRole       = apperrors.NewValidationError("role must be user or admin", "role")
	ErrSelfDeactivation  = apperrors.NewValidationError("you cannot deactivate your own account", "is_active")
	ErrSelfDeletion      = apperrors.NewValidationError("you cannot delete your own account", "id")
	ErrNotSignedIn       = apperrors.NewUnauthorized("not signed in")
	ErrAdminRoleRequired = apperrors.NewForbidden("admin access required")
)

// Requester performs an authenticated JSON request; remote.Client implements it.
type Requester interface {
	Do(ctx context.Context, method, path string, body, out interface{}) error
}

// Identity exposes the signed-in user; auth.Service implements it.
type Identity interface {
	CurrentUser() (domain.User, bool)
	UpdateUser(ctx context.Context, user domain.User)
}

// NewUser is the input for CreateUser
type NewUser struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Validate rejects input before it reaches the network
func (n NewUser) Validate() error {
	if strings.TrimSpace(n.Username) == "" {
		return ErrUsernameRequired
	}
	if strings.TrimSpace(n.Email) == "" {
		return ErrEmailRequired
	}
	if len(n.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !n.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// UsersService manages user accounts. Every call requires an admin session.
type UsersService struct {
	client   Requester
	identity Identity
	logger   *zap.Logger
}

func NewUsersService(client Requester, identity Identity, logger *zap.Logger) *UsersService {
	return &UsersService{client: client, identity: identity, logger: logger}
}

func (s *UsersService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	var users []domain.User
	if err := s.client.Do(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UsersService) CreateUser(ctx context.Context, user NewUser) error {
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if err := user.Validate(); err != nil {
		return err
	}
	if _, err := s.requireAdmin(); err != nil {
		return err
	}
	if err := s.client.Do(ctx, http.MethodPost, "/api/admin/users", user, nil); err != nil {
		return err
	}
	s.logger.Info("User created", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return nil
}

func (s *UsersService) SetRole(ctx context.Context, id int64, role domain.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	if _, err := s.requireAdmin(); err != nil {
		return err
	}
	body := map[string]domain.Role{"role": role}
	if err := s.client.Do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/role", id), body, nil); err != nil {
		return err
	}
	s.logger.Info("User role updated", zap.Int64("user_id", id), zap.String("role", string(role)))
	return nil
}

// SetActive activates or deactivates an account. An admin cannot deactivate itself.
func (s *UsersService) SetActive(ctx context.Context, id int64, active bool) error {
	me, err := s.requireAdmin()
	if err != nil {
		return err
	}
	if !active && me.ID == id {
		return ErrSelfDeactivation
	}
	body := map[string]bool{"is_active": active}
	if err := s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/api/admin/users/%d/status", id), body, nil); err != nil {
		return err
	}
	s.logger.Info("User status updated", zap.Int64("user_id", id), zap.Bool("is_active", active))
	return nil
}

func (s *UsersService) DeleteUser(ctx context.Context, id int64) error {
	me, err := s.requireAdmin()
	if err != nil {
		return err
	}
	if me.ID == id {
		return ErrSelfDeletion
	}
	if err := s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, nil); err != nil {
		return err
	}
	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

func (s *UsersService) requireAdmin() (domain.User, error) {
	me, ok := s.identity.CurrentUser()
	if !ok {
		return domain.User{}, ErrNotSignedIn
	}
	if !me.IsAdmin() {
		return domain.User{}, ErrAdminRoleRequired
	}
	return me, nil
}
