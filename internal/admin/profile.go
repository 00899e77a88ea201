package admin

import (
	"context"
	"net/http"
	"strings"

	"inventory-manager/internal/domain"

	"go.uber.org/zap"
)

// ProfileService edits the signed-in user's own account
type ProfileService struct {
	client   Requester
	identity Identity
	logger   *zap.Logger
}

func NewProfileService(client Requester, identity Identity, logger *zap.Logger) *ProfileService {
	return &ProfileService{client: client, identity: identity, logger: logger}
}

// UpdateProfile changes username and email and refreshes the cached user
func (s *ProfileService) UpdateProfile(ctx context.Context, username, email string) (domain.User, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" {
		return domain.User{}, ErrUsernameRequired
	}
	if email == "" {
		return domain.User{}, ErrEmailRequired
	}
	if _, ok := s.identity.CurrentUser(); !ok {
		return domain.User{}, ErrNotSignedIn
	}

	var updated domain.User
	body := map[string]string{"username": username, "email": email}
	if err := s.client.Do(ctx, http.MethodPut, "/api/user/profile", body, &updated); err != nil {
		return domain.User{}, err
	}

	s.identity.UpdateUser(ctx, updated)
	s.logger.Info("Profile updated", zap.String("username", updated.Username))
	return updated, nil
}

// ChangePassword checks the confirmation and length locally, then asks the
// server to verify the current password.
func (s *ProfileService) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if current == "" {
		return ErrCurrentPassword
	}
	if next != confirm {
		return ErrPasswordMismatch
	}
	if len(next) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if _, ok := s.identity.CurrentUser(); !ok {
		return ErrNotSignedIn
	}

	body := map[string]string{"currentPassword": current, "newPassword": next}
	if err := s.client.Do(ctx, http.MethodPut, "/api/user/password", body, nil); err != nil {
		return err
	}
	s.logger.Info("Password changed")
	return nil
}
