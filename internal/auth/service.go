package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"inventory-manager/internal/domain"
	"inventory-manager/internal/remote"
	apperrors "inventory-manager/pkg/errors"

	"go.uber.org/zap"
)

// MinPasswordLength is enforced before any credential reaches the network
const MinPasswordLength = 6

// refreshSkew triggers a proactive refresh shortly before the access token expires
const refreshSkew = 30 * time.Second

var (
	ErrMissingCredentials = apperrors.NewValidationError("username and password are required", "username or password")
	ErrMissingEmail       = apperrors.NewValidationError("email is required", "email")
	ErrPasswordTooShort   = apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters long", MinPasswordLength), "password")
)

type authResponse struct {
	User         domain.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// Service talks to the /api/auth endpoints and keeps a Session current
type Service struct {
	api     *remote.Client
	session *Session
	store   SessionStore
	logger  *zap.Logger
	now     func() time.Time

	refreshMu sync.Mutex
}

// NewService creates an auth service. store may be nil when nothing is persisted.
func NewService(baseURL string, httpClient *http.Client, session *Session, store SessionStore, logger *zap.Logger) *Service {
	return &Service{
		api:     remote.NewClient(baseURL, httpClient, nil, logger),
		session: session,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

// Session returns the session this service maintains
func (s *Service) Session() *Session {
	return s.session
}

// CurrentUser returns the signed-in user, if any
func (s *Service) CurrentUser() (domain.User, bool) {
	return s.session.User()
}

// Login authenticates and stores the returned user and tokens
func (s *Service) Login(ctx context.Context, username, password string) (domain.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}

	var resp authResponse
	body := map[string]string{"username": username, "password": password}
	if err := s.post(ctx, "/api/auth/login", body, &resp); err != nil {
		s.logger.Warn("Login failed", zap.String("username", username), zap.Error(err))
		return domain.User{}, err
	}

	s.establish(ctx, resp)
	s.logger.Info("User logged in", zap.String("username", resp.User.Username), zap.String("role", string(resp.User.Role)))
	return resp.User, nil
}

// Register creates an account and signs it in
func (s *Service) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}
	if strings.TrimSpace(email) == "" {
		return domain.User{}, ErrMissingEmail
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, ErrPasswordTooShort
	}

	var resp authResponse
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := s.post(ctx, "/api/auth/register", body, &resp); err != nil {
		s.logger.Warn("Registration failed", zap.String("username", username), zap.Error(err))
		return domain.User{}, err
	}

	s.establish(ctx, resp)
	s.logger.Info("User registered", zap.String("username", resp.User.Username))
	return resp.User, nil
}

// Logout revokes the refresh token server-side on a best-effort basis.
// The local session is always cleared.
func (s *Service) Logout(ctx context.Context) error {
	refreshToken := s.session.RefreshToken()
	accessToken := s.session.AccessToken()

	var err error
	if refreshToken != "" {
		err = s.api.DoWithToken(ctx, accessToken, http.MethodPost, "/api/auth/logout", map[string]string{"refreshToken": refreshToken}, nil)
		if err != nil {
			s.logger.Warn("Logout request failed", zap.Error(err))
		}
	}

	s.forget(ctx)
	s.logger.Info("User logged out")
	return err
}

// Refresh exchanges the refresh token for a new pair. stale is the access
// token the caller saw rejected; if the session already moved past it another
// caller refreshed first and nothing is sent. Failure forces a logout and
// returns AuthExpired.
func (s *Service) Refresh(ctx context.Context, stale string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if current := s.session.AccessToken(); current != "" && current != stale {
		return nil
	}

	refreshToken := s.session.RefreshToken()
	if refreshToken == "" {
		s.forget(ctx)
		return apperrors.NewAuthExpired(errors.New("no refresh token"))
	}

	var resp authResponse
	if err := s.post(ctx, "/api/auth/refresh", map[string]string{"refreshToken": refreshToken}, &resp); err != nil {
		s.logger.Warn("Token refresh failed, forcing logout", zap.Error(err))
		s.forget(ctx)
		return apperrors.NewAuthExpired(err)
	}
	if resp.AccessToken == "" {
		s.forget(ctx)
		return apperrors.NewAuthExpired(errors.New("refresh response carried no access token"))
	}
	if resp.RefreshToken == "" {
		resp.RefreshToken = refreshToken
	}

	s.session.SetTokens(resp.AccessToken, resp.RefreshToken)
	s.persist(ctx)
	s.logger.Debug("Access token refreshed")
	return nil
}

// Token returns the access token, refreshing first when it is about to expire.
// A failed proactive refresh is logged; the request path handles rejection.
func (s *Service) Token(ctx context.Context) string {
	if s.session.NeedsRefresh(s.now(), refreshSkew) {
		if err := s.Refresh(ctx, s.session.AccessToken()); err != nil {
			s.logger.Warn("Proactive token refresh failed", zap.Error(err))
		}
	}
	return s.session.AccessToken()
}

// Restore loads a persisted session. It reports whether one was found.
func (s *Service) Restore(ctx context.Context) (bool, error) {
	if s.store == nil {
		return false, nil
	}
	snap, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return false, nil
		}
		return false, err
	}
	if snap.AccessToken == "" || snap.RefreshToken == "" {
		return false, nil
	}
	s.session.Restore(snap)
	s.logger.Info("Session restored", zap.String("username", snap.User.Username))
	return true, nil
}

// UpdateUser replaces the cached user after a profile change and persists it
func (s *Service) UpdateUser(ctx context.Context, user domain.User) {
	s.session.SetUser(user)
	s.persist(ctx)
}

func (s *Service) establish(ctx context.Context, resp authResponse) {
	s.session.Set(resp.User, resp.AccessToken, resp.RefreshToken)
	s.persist(ctx)
}

func (s *Service) persist(ctx context.Context) {
	if s.store == nil {
		return
	}
	snap, ok := s.session.Snapshot()
	if !ok {
		return
	}
	if err := s.store.Save(ctx, snap); err != nil {
		s.logger.Warn("Failed to persist session", zap.Error(err))
	}
}

func (s *Service) forget(ctx context.Context) {
	s.session.Clear()
	if s.store == nil {
		return
	}
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Warn("Failed to clear persisted session", zap.Error(err))
	}
}

func (s *Service) post(ctx context.Context, path string, body, out interface{}) error {
	return s.api.DoWithToken(ctx, "", http.MethodPost, path, body, out)
}
