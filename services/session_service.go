// services/session_service.go
package services

import (
	"context"
	"errors"
	"time"

	"unovation-backend/repositories"
	"unovation-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionService issues, checks and revokes admin session tokens.
type SessionService struct {
	store  *repositories.Store
	secret string
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewSessionService(store *repositories.Store, secret string, ttl time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		store:  store,
		secret: secret,
		ttl:    ttl,
		logger: logger.Named("sessions"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *SessionService) Secret() string { return s.secret }

// Login checks the credentials and opens a session.
func (s *SessionService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	admin, err := s.store.FindAdminByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, err
	}
	if admin == nil || !utils.CheckPasswordHash(password, admin.Password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	session, err := s.store.CreateSession(ctx, admin.ID, expiresAt)
	if err != nil {
		return "", time.Time{}, err
	}

	token, err := utils.GenerateToken(admin.ID, session.ID, s.secret, expiresAt)
	if err != nil {
		return "", time.Time{}, err
	}

	if err := s.store.RecordLogin(ctx, admin.ID, now); err != nil {
		s.logger.Warn("failed to record login", zap.String("admin_id", admin.ID), zap.Error(err))
	}
	return token, expiresAt, nil
}

// Logout revokes a session. Unknown ids are ignored.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	return s.store.Sessions.Delete(ctx, sessionID)
}

// SessionActive implements utils.SessionValidator.
func (s *SessionService) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	return s.store.SessionLive(ctx, sessionID, s.now())
}

// EnsureAdmin seeds the configured admin account.
func (s *SessionService) EnsureAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		existing, err := s.store.FindAdminByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing == nil {
			s.logger.Warn("ADMIN_PASSWORD not set and no admin account exists; admin login is disabled",
				zap.String("username", username))
		}
		return nil
	}
	created, err := s.store.EnsureAdmin(ctx, username, password)
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("admin account created", zap.String("username", username))
	}
	return nil
}

// PurgeExpired deletes sessions past their expiry.
func (s *SessionService) PurgeExpired(ctx context.Context) {
	n, err := s.store.PurgeExpiredSessions(ctx, s.now())
	if err != nil {
		s.logger.Error("session purge failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("expired sessions purged", zap.Int64("count", n))
	}
}

// StartJanitor schedules PurgeExpired. The caller stops the returned cron.
func (s *SessionService) StartJanitor(schedule string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.PurgeExpired(ctx)
	}); err != nil {
		return nil, err
	}
	c.Start()
	s.logger.Info("session janitor started", zap.String("schedule", schedule))
	return c, nil
}
