package repositories

import (
	"context"
	"fmt"
	"time"

	"unovation-backend/models"
)

func (s *Store) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return s.Admins.first(s.db.WithContext(ctx), "username = ?", username)
}

// EnsureAdmin creates the admin account when no account with that username
// exists. The password is hashed by the model hook.
func (s *Store) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	existing, err := s.FindAdminByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if err := s.Admins.Create(ctx, &models.Admin{Username: username, Password: password}); err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	return true, nil
}

func (s *Store) RecordLogin(ctx context.Context, adminID string, at time.Time) error {
	return s.db.WithContext(ctx).Model(&models.Admin{}).Where("id = ?", adminID).Update("last_login", at).Error
}

func (s *Store) CreateSession(ctx context.Context, adminID string, expiresAt time.Time) (*models.AdminSession, error) {
	session := &models.AdminSession{AdminID: adminID, ExpiresAt: expiresAt}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SessionLive reports whether the session exists and has not expired at now.
func (s *Store) SessionLive(ctx context.Context, id string, now time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.AdminSession{}).
		Where("id = ? AND expires_at > ?", id, now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("session lookup: %w", err)
	}
	return count > 0, nil
}

// PurgeExpiredSessions deletes sessions that expired before now.
func (s *Store) PurgeExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.AdminSession{})
	if result.Error != nil {
		return 0, fmt.Errorf("purge sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
