package services

import (
	"context"
	"log"
	"time"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/google/uuid"
)

const (
	sessionLifetime = 24 * time.Hour
	// Inactive sessions stay queryable for a week before cleanup
	sessionRetention = 7 * 24 * time.Hour
)

// AdminSessionService tracks back-office login sessions. Sessions are
// keyed by a SHA-256 hash of the JWT so the raw token never lands in
// the database.
type AdminSessionService struct{}

func NewAdminSessionService() *AdminSessionService {
	return &AdminSessionService{}
}

// CreateSession records a fresh login with its client fingerprint.
func (s *AdminSessionService) CreateSession(
	ctx context.Context,
	adminID uuid.UUID,
	token string,
	ipAddress string,
	userAgent string,
) (*models.AdminSession, error) {
	now := time.Now()
	session := &models.AdminSession{
		ID:             uuid.Must(uuid.NewV7()),
		AdminID:        adminID,
		TokenHash:      GetAdminAuthService().HashToken(token),
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(sessionLifetime),
		IsActive:       true,
	}

	if err := config.Gorm.WithContext(ctx).Create(session).Error; err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for admin %s", session.ID, adminID)
	return session, nil
}

// UpdateSessionActivity bumps last_activity_at for the session behind
// the given token hash. Called on every authenticated request.
func (s *AdminSessionService) UpdateSessionActivity(ctx context.Context, tokenHash string) error {
	err := config.Gorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND is_active = ?", tokenHash, true).
		Update("last_activity_at", time.Now()).Error
	if err != nil {
		log.Printf("[session] failed to update session activity: %v", err)
	}
	return err
}

// DeactivateSession closes every active session for an admin (logout).
func (s *AdminSessionService) DeactivateSession(ctx context.Context, adminID uuid.UUID) error {
	err := config.Gorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("admin_id = ? AND is_active = ?", adminID, true).
		Update("is_active", false).Error
	if err != nil {
		log.Printf("[session] failed to deactivate session: %v", err)
		return err
	}

	log.Printf("[session] deactivated session for admin %s", adminID)
	return nil
}

// CleanupExpiredSessions deletes sessions past their expiry, and
// inactive sessions past the retention window.
func (s *AdminSessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	result := config.Gorm.WithContext(ctx).
		Where("expires_at < ? OR (is_active = ? AND last_activity_at < ?)",
			time.Now(), false, time.Now().Add(-sessionRetention)).
		Delete(&models.AdminSession{})
	if result.Error != nil {
		log.Printf("[session] failed to cleanup expired sessions: %v", result.Error)
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("[session] cleaned up %d expired sessions", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

// Global instance
var adminSessionService *AdminSessionService

func GetAdminSessionService() *AdminSessionService {
	if adminSessionService == nil {
		adminSessionService = NewAdminSessionService()
	}
	return adminSessionService
}
