package services

import (
	"context"
	"errors"
	"fmt"

	"commulink_server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnnouncementNotifier is told about every announcement after it has been stored.
// Delivery is best effort.
type AnnouncementNotifier interface {
	AnnouncementCreated(ctx context.Context, announcement models.Announcement)
}

// AnnouncementService creates and lists community announcements.
type AnnouncementService struct {
	Store    RecordStore
	Notifier AnnouncementNotifier
	Logger   *zap.Logger
	Clock    Clock

	// CollisionGuard makes a second announcement created in the same millisecond fail with
	// ErrAnnouncementConflict instead of overwriting the first.
	CollisionGuard bool
}

func NewAnnouncementService(store RecordStore, logger *zap.Logger) *AnnouncementService {
	return &AnnouncementService{Store: store, Logger: logger}
}

// ListAnnouncements returns every announcement of the community, expired ones included.
// Hiding or de-emphasising expired items is left to the caller.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context, communityID string) ([]models.Announcement, error) {
	if err := requireFields("communityId", communityID); err != nil {
		return nil, err
	}

	items, err := s.Store.QueryByPrefix(ctx, models.CommunityPK(communityID), models.AnnouncementPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	return decodeRecords[models.Announcement](items, models.EntityAnnouncement)
}

// CreateAnnouncement stores a new announcement and returns it as written.
//
// A caller-supplied createdAt is kept; otherwise the server clock picks the creation instant.
// expiresAt is always createdAt plus seven days. The sort key is the server's clock in
// milliseconds, so two announcements of one community created in the same millisecond share
// a key: the later write replaces the earlier one unless CollisionGuard is set.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, announcement models.Announcement) (*models.Announcement, error) {
	if err := ValidateStruct(announcement); err != nil {
		return nil, err
	}

	now := s.Clock.now()
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = now
	}
	announcement.ExpiresAt = models.ExpiryFor(announcement.CreatedAt)
	if announcement.ID == "" {
		announcement.ID = uuid.NewString()
	}

	key := models.AnnouncementKey(announcement.CommunityID, now)

	var err error
	if s.CollisionGuard {
		err = s.Store.PutItemIfAbsent(ctx, key, models.EntityAnnouncement, announcement)
		if errors.Is(err, ErrItemExists) {
			return nil, ErrAnnouncementConflict
		}
	} else {
		err = s.Store.PutItem(ctx, key, models.EntityAnnouncement, announcement)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	s.logger().Info("announcement created",
		zap.String("communityId", announcement.CommunityID),
		zap.String("announcementId", announcement.ID),
		zap.String("category", string(announcement.Category)),
		zap.Time("expiresAt", announcement.ExpiresAt),
	)

	if s.Notifier != nil {
		s.Notifier.AnnouncementCreated(ctx, announcement)
	}

	return &announcement, nil
}

func (s *AnnouncementService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
