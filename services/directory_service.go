package services

import (
	"context"
	"fmt"

	"commulink_server/models"
)

// DirectoryService lists the members of a community.
type DirectoryService struct {
	Store RecordStore
}

func NewDirectoryService(store RecordStore) *DirectoryService {
	return &DirectoryService{Store: store}
}

// ListUsers returns every member of the community in store order. A community nobody has
// logged in to yet yields an empty slice.
func (s *DirectoryService) ListUsers(ctx context.Context, communityID string) ([]models.User, error) {
	if err := requireFields("communityId", communityID); err != nil {
		return nil, err
	}

	items, err := s.Store.QueryByPrefix(ctx, models.CommunityPK(communityID), models.UserPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return decodeRecords[models.User](items, models.EntityUser)
}
