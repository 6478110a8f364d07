package services

import (
	"context"
	"fmt"
	"strconv"

	"commulink_server/models"

	"go.uber.org/zap"
)

// IdentityService logs members in. There is no password: the first login for a
// (community, username) pair registers the member.
type IdentityService struct {
	Store  RecordStore
	Logger *zap.Logger
	Clock  Clock
}

func NewIdentityService(store RecordStore, logger *zap.Logger) *IdentityService {
	return &IdentityService{Store: store, Logger: logger}
}

// Login returns the member and the derived community, creating a default profile when the
// username is new to the community.
//
// Creation is an unconditional put. Two concurrent first logins for the same username both
// see no record and both write; the store keeps whichever write lands last. An existing
// record is never modified.
func (s *IdentityService) Login(ctx context.Context, communityID, username string) (*models.Session, error) {
	if err := requireFields("communityId", communityID, "username", username); err != nil {
		return nil, err
	}

	community := ResolveCommunity(communityID)
	key := models.UserKey(communityID, username)

	item, err := s.Store.GetItem(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if item != nil {
		var user models.User
		if err := decodeRecord(item, models.EntityUser, &user); err != nil {
			return nil, err
		}
		return &models.Session{User: user, Community: community}, nil
	}

	user := models.NewMember(newUserID(s.Clock.now().UnixMilli()), communityID, username)
	if err := s.Store.PutItem(ctx, key, models.EntityUser, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger().Info("registered new member",
		zap.String("communityId", communityID),
		zap.String("username", username),
		zap.String("userId", user.ID),
	)

	return &models.Session{User: user, Community: community}, nil
}

func (s *IdentityService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func newUserID(millis int64) string {
	return "u-" + strconv.FormatInt(millis, 10)
}
