package services

import (
	"context"
	"fmt"
	"strings"

	"commulink_server/models"

	"go.uber.org/zap"
)

// UserProfileService saves member profiles.
type UserProfileService struct {
	Store RecordStore
	// Blob receives inline avatars. When nil, avatars are stored inline in the user item.
	Blob   BlobStore
	Logger *zap.Logger
	Clock  Clock
}

func NewUserProfileService(store RecordStore, blob BlobStore, logger *zap.Logger) *UserProfileService {
	return &UserProfileService{Store: store, Blob: blob, Logger: logger}
}

// AvatarUpload describes a presigned direct upload.
type AvatarUpload struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
}

// UpdateProfile replaces the stored profile with user and returns what was written.
//
// This is a full replace: fields the caller leaves out are lost. When avatarUrl holds an inline
// image and blob storage is configured, the image is uploaded first and avatarUrl is swapped
// for its public URL. A failed upload is logged and the original avatarUrl is saved unchanged.
// The record is written only after the upload has finished or been skipped.
func (s *UserProfileService) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	if err := ValidateStruct(user); err != nil {
		return nil, err
	}

	log := s.logger().With(
		zap.String("communityId", user.CommunityID),
		zap.String("username", user.Username),
	)

	if IsInlineImage(user.AvatarURL) {
		if s.Blob == nil {
			if len(user.AvatarURL) > InlineAvatarLimit {
				log.Warn("inline avatar exceeds the item size limit; the write will likely be rejected",
					zap.Int("bytes", len(user.AvatarURL)))
			}
		} else {
			url, err := s.externalizeAvatar(ctx, user)
			if err != nil {
				log.Warn("avatar upload failed, keeping submitted value", zap.Error(err))
			} else {
				user.AvatarURL = url
			}
		}
	}

	if err := s.Store.PutItem(ctx, user.Key(), models.EntityUser, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	log.Info("profile updated")
	return &user, nil
}

func (s *UserProfileService) externalizeAvatar(ctx context.Context, user models.User) (string, error) {
	img, err := DecodeInlineImage(user.AvatarURL)
	if err != nil {
		return "", &BlobUploadError{Err: err}
	}

	key := AvatarObjectKey(user.CommunityID, user.Username, img.Format, s.Clock.now())
	url, err := s.Blob.PutObject(ctx, key, img.ContentType(), img.Data)
	if err != nil {
		return "", &BlobUploadError{Key: key, Err: err}
	}
	return url, nil
}

// AvatarUploadURL presigns a direct upload for a member's avatar. The client PUTs the image
// to URL and then saves PublicURL through UpdateProfile.
func (s *UserProfileService) AvatarUploadURL(ctx context.Context, communityID, username, contentType string) (*AvatarUpload, error) {
	if err := requireFields("communityId", communityID, "username", username, "contentType", contentType); err != nil {
		return nil, err
	}

	format, ok := strings.CutPrefix(contentType, "image/")
	if !ok || format == "" {
		return nil, &ValidationError{Fields: []string{"contentType"}, Message: "contentType must be an image type"}
	}

	if s.Blob == nil {
		return nil, ErrBlobStorageDisabled
	}

	key := AvatarObjectKey(communityID, username, format, s.Clock.now())
	uploadURL, publicURL, err := s.Blob.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, err
	}

	return &AvatarUpload{URL: uploadURL, Key: key, PublicURL: publicURL}, nil
}

func (s *UserProfileService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
