package controllers

import (
	"net/http"

	"commulink_server/services"

	"go.uber.org/zap"
)

// AvatarController hands out presigned S3 uploads for avatars.
type AvatarController struct {
	UserProfileService *services.UserProfileService
	Logger             *zap.Logger
}

func NewAvatarController(userProfileService *services.UserProfileService, logger *zap.Logger) *AvatarController {
	return &AvatarController{UserProfileService: userProfileService, Logger: nopIfNil(logger)}
}

type uploadURLRequest struct {
	CommunityID string `json:"communityId"`
	Username    string `json:"username"`
	ContentType string `json:"contentType"`
}

// GeneratePresignedURL generates a presigned URL for a direct avatar upload
func (c *AvatarController) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if !decodeJSON(w, r, &req, c.Logger) {
		return
	}

	upload, err := c.UserProfileService.AvatarUploadURL(r.Context(), req.CommunityID, req.Username, req.ContentType)
	if err != nil {
		writeServiceError(w, err, c.Logger.With(
			zap.String("communityId", req.CommunityID),
			zap.String("username", req.Username),
		))
		return
	}

	c.Logger.Debug("presigned avatar upload", zap.String("key", upload.Key))
	writeJSON(w, http.StatusOK, upload)
}
