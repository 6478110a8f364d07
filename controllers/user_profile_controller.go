package controllers

import (
	"net/http"

	"commulink_server/models"
	"commulink_server/services"

	"go.uber.org/zap"
)

// UserProfileController handles the member directory and profile edits
type UserProfileController struct {
	DirectoryService   *services.DirectoryService
	UserProfileService *services.UserProfileService
	Logger             *zap.Logger
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(directoryService *services.DirectoryService, userProfileService *services.UserProfileService, logger *zap.Logger) *UserProfileController {
	return &UserProfileController{
		DirectoryService:   directoryService,
		UserProfileService: userProfileService,
		Logger:             nopIfNil(logger),
	}
}

// ListUsers returns all members of ?communityId. An empty community yields [].
func (c *UserProfileController) ListUsers(w http.ResponseWriter, r *http.Request) {
	communityID := r.URL.Query().Get("communityId")

	users, err := c.DirectoryService.ListUsers(r.Context(), communityID)
	if err != nil {
		writeServiceError(w, err, c.Logger.With(zap.String("communityId", communityID)))
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// UpdateProfile replaces the caller's profile and responds with the stored record.
func (c *UserProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeJSON(w, r, &user, c.Logger) {
		return
	}

	updated, err := c.UserProfileService.UpdateProfile(r.Context(), user)
	if err != nil {
		writeServiceError(w, err, c.Logger.With(
			zap.String("communityId", user.CommunityID),
			zap.String("username", user.Username),
		))
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
