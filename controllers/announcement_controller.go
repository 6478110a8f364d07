package controllers

import (
	"net/http"

	"commulink_server/models"
	"commulink_server/services"

	"go.uber.org/zap"
)

type AnnouncementController struct {
	AnnouncementService *services.AnnouncementService
	Logger              *zap.Logger
}

func NewAnnouncementController(announcementService *services.AnnouncementService, logger *zap.Logger) *AnnouncementController {
	return &AnnouncementController{AnnouncementService: announcementService, Logger: nopIfNil(logger)}
}

// ListAnnouncements returns every announcement of ?communityId, expired ones included.
func (c *AnnouncementController) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	communityID := r.URL.Query().Get("communityId")

	announcements, err := c.AnnouncementService.ListAnnouncements(r.Context(), communityID)
	if err != nil {
		writeServiceError(w, err, c.Logger.With(zap.String("communityId", communityID)))
		return
	}

	writeJSON(w, http.StatusOK, announcements)
}

// CreateAnnouncement stores a new announcement and acknowledges with {success:true}.
func (c *AnnouncementController) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var announcement models.Announcement
	if !decodeJSON(w, r, &announcement, c.Logger) {
		return
	}

	if _, err := c.AnnouncementService.CreateAnnouncement(r.Context(), announcement); err != nil {
		writeServiceError(w, err, c.Logger.With(zap.String("communityId", announcement.CommunityID)))
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
