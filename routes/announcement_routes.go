package routes

import (
	"commulink_server/controllers"
	"commulink_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterAnnouncementRoutes registers announcement routes under /api/announcements
func RegisterAnnouncementRoutes(r *mux.Router, announcementService *services.AnnouncementService, logger *zap.Logger) {
	controller := controllers.NewAnnouncementController(announcementService, logger)

	announcementRouter := r.PathPrefix("/api/announcements").Subrouter()
	announcementRouter.HandleFunc("", controller.ListAnnouncements).Methods("GET")
	announcementRouter.HandleFunc("", controller.CreateAnnouncement).Methods("POST")
}
