package routes

import (
	"commulink_server/controllers"
	"commulink_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterUserProfileRoutes sets up the member directory and profile routes under /api
func RegisterUserProfileRoutes(r *mux.Router, directoryService *services.DirectoryService, userProfileService *services.UserProfileService, logger *zap.Logger) {
	controller := controllers.NewUserProfileController(directoryService, userProfileService, logger)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/users", controller.ListUsers).Methods("GET")
	apiRouter.HandleFunc("/profile", controller.UpdateProfile).Methods("PUT")
}
