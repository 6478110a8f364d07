package routes

import (
	"commulink_server/controllers"
	"commulink_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterS3Routes sets up routes for S3-related operations
func RegisterS3Routes(r *mux.Router, userProfileService *services.UserProfileService, logger *zap.Logger) {
	controller := controllers.NewAvatarController(userProfileService, logger)

	r.HandleFunc("/api/avatar/upload-url", controller.GeneratePresignedURL).Methods("POST")
}
