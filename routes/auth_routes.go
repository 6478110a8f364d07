package routes

import (
	"commulink_server/controllers"
	"commulink_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func RegisterAuthRoutes(r *mux.Router, identityService *services.IdentityService, logger *zap.Logger) {
	controller := controllers.NewAuthController(identityService, logger)

	r.HandleFunc("/api/login", controller.Login).Methods("POST")
}
