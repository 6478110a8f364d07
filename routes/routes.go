package routes

import (
	"net/http"

	"commulink_server/controllers"
	"commulink_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Services groups what the API routes need.
type Services struct {
	Identity      *services.IdentityService
	Directory     *services.DirectoryService
	Announcements *services.AnnouncementService
	Profiles      *services.UserProfileService
}

// RegisterRoutes sets up the health check and, when no frontend is served, the welcome route.
// Any OPTIONS request that is not a CORS preflight gets an empty 200.
func RegisterRoutes(r *mux.Router, serveWelcome bool) {
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	// A MatcherFunc rather than Methods, so other methods on unknown paths stay 404.
	r.MatcherFunc(isOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if serveWelcome {
		r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	}
}

// RegisterAPIRoutes mounts every /api route.
func RegisterAPIRoutes(r *mux.Router, svc Services, logger *zap.Logger) {
	RegisterAuthRoutes(r, svc.Identity, logger)
	RegisterUserProfileRoutes(r, svc.Directory, svc.Profiles, logger)
	RegisterAnnouncementRoutes(r, svc.Announcements, logger)
	RegisterS3Routes(r, svc.Profiles, logger)
}

func isOptions(r *http.Request, _ *mux.RouteMatch) bool {
	return r.Method == http.MethodOptions
}
