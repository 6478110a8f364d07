package controllers

import (
	"net/http"

	"commulink_server/services"

	"go.uber.org/zap"
)

// AuthController handles community sign-in.
type AuthController struct {
	IdentityService *services.IdentityService
	Logger          *zap.Logger
}

func NewAuthController(identityService *services.IdentityService, logger *zap.Logger) *AuthController {
	return &AuthController{IdentityService: identityService, Logger: nopIfNil(logger)}
}

type loginRequest struct {
	CommunityID string `json:"communityId"`
	Username    string `json:"username"`
}

// Login signs a member into a community, registering them on first visit.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req, c.Logger) {
		return
	}

	session, err := c.IdentityService.Login(r.Context(), req.CommunityID, req.Username)
	if err != nil {
		writeServiceError(w, err, c.Logger.With(
			zap.String("communityId", req.CommunityID),
			zap.String("username", req.Username),
		))
		return
	}

	writeJSON(w, http.StatusOK, session)
}
