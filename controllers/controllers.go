package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"commulink_server/services"

	"go.uber.org/zap"
)

// MaxBodyBytes bounds JSON request bodies. Profiles may carry a base64 avatar.
const MaxBodyBytes = 10 << 20

const (
	msgInvalidPayload = "Invalid request payload"
	msgInternal       = "Internal Server Error"
)

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "Welcome to CommuLink")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// decodeJSON reads a bounded JSON body into dst. It reports false after writing a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, logger *zap.Logger) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Debug("failed to decode request body", zap.String("path", r.URL.Path), zap.Error(err))
		writeMessage(w, http.StatusBadRequest, msgInvalidPayload)
		return false
	}
	return true
}

// writeServiceError maps service errors to responses. Validation failures are echoed to the
// client; anything else is logged and reported without detail.
func writeServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeMessage(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, services.ErrAnnouncementConflict):
		writeMessage(w, http.StatusConflict, "An announcement was posted at the same instant, please retry")
	case errors.Is(err, services.ErrBlobStorageDisabled):
		writeMessage(w, http.StatusServiceUnavailable, "Direct avatar uploads are not enabled")
	default:
		logger.Error("request failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, msgInternal)
	}
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
