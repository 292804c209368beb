package handler

import (
	"net/http"

	"github.com/greenpatch/sprout/internal/logger"
)

// MeRequest represents the session bootstrap request
type MeRequest struct {
	InitData string `json:"initData" validate:"required"`
}

// Me handles the session bootstrap endpoint
// @Summary Load or create the caller's farm
// @Description Verifies the Telegram initData payload and returns the caller's save, creating a default one on first contact
// @Tags session
// @Accept json
// @Produce json
// @Param request body MeRequest true "Session request"
// @Success 200 {object} SessionResponse "Current save state"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Verification failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/me [post]
func (h *FarmHandler) Me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req MeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Me"); err != nil {
		return
	}

	identity, err := h.verifier.Verify(req.InitData)
	if err != nil {
		log.Warn("InitData verification failed", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	userID := userKey(identity)
	state, created, err := h.gameSvc.GetOrCreateSave(r.Context(), userID)
	if err != nil {
		log.Error("Failed to load save", "error", err, "user_id", userID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Session started", "user_id", userID, "created", created)
	respondJSON(w, http.StatusOK, SessionResponse{
		OK:     true,
		UserID: userID,
		Data:   state,
	})
}
