package handler

import (
	"net/http"

	"github.com/greenpatch/sprout/internal/domain"
	"github.com/greenpatch/sprout/internal/logger"
)

// ActionRequest represents one player action against the caller's farm
type ActionRequest struct {
	InitData string `json:"initData" validate:"required"`
	Action   string `json:"action" validate:"required,max=32"`
	CropID   string `json:"cropId,omitempty" validate:"omitempty,cropid"`
	Slot     int    `json:"slot,omitempty"`
}

// Action handles the farm action endpoint
// @Summary Apply a farm action
// @Description Verifies the caller and applies one action (buySeed, buyPlot, plant, harvest) to their save. Rejected actions return 200 with ok=false and the save untouched.
// @Tags session
// @Accept json
// @Produce json
// @Param request body ActionRequest true "Action request"
// @Success 200 {object} SessionResponse "Updated save state, or a rejection"
// @Failure 400 {object} ErrorResponse "Invalid request, unknown action, or unknown crop"
// @Failure 401 {object} ErrorResponse "Verification failed"
// @Failure 404 {object} ErrorResponse "No save exists for this user"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/action [post]
func (h *FarmHandler) Action(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Action"); err != nil {
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
	result, err := h.gameSvc.ApplyAction(r.Context(), userID, domain.ActionParams{
		Action: req.Action,
		CropID: req.CropID,
		Slot:   req.Slot,
	})
	if err != nil {
		log.Error("Action failed", "error", err, "user_id", userID, "action", req.Action)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	if result.Rejected {
		respondJSON(w, http.StatusOK, SessionResponse{
			OK:       false,
			UserID:   userID,
			Error:    string(result.Reason),
			RemainMs: result.RemainMs,
		})
		return
	}

	respondJSON(w, http.StatusOK, SessionResponse{
		OK:     true,
		UserID: userID,
		Data:   result.Save,
	})
}
