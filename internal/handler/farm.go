package handler

import (
	"strconv"

	"github.com/greenpatch/sprout/internal/game"
	"github.com/greenpatch/sprout/internal/telegram"
)

// FarmHandler handles the mini-app session endpoints
type FarmHandler struct {
	verifier *telegram.Verifier
	gameSvc  game.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(verifier *telegram.Verifier, gameSvc game.Service) *FarmHandler {
	return &FarmHandler{
		verifier: verifier,
		gameSvc:  gameSvc,
	}
}

// userKey is the storage key for a verified Telegram user.
func userKey(id *telegram.Identity) string {
	return strconv.FormatInt(id.UserID, 10)
}
