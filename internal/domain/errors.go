package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// The verification and action messages are part of the wire contract;
// the mini-app client pattern-matches on these exact strings.
const (
	// Identity verification errors
	ErrMsgMissingInitData  = "Missing initData"
	ErrMsgMissingBotToken  = "Missing bot token"
	ErrMsgMissingSignature = "Missing hash"
	ErrMsgInvalidSignature = "Invalid signature"
	ErrMsgMissingUser      = "Missing user"
	ErrMsgBadUserPayload   = "Bad user JSON"
	ErrMsgMissingUserID    = "Missing user.id"

	// Action errors
	ErrMsgUnknownCrop   = "Bad cropId"
	ErrMsgUnknownAction = "Unknown action"

	// Save errors
	ErrMsgInvalidSave  = "Bad save"
	ErrMsgSaveNotFound = "save not found"
)

// Common domain errors.
// These are used consistently across all layers; wrap them with
// fmt.Errorf("%w: ...", domain.ErrXxx) for additional context.
var (
	// Identity verification errors
	ErrMissingInitData  = errors.New(ErrMsgMissingInitData)
	ErrMissingBotToken  = errors.New(ErrMsgMissingBotToken)
	ErrMissingSignature = errors.New(ErrMsgMissingSignature)
	ErrInvalidSignature = errors.New(ErrMsgInvalidSignature)
	ErrMissingUser      = errors.New(ErrMsgMissingUser)
	ErrBadUserPayload   = errors.New(ErrMsgBadUserPayload)
	ErrMissingUserID    = errors.New(ErrMsgMissingUserID)

	// Action errors
	ErrUnknownCrop   = errors.New(ErrMsgUnknownCrop)
	ErrUnknownAction = errors.New(ErrMsgUnknownAction)

	// Save errors
	ErrInvalidSave  = errors.New(ErrMsgInvalidSave)
	ErrSaveNotFound = errors.New(ErrMsgSaveNotFound)
)
