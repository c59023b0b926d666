package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Account messages
	ErrMsgPlayerNotFoundError = "Player not found"

	// Gladiator messages
	ErrMsgGladiatorNotFoundError = "Gladiator not found"
	ErrMsgGladiatorInjuredError  = "Gladiator is wounded and cannot fight"
	ErrMsgBarracksFullError      = "Not enough room in the barracks. Upgrade the barracks."
	ErrMsgArchetypeLockedError   = "That gladiator type is not unlocked yet"
	ErrMsgAlreadyFullHealthError = "Gladiator is already at full health"

	// Inventory/shop messages
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgNotInInventoryError  = "Item not found in inventory"
	ErrMsgNoHealingPotionError = "No healing potions"

	// Building messages
	ErrMsgBuildingNotFoundError = "Building not found"

	// Resource messages
	ErrMsgNotEnoughGoldError   = "Not enough gold"
	ErrMsgNotEnoughEnergyError = "Not enough energy"

	// Daily reward messages
	ErrMsgAlreadyClaimedError = "Daily reward already claimed today"

	// Input messages
	ErrMsgInvalidInputError = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses: status code plus a message users can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrGladiatorNotFound):
		return http.StatusNotFound, ErrMsgGladiatorNotFoundError
	case errors.Is(err, domain.ErrGladiatorInjured):
		return http.StatusBadRequest, ErrMsgGladiatorInjuredError
	case errors.Is(err, domain.ErrBarracksFull):
		return http.StatusBadRequest, ErrMsgBarracksFullError
	case errors.Is(err, domain.ErrArchetypeLocked):
		return http.StatusBadRequest, ErrMsgArchetypeLockedError
	case errors.Is(err, domain.ErrAlreadyFullHealth):
		return http.StatusBadRequest, ErrMsgAlreadyFullHealthError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusNotFound, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrNoHealingPotion):
		return http.StatusBadRequest, ErrMsgNoHealingPotionError
	case errors.Is(err, domain.ErrBuildingNotFound):
		return http.StatusNotFound, ErrMsgBuildingNotFoundError
	case errors.Is(err, domain.ErrInsufficientGold):
		return http.StatusBadRequest, ErrMsgNotEnoughGoldError
	case errors.Is(err, domain.ErrInsufficientEnergy):
		return http.StatusBadRequest, ErrMsgNotEnoughEnergyError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusBadRequest, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Return short custom messages as-is; hide long or system-level errors.
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
