package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound = "account not found"

	// Gladiator errors
	ErrMsgGladiatorNotFound = "gladiator not found"
	ErrMsgGladiatorInjured  = "gladiator cannot fight"
	ErrMsgBarracksFull      = "barracks are full"
	ErrMsgArchetypeLocked   = "archetype is locked"
	ErrMsgAlreadyFullHealth = "gladiator is already at full health"

	// Inventory/shop errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgNotInInventory  = "item not in inventory"
	ErrMsgNoHealingPotion = "no healing potions"

	// Building errors
	ErrMsgBuildingNotFound = "building not found"

	// Resource errors
	ErrMsgInsufficientGold   = "insufficient gold"
	ErrMsgInsufficientEnergy = "insufficient energy"

	// Daily reward errors
	ErrMsgAlreadyClaimed = "daily reward already claimed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)

	// Gladiator errors
	ErrGladiatorNotFound = errors.New(ErrMsgGladiatorNotFound)
	ErrGladiatorInjured  = errors.New(ErrMsgGladiatorInjured)
	ErrBarracksFull      = errors.New(ErrMsgBarracksFull)
	ErrArchetypeLocked   = errors.New(ErrMsgArchetypeLocked)
	ErrAlreadyFullHealth = errors.New(ErrMsgAlreadyFullHealth)

	// Inventory/shop errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrNotInInventory  = errors.New(ErrMsgNotInInventory)
	ErrNoHealingPotion = errors.New(ErrMsgNoHealingPotion)

	// Building errors
	ErrBuildingNotFound = errors.New(ErrMsgBuildingNotFound)

	// Resource errors
	ErrInsufficientGold   = errors.New(ErrMsgInsufficientGold)
	ErrInsufficientEnergy = errors.New(ErrMsgInsufficientEnergy)

	// Daily reward errors
	ErrAlreadyClaimed = errors.New(ErrMsgAlreadyClaimed)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
