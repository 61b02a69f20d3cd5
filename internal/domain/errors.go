package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Categories
	ErrMsgInsufficientResource = "insufficient resource"
	ErrMsgGateExhausted        = "gate exhausted"
	ErrMsgInvalidTarget        = "invalid target"
	ErrMsgInvariantViolation   = "invariant violation"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgPlayerExists   = "player already exists"
	ErrMsgUnknownClass   = "unknown class"

	// Resource errors
	ErrMsgNotEnoughGold     = "not enough gold"
	ErrMsgNotEnoughCrystals = "not enough crystals"
	ErrMsgNotEnoughEnergy   = "not enough energy"
	ErrMsgNotEnoughItems    = "not enough items to upgrade"

	// Gate errors
	ErrMsgArenaExhausted    = "no arena fights left today"
	ErrMsgTowerExhausted    = "no tower attempts left today"
	ErrMsgWheelUsed         = "wheel already spun today"
	ErrMsgDailyClaimed      = "daily reward already claimed"
	ErrMsgExpeditionActive  = "an expedition is already in progress"
	ErrMsgExpeditionNotDone = "expedition is not finished yet"
	ErrMsgListingCapReached = "listing limit reached"

	// Target errors
	ErrMsgZoneNotFound       = "zone not found"
	ErrMsgZoneLocked         = "zone is locked for this level"
	ErrMsgItemNotFound       = "item not found"
	ErrMsgItemEquipped       = "item is equipped"
	ErrMsgListingNotFound    = "listing not found"
	ErrMsgOwnListing         = "cannot buy your own listing"
	ErrMsgNoOpponent         = "no opponent available"
	ErrMsgNoExpedition       = "no active expedition"
	ErrMsgExpeditionNotFound = "expedition type not found"
	ErrMsgQuestNotFound      = "quest not found"
	ErrMsgQuestNotComplete   = "quest is not complete"
	ErrMsgQuestClaimed       = "quest reward already claimed"
	ErrMsgNotUpgradable      = "rarity cannot be upgraded"
	ErrMsgInvalidPrice       = "price must be positive"
	ErrMsgInvalidInput       = "invalid input"

	// Invariant errors
	ErrMsgNegativeBalance  = "negative balance"
	ErrMsgNegativeAmount   = "negative amount"
	ErrMsgEnergyOutOfRange = "energy out of range"
	ErrMsgXPOutOfRange     = "xp out of range"
	ErrMsgDoubleEquip      = "more than one item equipped in slot"
)

// Error categories. Every error returned by the engine for a rejected action
// wraps exactly one of these, so callers can branch with errors.Is.
var (
	ErrInsufficientResource = errors.New(ErrMsgInsufficientResource)
	ErrGateExhausted        = errors.New(ErrMsgGateExhausted)
	ErrInvalidTarget        = errors.New(ErrMsgInvalidTarget)
	ErrInvariantViolation   = errors.New(ErrMsgInvariantViolation)
)

// Specific domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = categorized(ErrInvalidTarget, ErrMsgPlayerNotFound)
	ErrPlayerExists   = categorized(ErrInvalidTarget, ErrMsgPlayerExists)
	ErrUnknownClass   = categorized(ErrInvalidTarget, ErrMsgUnknownClass)

	// Resource errors
	ErrNotEnoughGold     = categorized(ErrInsufficientResource, ErrMsgNotEnoughGold)
	ErrNotEnoughCrystals = categorized(ErrInsufficientResource, ErrMsgNotEnoughCrystals)
	ErrNotEnoughEnergy   = categorized(ErrInsufficientResource, ErrMsgNotEnoughEnergy)
	ErrNotEnoughItems    = categorized(ErrInsufficientResource, ErrMsgNotEnoughItems)

	// Gate errors
	ErrArenaExhausted    = categorized(ErrGateExhausted, ErrMsgArenaExhausted)
	ErrTowerExhausted    = categorized(ErrGateExhausted, ErrMsgTowerExhausted)
	ErrWheelUsed         = categorized(ErrGateExhausted, ErrMsgWheelUsed)
	ErrDailyClaimed      = categorized(ErrGateExhausted, ErrMsgDailyClaimed)
	ErrExpeditionActive  = categorized(ErrGateExhausted, ErrMsgExpeditionActive)
	ErrExpeditionNotDone = categorized(ErrGateExhausted, ErrMsgExpeditionNotDone)
	ErrListingCapReached = categorized(ErrGateExhausted, ErrMsgListingCapReached)

	// Target errors
	ErrZoneNotFound       = categorized(ErrInvalidTarget, ErrMsgZoneNotFound)
	ErrZoneLocked         = categorized(ErrInvalidTarget, ErrMsgZoneLocked)
	ErrItemNotFound       = categorized(ErrInvalidTarget, ErrMsgItemNotFound)
	ErrItemEquipped       = categorized(ErrInvalidTarget, ErrMsgItemEquipped)
	ErrListingNotFound    = categorized(ErrInvalidTarget, ErrMsgListingNotFound)
	ErrOwnListing         = categorized(ErrInvalidTarget, ErrMsgOwnListing)
	ErrNoOpponent         = categorized(ErrInvalidTarget, ErrMsgNoOpponent)
	ErrNoExpedition       = categorized(ErrInvalidTarget, ErrMsgNoExpedition)
	ErrExpeditionNotFound = categorized(ErrInvalidTarget, ErrMsgExpeditionNotFound)
	ErrQuestNotFound      = categorized(ErrInvalidTarget, ErrMsgQuestNotFound)
	ErrQuestNotComplete   = categorized(ErrInvalidTarget, ErrMsgQuestNotComplete)
	ErrQuestClaimed       = categorized(ErrInvalidTarget, ErrMsgQuestClaimed)
	ErrNotUpgradable      = categorized(ErrInvalidTarget, ErrMsgNotUpgradable)
	ErrInvalidPrice       = categorized(ErrInvalidTarget, ErrMsgInvalidPrice)
	ErrInvalidInput       = categorized(ErrInvalidTarget, ErrMsgInvalidInput)

	// Invariant errors
	ErrNegativeBalance  = categorized(ErrInvariantViolation, ErrMsgNegativeBalance)
	ErrNegativeAmount   = categorized(ErrInvariantViolation, ErrMsgNegativeAmount)
	ErrEnergyOutOfRange = categorized(ErrInvariantViolation, ErrMsgEnergyOutOfRange)
	ErrXPOutOfRange     = categorized(ErrInvariantViolation, ErrMsgXPOutOfRange)
	ErrDoubleEquip      = categorized(ErrInvariantViolation, ErrMsgDoubleEquip)
)

func categorized(category error, msg string) error {
	return fmt.Errorf("%w: %s", category, msg)
}

// IsRejection reports whether err is a recoverable game-rule rejection that
// left state untouched.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInsufficientResource) ||
		errors.Is(err, ErrGateExhausted) ||
		errors.Is(err, ErrInvalidTarget)
}

// IsDomainError reports whether err belongs to any error category, including
// invariant violations. Errors outside the taxonomy come from storage.
func IsDomainError(err error) bool {
	return IsRejection(err) || errors.Is(err, ErrInvariantViolation)
}
