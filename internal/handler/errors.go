package handler

// Generic HTTP error messages for client responses.
// Internal error details are never written to clients; handlers and tests
// reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
)

// User-facing messages for engine errors.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Category fallbacks
	ErrMsgInsufficientResourceError = "You cannot afford that"
	ErrMsgGateExhaustedError        = "Not available right now. Try again later"
	ErrMsgInvalidTargetError        = "That target does not exist or is not allowed"

	// Players
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgPlayerExistsError   = "A player with that id already exists"
	ErrMsgUnknownClassError   = "Unknown class"

	// Resources
	ErrMsgNotEnoughGoldError     = "Not enough gold"
	ErrMsgNotEnoughCrystalsError = "Not enough crystals"
	ErrMsgNotEnoughEnergyError   = "Not enough energy"
	ErrMsgNotEnoughItemsError    = "Not enough items of that rarity to upgrade"

	// Daily gates
	ErrMsgArenaExhaustedError    = "No arena fights left today"
	ErrMsgTowerExhaustedError    = "No tower attempts left today"
	ErrMsgWheelUsedError         = "You already spun the wheel today"
	ErrMsgDailyClaimedError      = "Daily reward already claimed"
	ErrMsgExpeditionActiveError  = "An expedition is already in progress"
	ErrMsgExpeditionNotDoneError = "Your expedition has not returned yet"
	ErrMsgListingCapReachedError = "You have too many active listings"

	// Targets
	ErrMsgZoneNotFoundError       = "Zone not found"
	ErrMsgZoneLockedError         = "Your level is too low for that zone"
	ErrMsgItemNotFoundError       = "Item not found"
	ErrMsgItemEquippedError       = "Unequip the item first"
	ErrMsgListingNotFoundError    = "Listing not found"
	ErrMsgOwnListingError         = "You cannot buy your own listing"
	ErrMsgNoOpponentError         = "No opponent available"
	ErrMsgNoExpeditionError       = "No active expedition"
	ErrMsgExpeditionNotFoundError = "Expedition type not found"
	ErrMsgQuestNotFoundError      = "Quest not found"
	ErrMsgQuestNotCompleteError   = "Quest is not complete"
	ErrMsgQuestClaimedError       = "Quest reward already claimed"
	ErrMsgNotUpgradableError      = "That rarity cannot be upgraded"
	ErrMsgInvalidPriceError       = "Price must be positive"
	ErrMsgInvalidInputError       = "Invalid request. Please check your inputs."
)

// Error categories reported in ErrorResponse.Category.
const (
	CategoryInsufficientResource = "insufficient_resource"
	CategoryGateExhausted        = "gate_exhausted"
	CategoryInvalidTarget        = "invalid_target"
	CategoryInternal             = "internal"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgActionRejected    = "Action rejected"
	LogMsgActionFailed      = "Action failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgMissingQueryParam = "Missing query parameter"
)
