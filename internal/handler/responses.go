package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category,omitempty"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the status and message it maps to.
// Rejections are logged at info, everything else at error.
func respondServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	status, resp := mapServiceError(err)
	log := logger.FromContext(ctx)
	if domain.IsRejection(err) {
		log.Info(LogMsgActionRejected, "error", err, "status", status)
	} else {
		log.Error(LogMsgActionFailed, "error", err, "status", status)
	}
	respondJSON(w, status, resp)
}

// serviceError pairs a specific engine error with its HTTP rendering.
type serviceError struct {
	err     error
	status  int
	message string
}

// specificErrors is checked in order before falling back to categories.
var specificErrors = []serviceError{
	{domain.ErrPlayerNotFound, http.StatusNotFound, ErrMsgPlayerNotFoundError},
	{domain.ErrPlayerExists, http.StatusConflict, ErrMsgPlayerExistsError},
	{domain.ErrUnknownClass, http.StatusBadRequest, ErrMsgUnknownClassError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
	{domain.ErrInvalidPrice, http.StatusBadRequest, ErrMsgInvalidPriceError},

	{domain.ErrNotEnoughGold, http.StatusPaymentRequired, ErrMsgNotEnoughGoldError},
	{domain.ErrNotEnoughCrystals, http.StatusPaymentRequired, ErrMsgNotEnoughCrystalsError},
	{domain.ErrNotEnoughEnergy, http.StatusPaymentRequired, ErrMsgNotEnoughEnergyError},
	{domain.ErrNotEnoughItems, http.StatusPaymentRequired, ErrMsgNotEnoughItemsError},

	{domain.ErrArenaExhausted, http.StatusTooManyRequests, ErrMsgArenaExhaustedError},
	{domain.ErrTowerExhausted, http.StatusTooManyRequests, ErrMsgTowerExhaustedError},
	{domain.ErrWheelUsed, http.StatusTooManyRequests, ErrMsgWheelUsedError},
	{domain.ErrDailyClaimed, http.StatusTooManyRequests, ErrMsgDailyClaimedError},
	{domain.ErrExpeditionActive, http.StatusTooManyRequests, ErrMsgExpeditionActiveError},
	{domain.ErrExpeditionNotDone, http.StatusTooManyRequests, ErrMsgExpeditionNotDoneError},
	{domain.ErrListingCapReached, http.StatusTooManyRequests, ErrMsgListingCapReachedError},

	{domain.ErrZoneNotFound, http.StatusNotFound, ErrMsgZoneNotFoundError},
	{domain.ErrZoneLocked, http.StatusForbidden, ErrMsgZoneLockedError},
	{domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
	{domain.ErrItemEquipped, http.StatusConflict, ErrMsgItemEquippedError},
	{domain.ErrListingNotFound, http.StatusNotFound, ErrMsgListingNotFoundError},
	{domain.ErrOwnListing, http.StatusConflict, ErrMsgOwnListingError},
	{domain.ErrNoOpponent, http.StatusNotFound, ErrMsgNoOpponentError},
	{domain.ErrNoExpedition, http.StatusNotFound, ErrMsgNoExpeditionError},
	{domain.ErrExpeditionNotFound, http.StatusNotFound, ErrMsgExpeditionNotFoundError},
	{domain.ErrQuestNotFound, http.StatusNotFound, ErrMsgQuestNotFoundError},
	{domain.ErrQuestNotComplete, http.StatusConflict, ErrMsgQuestNotCompleteError},
	{domain.ErrQuestClaimed, http.StatusConflict, ErrMsgQuestClaimedError},
	{domain.ErrNotUpgradable, http.StatusBadRequest, ErrMsgNotUpgradableError},
}

// mapServiceError converts an engine error into a status code and a
// response that never leaks internal details.
func mapServiceError(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgUnknownError, Category: CategoryInternal}
	}

	category := categoryOf(err)
	for _, se := range specificErrors {
		if errors.Is(err, se.err) {
			return se.status, ErrorResponse{Error: se.message, Category: category}
		}
	}

	switch category {
	case CategoryInsufficientResource:
		return http.StatusPaymentRequired, ErrorResponse{Error: ErrMsgInsufficientResourceError, Category: category}
	case CategoryGateExhausted:
		return http.StatusTooManyRequests, ErrorResponse{Error: ErrMsgGateExhaustedError, Category: category}
	case CategoryInvalidTarget:
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgInvalidTargetError, Category: category}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError, Category: CategoryInternal}
}

func categoryOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientResource):
		return CategoryInsufficientResource
	case errors.Is(err, domain.ErrGateExhausted):
		return CategoryGateExhausted
	case errors.Is(err, domain.ErrInvalidTarget):
		return CategoryInvalidTarget
	}
	return CategoryInternal
}
