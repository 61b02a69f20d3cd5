package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/TextRealm_Go/internal/logger"
)

// Path and query parameter names
const (
	ParamPlayerID  = "id"
	ParamItemID    = "itemID"
	ParamListingID = "listingID"
	ParamQuestID   = "questID"

	QueryLimit  = "limit"
	QueryOffset = "offset"
	QueryBy     = "by"
	QueryLog    = "log"
)

// MaxPlayerIDLength bounds player ids accepted on the wire.
const MaxPlayerIDLength = 64

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
//	var req CreatePlayerRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// playerIDParam returns the {id} path parameter, writing 400 when it is not
// a well-formed player id.
func playerIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, ParamPlayerID)
	if !isPlayerID(id) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, ParamPlayerID))
		return "", false
	}
	return id, true
}

// int64Param parses a positive integer path parameter.
func int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || v <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return v, true
}

// GetQueryParam retrieves a required query parameter, writing 400 if it is
// missing.
func GetQueryParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		logger.FromContext(r.Context()).Warn(LogMsgMissingQueryParam, "param", name)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return "", false
	}
	return value, true
}

// GetOptionalIntQueryParam parses an optional non-negative integer query
// parameter, returning def when it is absent.
func GetOptionalIntQueryParam(r *http.Request, w http.ResponseWriter, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, false
	}
	return v, true
}
