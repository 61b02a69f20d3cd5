package handler

import (
	"net/http"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/engine"
)

// CreateListingRequest is the body of POST /players/{id}/auction
type CreateListingRequest struct {
	ItemID int64 `json:"item_id" validate:"required,min=1"`
	Price  int   `json:"price" validate:"required,min=1,max=1000000000"`
}

// HandleListAuction pages through open listings, newest first
// @Summary List auction
// @Tags auction
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Router /auction [get]
func HandleListAuction(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntQueryParam(r, w, QueryLimit, 0)
		if !ok {
			return
		}
		offset, ok := GetOptionalIntQueryParam(r, w, QueryOffset, 0)
		if !ok {
			return
		}

		listings, err := svc.ListAuction(r.Context(), limit, offset)
		if err != nil {
			respondServiceError(r.Context(), w, err)
			return
		}
		respondJSON(w, http.StatusOK, listings)
	}
}

// HandleListMyListings shows a seller's open listings
// @Summary List own listings
// @Tags auction
// @Produce json
// @Param id path string true "Seller ID"
// @Success 200 {array} domain.Listing
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/auction [get]
func HandleListMyListings(svc engine.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, id string) ([]domain.Listing, error) {
		return svc.ListMyListings(r.Context(), id)
	})
}

// HandleCreateListing moves an item from inventory to the auction house
// @Summary Create listing
// @Tags auction
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param request body CreateListingRequest true "Item and price"
// @Success 201 {object} domain.Listing
// @Failure 409 {object} ErrorResponse "Item equipped"
// @Failure 429 {object} ErrorResponse "Listing cap reached"
// @Router /players/{id}/auction [post]
func HandleCreateListing(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateListingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create listing"); err != nil {
			return
		}
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		listing, err := svc.CreateListing(r.Context(), id, req.ItemID, req.Price)
		if err != nil {
			respondServiceError(r.Context(), w, err)
			return
		}
		respondJSON(w, http.StatusCreated, listing)
	}
}

// listingAction resolves {listingID} before running call.
func listingAction[T any](call func(r *http.Request, id string, listingID int64) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, ok := int64Param(w, r, ParamListingID)
		if !ok {
			return
		}
		playerAction(func(r *http.Request, id string) (T, error) {
			return call(r, id, listingID)
		})(w, r)
	}
}

// HandleBuyListing buys a listing
// @Summary Buy listing
// @Tags auction
// @Produce json
// @Param id path string true "Buyer ID"
// @Param listingID path int true "Listing ID"
// @Success 200 {object} domain.PurchaseResult
// @Failure 402 {object} ErrorResponse "Not enough gold"
// @Failure 404 {object} ErrorResponse "Listing gone"
// @Router /players/{id}/auction/{listingID}/buy [post]
func HandleBuyListing(svc engine.Service) http.HandlerFunc {
	return listingAction(func(r *http.Request, id string, listingID int64) (*domain.PurchaseResult, error) {
		return svc.BuyListing(r.Context(), id, listingID)
	})
}

// HandleCancelListing returns a listing's item to its seller
// @Summary Cancel listing
// @Tags auction
// @Produce json
// @Param id path string true "Seller ID"
// @Param listingID path int true "Listing ID"
// @Success 200 {object} domain.InventoryItem
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/auction/{listingID} [delete]
func HandleCancelListing(svc engine.Service) http.HandlerFunc {
	return listingAction(func(r *http.Request, id string, listingID int64) (*domain.InventoryItem, error) {
		return svc.CancelListing(r.Context(), id, listingID)
	})
}
