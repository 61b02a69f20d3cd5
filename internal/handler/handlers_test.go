package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/engine"
	"github.com/osse101/TextRealm_Go/mocks"
)

var _ engine.Service = (*mocks.MockService)(nil)

// serve routes one request through chi so URL params resolve.
func serve(method, pattern, path string, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	return rec
}

func TestHandleCreatePlayer(t *testing.T) {
	t.Run("success lowercases class", func(t *testing.T) {
		svc := new(mocks.MockService)
		state := &domain.PlayerState{Player: domain.Player{ID: "p1", Name: "Ada", Class: domain.ClassMage}}
		svc.On("CreatePlayer", mock.Anything, "p1", "ada", domain.ClassMage).Return(state, nil)

		rec := serve(http.MethodPost, "/players", "/players", HandleCreatePlayer(svc),
			CreatePlayerRequest{ID: "p1", Name: "ada", Class: "MAGE"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := new(mocks.MockService)
		svc.On("CreatePlayer", mock.Anything, "p1", "", domain.ClassWarrior).Return(nil, domain.ErrPlayerExists)

		rec := serve(http.MethodPost, "/players", "/players", HandleCreatePlayer(svc),
			CreatePlayerRequest{ID: "p1", Class: "warrior"})

		assert.Equal(t, http.StatusConflict, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, ErrMsgPlayerExistsError, resp.Error)
	})

	t.Run("validation never reaches service", func(t *testing.T) {
		svc := new(mocks.MockService)

		rec := serve(http.MethodPost, "/players", "/players", HandleCreatePlayer(svc),
			CreatePlayerRequest{ID: "p1", Class: "bard"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Unknown class", resp.Fields["class"])
		svc.AssertNotCalled(t, "CreatePlayer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleHunt(t *testing.T) {
	svc := new(mocks.MockService)
	svc.On("PerformHunt", mock.Anything, "p1", 2).Return(nil, domain.ErrNotEnoughEnergy)

	rec := serve(http.MethodPost, "/players/{id}/hunt", "/players/p1/hunt", HandleHunt(svc), HuntRequest{ZoneID: 2})

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, CategoryInsufficientResource, resp.Category)
	svc.AssertExpectations(t)
}

func TestHandleArena_TruncatesCombatLog(t *testing.T) {
	log := make([]domain.CombatLogEntry, 30)
	for i := range log {
		log[i] = domain.CombatLogEntry{Round: i/2 + 1, Actor: domain.SideAttacker, Damage: 5}
	}
	newResult := func() *domain.ArenaResult {
		return &domain.ArenaResult{Combat: domain.CombatResult{Won: true, Rounds: 15, Log: append([]domain.CombatLogEntry(nil), log...)}}
	}

	tests := []struct {
		name  string
		path  string
		code  int
		lines int
	}{
		{"default", "/players/p1/arena", http.StatusOK, DefaultCombatLogLines},
		{"explicit", "/players/p1/arena?log=3", http.StatusOK, 3},
		{"more than available", "/players/p1/arena?log=100", http.StatusOK, 30},
		{"bad value", "/players/p1/arena?log=-1", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockService)
			svc.On("PerformArenaFight", mock.Anything, "p1").Return(newResult(), nil).Maybe()

			rec := serve(http.MethodPost, "/players/{id}/arena", tt.path, HandleArena(svc), nil)

			require.Equal(t, tt.code, rec.Code)
			if tt.code != http.StatusOK {
				svc.AssertNotCalled(t, "PerformArenaFight", mock.Anything, mock.Anything)
				return
			}
			var got domain.ArenaResult
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Len(t, got.Combat.Log, tt.lines)
			assert.Equal(t, 15, got.Combat.Rounds)
		})
	}
}

func TestHandleGacha(t *testing.T) {
	svc := new(mocks.MockService)
	res := &domain.GachaResult{Tier: domain.GachaPremium, Items: []domain.InventoryItem{{ID: 9, Rarity: domain.RarityEpic}}}
	svc.On("PullGacha", mock.Anything, "p1", domain.GachaPremium).Return(res, nil)

	rec := serve(http.MethodPost, "/players/{id}/gacha", "/players/p1/gacha", HandleGacha(svc), GachaRequest{Tier: "premium"})

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.GachaResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(9), got.Items[0].ID)
}

func TestHandleSell_PathParams(t *testing.T) {
	svc := new(mocks.MockService)
	svc.On("SellItem", mock.Anything, "p1", int64(42)).Return(&domain.SellResult{ItemID: 42, Price: 50, Balance: 550}, nil)
	h := HandleSell(svc)
	pattern := "/players/{id}/inventory/{itemID}/sell"

	rec := serve(http.MethodPost, pattern, "/players/p1/inventory/42/sell", h, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, path := range []string{"/players/p1/inventory/0/sell", "/players/p1/inventory/x/sell", "/players/p%20/inventory/1/sell"} {
		rec = serve(http.MethodPost, pattern, path, h, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
	svc.AssertNumberOfCalls(t, "SellItem", 1)
}

func TestHandleListAuction_Paging(t *testing.T) {
	svc := new(mocks.MockService)
	svc.On("ListAuction", mock.Anything, 5, 10).Return([]domain.Listing{}, nil)

	rec := serve(http.MethodGet, "/auction", "/auction?limit=5&offset=10", HandleListAuction(svc), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = serve(http.MethodGet, "/auction", "/auction?offset=-3", HandleListAuction(svc), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleListMyListings(t *testing.T) {
	svc := new(mocks.MockService)
	listings := []domain.Listing{{ID: 4, SellerID: "p1", Price: 90}, {ID: 2, SellerID: "p1", Price: 50}}
	svc.On("ListMyListings", mock.Anything, "p1").Return(listings, nil)
	svc.On("ListMyListings", mock.Anything, "ghost").Return(nil, domain.ErrPlayerNotFound)
	h := HandleListMyListings(svc)

	rec := serve(http.MethodGet, "/players/{id}/auction", "/players/p1/auction", h, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Listing
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, listings, got)

	rec = serve(http.MethodGet, "/players/{id}/auction", "/players/ghost/auction", h, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleCreateListing_PriceBounds(t *testing.T) {
	svc := new(mocks.MockService)
	svc.On("CreateListing", mock.Anything, "p1", int64(3), domain.MaxListingPrice).
		Return(&domain.Listing{ID: 1, Price: domain.MaxListingPrice}, nil)
	h := HandleCreateListing(svc)

	rec := serve(http.MethodPost, "/players/{id}/auction", "/players/p1/auction", h,
		CreateListingRequest{ItemID: 3, Price: domain.MaxListingPrice})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(http.MethodPost, "/players/{id}/auction", "/players/p1/auction", h,
		CreateListingRequest{ItemID: 3, Price: domain.MaxListingPrice + 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNumberOfCalls(t, "CreateListing", 1)
}

func TestHandleRank(t *testing.T) {
	svc := new(mocks.MockService)
	svc.On("GetPlayerRank", mock.Anything, "p1", domain.LeaderboardArena).Return(3, nil)

	rec := serve(http.MethodGet, "/players/{id}/rank", "/players/p1/rank?by=arena", HandleRank(svc), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got RankResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, RankResponse{PlayerID: "p1", By: domain.LeaderboardArena, Rank: 3}, got)
}

func TestHandleLeaderboard_DefaultsToLevel(t *testing.T) {
	svc := new(mocks.MockService)
	svc.On("GetLeaderboard", mock.Anything, domain.LeaderboardLevel, 0).Return([]domain.LeaderboardEntry{}, nil)

	rec := serve(http.MethodGet, "/leaderboard", "/leaderboard", HandleLeaderboard(svc), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
