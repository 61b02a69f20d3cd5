package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/clock"
	"github.com/osse101/TextRealm_Go/internal/database/memory"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/engine"
	"github.com/osse101/TextRealm_Go/internal/handler"
	"github.com/osse101/TextRealm_Go/internal/random"
	"github.com/osse101/TextRealm_Go/internal/sse"
)

const testAPIKey = "test-key"

type apiClient struct {
	t      *testing.T
	router http.Handler
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()
	cat := catalog.MustDefault()
	store := memory.NewStore()
	clk := &clock.Mock{T: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	svc := engine.NewService(store, cat, clk, random.Seeded(7), engine.Options{})
	return &apiClient{t: t, router: NewRouter(Options{APIKey: testAPIKey}, svc, cat, store)}
}

func (c *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRouter_PublicEndpoints(t *testing.T) {
	c := newAPIClient(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		c.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_PlayerLifecycle(t *testing.T) {
	c := newAPIClient(t)

	rec := c.do(http.MethodPost, "/api/v1/players", handler.CreatePlayerRequest{ID: "p1", Name: "ada", Class: "Warrior"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	state := decode[domain.PlayerState](t, rec)
	assert.Equal(t, "Ada", state.Player.Name)
	assert.Equal(t, domain.ClassWarrior, state.Player.Class)
	assert.Equal(t, 500, state.Player.Gold)

	rec = c.do(http.MethodPost, "/api/v1/players", handler.CreatePlayerRequest{ID: "p1", Class: "mage"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = c.do(http.MethodGet, "/api/v1/players/p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, decode[domain.PlayerState](t, rec).CurrentEnergy)

	rec = c.do(http.MethodGet, "/api/v1/players/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, handler.CategoryInvalidTarget, decode[handler.ErrorResponse](t, rec).Category)
}

func TestRouter_GachaAndGates(t *testing.T) {
	c := newAPIClient(t)
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/v1/players",
		handler.CreatePlayerRequest{ID: "p1", Class: "mage"}).Code)

	rec := c.do(http.MethodPost, "/api/v1/players/p1/gacha", handler.GachaRequest{Tier: "standard"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decode[domain.GachaResult](t, rec).Items, 1)

	rec = c.do(http.MethodPost, "/api/v1/players/p1/gacha", handler.GachaRequest{Tier: "standard"})
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, handler.ErrMsgNotEnoughGoldError, decode[handler.ErrorResponse](t, rec).Error)

	rec = c.do(http.MethodPost, "/api/v1/players/p1/gacha/10x", nil)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	rec = c.do(http.MethodPost, "/api/v1/players/p1/wheel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = c.do(http.MethodPost, "/api/v1/players/p1/wheel", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, handler.CategoryGateExhausted, decode[handler.ErrorResponse](t, rec).Category)

	rec = c.do(http.MethodGet, "/api/v1/players/p1/inventory", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[[]domain.InventoryItem](t, rec))
}

func TestRouter_AuctionRoundTrip(t *testing.T) {
	c := newAPIClient(t)
	for _, id := range []string{"seller", "buyer"} {
		require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/v1/players",
			handler.CreatePlayerRequest{ID: id, Class: "assassin"}).Code)
	}
	rec := c.do(http.MethodPost, "/api/v1/players/seller/gacha", handler.GachaRequest{Tier: "standard"})
	require.Equal(t, http.StatusOK, rec.Code)
	item := decode[domain.GachaResult](t, rec).Items[0]

	rec = c.do(http.MethodPost, "/api/v1/players/seller/auction", handler.CreateListingRequest{ItemID: item.ID, Price: 100})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	listing := decode[domain.Listing](t, rec)

	rec = c.do(http.MethodGet, "/api/v1/players/seller/auction", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decode[[]domain.Listing](t, rec)
	require.Len(t, mine, 1)
	assert.Equal(t, listing.ID, mine[0].ID)

	rec = c.do(http.MethodGet, "/api/v1/auction?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Listing](t, rec), 1)

	path := "/api/v1/players/buyer/auction/" + jsonNumber(listing.ID) + "/buy"
	rec = c.do(http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 90, decode[domain.PurchaseResult](t, rec).SellerProceeds)

	rec = c.do(http.MethodPost, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_BadRequests(t *testing.T) {
	c := newAPIClient(t)
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/v1/players",
		handler.CreatePlayerRequest{ID: "p1", Class: "paladin"}).Code)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"unknown class", http.MethodPost, "/api/v1/players", handler.CreatePlayerRequest{ID: "p2", Class: "bard"}},
		{"bad player id", http.MethodPost, "/api/v1/players", handler.CreatePlayerRequest{ID: "a b", Class: "mage"}},
		{"missing zone", http.MethodPost, "/api/v1/players/p1/hunt", map[string]any{}},
		{"unknown field", http.MethodPost, "/api/v1/players/p1/hunt", map[string]any{"zone": 1}},
		{"non-numeric item", http.MethodPost, "/api/v1/players/p1/inventory/abc/sell", nil},
		{"bad rarity", http.MethodPost, "/api/v1/players/p1/upgrade", handler.UpgradeRequest{Rarity: "mythic"}},
		{"bad limit", http.MethodGet, "/api/v1/leaderboard?limit=-1", nil},
		{"bad ranking", http.MethodGet, "/api/v1/leaderboard?by=gold", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := c.do(tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_Catalog(t *testing.T) {
	c := newAPIClient(t)

	rec := c.do(http.MethodGet, "/api/v1/catalog/zones", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	zones := decode[[]handler.ZoneInfo](t, rec)
	require.NotEmpty(t, zones)
	assert.Equal(t, "Green Fields", zones[0].Name)

	rec = c.do(http.MethodGet, "/api/v1/catalog/expeditions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[[]handler.ExpeditionInfo](t, rec))
}

func TestRouter_EventFeed(t *testing.T) {
	cat := catalog.MustDefault()
	store := memory.NewStore()
	svc := engine.NewService(store, cat, nil, random.Seeded(1), engine.Options{})

	without := NewRouter(Options{APIKey: testAPIKey}, svc, cat, store)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	without.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	feed := sse.NewHub()
	feed.Start()
	t.Cleanup(feed.Stop)
	with := NewRouter(Options{APIKey: testAPIKey, Feed: feed}, svc, cat, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/events", nil).WithContext(ctx)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec = httptest.NewRecorder()
	with.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "event: "+sse.EventTypeConnected)
}

func jsonNumber(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
