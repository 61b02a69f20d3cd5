package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	levelsBefore := testutil.ToFloat64(LevelUps)
	soldBefore := testutil.ToFloat64(AuctionSales.WithLabelValues("epic"))
	feesBefore := testutil.ToFloat64(AuctionFeesBurned)
	gachaBefore := testutil.ToFloat64(GachaItems.WithLabelValues("premium", "rare"))
	goldBefore := testutil.ToFloat64(GoldGranted.WithLabelValues("wheel"))

	require.NoError(t, bus.Publish(ctx, event.New(event.PlayerLeveledUp, "p1", event.LevelUpPayloadV1{Levels: []int{2, 3}})))
	require.NoError(t, bus.Publish(ctx, event.New(event.ListingSold, "p1", event.ListingPayloadV1{
		Rarity: domain.RarityEpic, Price: 1000, SellerProceeds: 900,
	})))
	require.NoError(t, bus.Publish(ctx, event.New(event.GachaPulled, "p1", event.GachaPayloadV1{
		Tier: domain.GachaPremium, Rarities: []domain.Rarity{domain.RarityRare, domain.RarityRare},
	})))
	require.NoError(t, bus.Publish(ctx, event.New(event.WheelSpun, "p1", event.RewardPayloadV1{
		Source: "wheel", Rewards: domain.Rewards{Gold: 250},
	})))

	assert.Equal(t, levelsBefore+2, testutil.ToFloat64(LevelUps))
	assert.Equal(t, soldBefore+1, testutil.ToFloat64(AuctionSales.WithLabelValues("epic")))
	assert.Equal(t, feesBefore+100, testutil.ToFloat64(AuctionFeesBurned))
	assert.Equal(t, gachaBefore+2, testutil.ToFloat64(GachaItems.WithLabelValues("premium", "rare")))
	assert.Equal(t, goldBefore+250, testutil.ToFloat64(GoldGranted.WithLabelValues("wheel")))
}

func TestEventMetricsCollector_BadPayloadIsIgnored(t *testing.T) {
	err := NewEventMetricsCollector().HandleEvent(context.Background(),
		event.New(event.ItemSold, "p1", "not a payload"))
	assert.NoError(t, err)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{id}", "418")))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}
