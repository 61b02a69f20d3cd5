package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/engine"
	"github.com/osse101/TextRealm_Go/internal/handler"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/metrics"
	"github.com/osse101/TextRealm_Go/internal/sse"
)

// Options configures the HTTP surface.
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	// Feed serves GET /api/v1/events when set.
	Feed           *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc engine.Service, cat *catalog.Catalog, store handler.Pinger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc, cat, store),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and every route.
func NewRouter(opts Options, svc engine.Service, cat *catalog.Catalog, store handler.Pinger) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/players", handler.HandleCreatePlayer(svc))

		r.Route("/players/{id}", func(r chi.Router) {
			r.Get("/", handler.HandleGetPlayer(svc))

			r.Post("/hunt", handler.HandleHunt(svc))
			r.Post("/arena", handler.HandleArena(svc))
			r.Post("/tower", handler.HandleTower(svc))

			r.Post("/gacha", handler.HandleGacha(svc))
			r.Post("/gacha/10x", handler.HandleGacha10x(svc))
			r.Post("/wheel", handler.HandleWheel(svc))

			r.Get("/expedition", handler.HandleGetExpedition(svc))
			r.Post("/expedition", handler.HandleStartExpedition(svc))
			r.Post("/expedition/collect", handler.HandleCollectExpedition(svc))

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", handler.HandleListInventory(svc))
				r.Post("/{itemID}/equip", handler.HandleEquip(svc))
				r.Post("/{itemID}/unequip", handler.HandleUnequip(svc))
				r.Post("/{itemID}/sell", handler.HandleSell(svc))
			})
			r.Post("/upgrade", handler.HandleUpgrade(svc))

			r.Post("/daily", handler.HandleDailyLogin(svc))
			r.Get("/quests", handler.HandleGetQuests(svc))
			r.Post("/quests/{questID}/claim", handler.HandleClaimQuest(svc))
			r.Get("/rank", handler.HandleRank(svc))

			r.Route("/auction", func(r chi.Router) {
				r.Get("/", handler.HandleListMyListings(svc))
				r.Post("/", handler.HandleCreateListing(svc))
				r.Post("/{listingID}/buy", handler.HandleBuyListing(svc))
				r.Delete("/{listingID}", handler.HandleCancelListing(svc))
			})
		})

		r.Get("/auction", handler.HandleListAuction(svc))
		r.Get("/leaderboard", handler.HandleLeaderboard(svc))
		if opts.Feed != nil {
			r.Get("/events", sse.Handler(opts.Feed))
		}

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/zones", handler.HandleListZones(cat))
			r.Get("/expeditions", handler.HandleListExpeditions(cat))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
