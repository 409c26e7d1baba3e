// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggofiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/wardconnect/go-billpay-backend/docs" // swagger spec, registered on import
	"github.com/wardconnect/go-billpay-backend/internal/config"
	"github.com/wardconnect/go-billpay-backend/internal/domain"
	"github.com/wardconnect/go-billpay-backend/internal/http/handlers"
	"github.com/wardconnect/go-billpay-backend/internal/http/middleware"
	"github.com/wardconnect/go-billpay-backend/internal/repo"
	"github.com/wardconnect/go-billpay-backend/internal/services"
)

// billStoreShim adapts the repository free functions to the
// services.BillStore interface expected by the BillingService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type billStoreShim struct{}

// GetBill proxies repo.GetBill.
func (billStoreShim) GetBill(ctx context.Context, db *gorm.DB, kind domain.BillKind, consumerID, phone string) (*domain.Bill, error) {
	return repo.GetBill(ctx, db, kind, consumerID, phone)
}

// GetGasDetail proxies repo.GetGasDetail.
func (billStoreShim) GetGasDetail(ctx context.Context, db *gorm.DB, phone string) (*domain.GasDetail, error) {
	return repo.GetGasDetail(ctx, db, phone)
}

// paymentLedgerShim adapts the repository free functions to the
// services.PaymentLedger interface expected by the PaymentService.
type paymentLedgerShim struct{}

// CreateTransaction proxies repo.CreateTransaction.
func (paymentLedgerShim) CreateTransaction(tx *gorm.DB, t *domain.Transaction) error {
	return repo.CreateTransaction(tx, t)
}

// MarkBillPaid proxies repo.MarkBillPaid.
func (paymentLedgerShim) MarkBillPaid(tx *gorm.DB, kind domain.BillKind, consumerID string) (int64, error) {
	return repo.MarkBillPaid(tx, kind, consumerID)
}

// txnLedgerShim adapts the repository free functions to the
// services.TransactionLedger interface expected by the HistoryService.
type txnLedgerShim struct{}

// ListTransactions proxies repo.ListTransactions.
func (txnLedgerShim) ListTransactions(ctx context.Context, db *gorm.DB, phone, consumerID string) ([]domain.Transaction, error) {
	return repo.ListTransactions(ctx, db, phone, consumerID)
}

// TransactionStats proxies repo.TransactionStats.
func (txnLedgerShim) TransactionStats(ctx context.Context, db *gorm.DB, phone, consumerID string) (int64, *time.Time, error) {
	return repo.TransactionStats(ctx, db, phone, consumerID)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, and then mounts
// the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Response compression
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-API-Key", // project-specific sensitive header example
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress responses for clients that accept it
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", "If-None-Match"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", "If-None-Match"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Interactive API docs
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginswagger.WrapHandler(swaggofiles.Handler))
	}

	// Dependency injection: services ← repo/db
	billingSvc := services.NewBillingService(db, billStoreShim{})
	paymentSvc := services.NewPaymentService(db, paymentLedgerShim{})
	historySvc := services.NewHistoryService(db, txnLedgerShim{})
	h := handlers.New(billingSvc, paymentSvc, historySvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Bill lookups
		api.GET("/bills/:kind", h.GetBill)
		api.GET("/gas", h.GetGasDetails)

		// Payments
		api.POST("/payment", h.ProcessPayment)

		// Transaction history
		api.GET("/transactions", h.ListTransactions)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
