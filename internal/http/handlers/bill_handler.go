// Bill and gas lookup HTTP handlers.
//
// This file exposes the read-only lookup endpoints:
//   - GET /bills/{kind}   (electricity or water bill by consumerId + phone)
//   - GET /gas            (gas booking details by phone)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. It also declares the service
// contracts consumed by every handler in this package and the Handlers
// aggregate that the router wires up.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wardconnect/go-billpay-backend/internal/domain"
	"github.com/wardconnect/go-billpay-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// BillingService defines the lookup operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type BillingService interface {
	// LookupBill returns the bill for (consumerID, phone) in the kind's table.
	LookupBill(ctx context.Context, kind, consumerID, phone string) (*domain.Bill, error)
	// LookupGas returns the gas booking details for a phone number.
	LookupGas(ctx context.Context, phone string) (*domain.GasDetail, error)
}

// PaymentService defines the payment operation consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type PaymentService interface {
	// Process records one payment attempt atomically.
	Process(ctx context.Context, consumerID, phone string, amount float64, service string) (*services.PaymentResult, error)
}

// HistoryService defines transaction-history retrieval operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type HistoryService interface {
	// List returns the transactions for (phone, consumerID) with the query's
	// filter and sort applied.
	List(ctx context.Context, phone, consumerID string, q services.HistoryQuery) ([]domain.Transaction, error)
	// Stats returns the ledger row count and latest transaction date for the
	// identity, used for conditional responses.
	Stats(ctx context.Context, phone, consumerID string) (int64, *time.Time, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for lookups, payments, and history.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	billingSvc BillingService
	paymentSvc PaymentService
	historySvc HistoryService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(billingSvc BillingService, paymentSvc PaymentService, historySvc HistoryService) *Handlers {
	return &Handlers{billingSvc: billingSvc, paymentSvc: paymentSvc, historySvc: historySvc}
}

//
// Handlers
//

// GetBill godoc
// @ID          getBill
// @Summary     Look up a utility bill
// @Description Returns the bill matching consumerId and phone exactly in the requested utility kind.
// @Tags        Bills
// @Produce     json
//
// @Param       kind        path   string  true  "Utility kind"  Enums(electricity, water)
// @Param       consumerId  query  string  true  "Consumer ID"   example(ELEC12345)
// @Param       phone       query  string  true  "Phone number"  example(1234567890)
//
// @Success     200  {object}  domain.Bill
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid request parameters"
// @Failure     404  {object}  handlers.ErrorResponse  "Bill not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /bills/{kind} [get]
func (h *Handlers) GetBill(c *gin.Context) {
	kind := c.Param("kind")
	consumerID := c.Query("consumerId")
	phone := c.Query("phone")

	bill, err := h.billingSvc.LookupBill(c.Request.Context(), kind, consumerID, phone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField), errors.Is(err, services.ErrInvalidBillKind):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request parameters")
		case errors.Is(err, services.ErrBillNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "bill not found")
		default:
			failInternal(c, ErrCodeLookupFailed, err)
		}
		return
	}
	ok(c, http.StatusOK, bill)
}

// GetGasDetails godoc
// @ID          getGasDetails
// @Summary     Look up gas booking details
// @Description Returns the gas booking record for a phone number.
// @Tags        Bills
// @Produce     json
//
// @Param       phone  query  string  true  "Phone number"  example(1234567890)
//
// @Success     200  {object}  domain.GasDetail
// @Failure     400  {object}  handlers.ErrorResponse  "Phone number is required"
// @Failure     404  {object}  handlers.ErrorResponse  "Gas details not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /gas [get]
func (h *Handlers) GetGasDetails(c *gin.Context) {
	gas, err := h.billingSvc.LookupGas(c.Request.Context(), c.Query("phone"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "phone number is required")
		case errors.Is(err, services.ErrGasNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "gas details not found")
		default:
			failInternal(c, ErrCodeLookupFailed, err)
		}
		return
	}
	ok(c, http.StatusOK, gas)
}
