// Payment HTTP handler.
//
// This file exposes the single write endpoint of the API:
//   - POST /payment
//
// The handler validates the request body and delegates to the payment
// service, which runs the ledger insert and the conditional bill update in
// one atomic unit. Validation failures never reach storage.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wardconnect/go-billpay-backend/internal/services"
)

// PaymentRequest is the JSON payload for submitting a payment.
type PaymentRequest struct {
	// ConsumerID is the utility provider's subscriber identifier.
	ConsumerID string `json:"consumerId" binding:"required" example:"ELEC12345"`
	// Amount is the amount to pay; must be greater than zero.
	Amount float64 `json:"amount" binding:"required,gt=0" example:"1250.50"`
	// Service selects the utility: Electricity, Water, or Gas.
	Service string `json:"service" binding:"required" example:"Electricity"`
	// Phone is the subscriber's phone number.
	Phone string `json:"phone" binding:"required" example:"1234567890"`
}

// ProcessPayment godoc
// @ID          processPayment
// @Summary     Submit a payment
// @Description Appends a SUCCESS transaction to the ledger and, for Electricity and Water, marks the matching bill PAID in the same atomic unit. Submitting the same payment twice creates two transactions; there is no idempotency key.
// @Tags        Payments
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.PaymentRequest  true  "Payment payload"
//
// @Success     201  {object}  services.PaymentResult
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid payment information"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error; the whole unit was rolled back"
// @Router      /payment [post]
func (h *Handlers) ProcessPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "missing required payment information")
		return
	}

	res, err := h.paymentSvc.Process(c.Request.Context(), req.ConsumerID, req.Phone, req.Amount, req.Service)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField),
			errors.Is(err, services.ErrInvalidAmount),
			errors.Is(err, services.ErrUnknownService):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "missing required payment information")
		default:
			failInternal(c, ErrCodePaymentFailed, err)
		}
		return
	}
	ok(c, http.StatusCreated, res)
}
