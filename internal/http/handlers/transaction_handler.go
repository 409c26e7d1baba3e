// Transaction-history HTTP handler.
//
// This file exposes:
//   - GET /transactions   (exact match on phone + consumerId, newest first,
//     optional free-text filter and per-column sort, weak ETag support)
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wardconnect/go-billpay-backend/internal/services"
)

// ListTransactions godoc
// @ID          listTransactions
// @Summary     List transaction history
// @Description Returns all transactions matching phone and consumerId exactly, ordered by transaction date descending. Supports a case-insensitive free-text filter (q) over transactionId, service, status, and amount, plus per-column re-sorting. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Transactions
// @Produce     json
//
// @Param       phone          query   string  true   "Phone number"        example(1234567890)
// @Param       consumerId     query   string  true   "Consumer ID"         example(ELEC12345)
// @Param       q              query   string  false  "Free-text filter"    example(elec)
// @Param       sort           query   string  false  "Sort column"         Enums(transactionId, service, amount, status, transactionDate, date)
// @Param       order          query   string  false  "Sort direction"      Enums(asc, desc)
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
//
// @Success     200  {array}  domain.Transaction
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /transactions [get]
func (h *Handlers) ListTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	phone := c.Query("phone")
	consumerID := c.Query("consumerId")

	order := strings.ToLower(strings.TrimSpace(c.Query("order")))
	switch order {
	case "", "asc", "desc":
	default:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "order must be asc or desc")
		return
	}
	q := services.HistoryQuery{
		Filter:     c.Query("q"),
		SortColumn: strings.TrimSpace(c.Query("sort")),
		Descending: order == "desc",
	}

	// ETag pre-check (best effort): the ledger is append-only, so the pair
	// (count, latest date) changes whenever the visible result set does.
	if phone != "" && consumerID != "" {
		count, maxDate, err := h.historySvc.Stats(ctx, phone, consumerID)
		if err == nil {
			var ts int64
			if maxDate != nil {
				ts = maxDate.Unix()
			}
			etag := fmt.Sprintf(`W/"txns:%s:%d:%d"`, consumerID, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.historySvc.List(ctx, phone, consumerID, q)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "phone and consumer id are required")
		case errors.Is(err, services.ErrInvalidSort):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unsupported sort column")
		default:
			failInternal(c, ErrCodeListFailed, err)
		}
		return
	}
	ok(c, http.StatusOK, items)
}
