// Package services – HistoryService
//
// This file implements HistoryService, which answers transaction-history
// queries: an exact match on (phone, consumerId), newest first, with
// optional free-text filtering and per-column re-sorting applied on top of
// the stored order. Filtering folds case with the Unicode case-folding rules
// rather than ASCII lowercasing.
package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"github.com/wardconnect/go-billpay-backend/internal/domain"
)

// TransactionLedger defines the repository contract required by
// HistoryService.
type TransactionLedger interface {
	// ListTransactions returns the rows matching both identity fields,
	// ordered by transaction date descending.
	ListTransactions(ctx context.Context, db *gorm.DB, phone, consumerID string) ([]domain.Transaction, error)

	// TransactionStats returns the row count and latest transaction date
	// for the identity, used for conditional responses.
	TransactionStats(ctx context.Context, db *gorm.DB, phone, consumerID string) (int64, *time.Time, error)
}

// HistoryQuery carries the optional presentation parameters of a history
// request. Zero values mean "no filtering" and "stored order".
type HistoryQuery struct {
	// Filter is a free-text, case-insensitive substring matched against a
	// row's transaction id, service, status, and amount.
	Filter string
	// SortColumn is one of transactionId, service, amount, status,
	// transactionDate (alias: date). Empty keeps the stored order.
	SortColumn string
	// Descending selects the sort direction when SortColumn is set.
	Descending bool
}

// HistoryService answers transaction-history reads. It never writes.
type HistoryService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the ledger repository used by this service.
	Repo TransactionLedger
}

// NewHistoryService constructs a HistoryService.
func NewHistoryService(db *gorm.DB, r TransactionLedger) *HistoryService {
	return &HistoryService{DB: db, Repo: r}
}

// List returns the transactions for (phone, consumerID) with q's filter and
// sort applied. An empty result is a normal outcome, not an error.
//
// Errors:
//   - ErrMissingField when phone or consumerID is blank.
//   - ErrInvalidSort when q names an unsupported sort column.
//   - The underlying DB error for storage faults.
func (s *HistoryService) List(ctx context.Context, phone, consumerID string, q HistoryQuery) ([]domain.Transaction, error) {
	phone = strings.TrimSpace(phone)
	consumerID = strings.TrimSpace(consumerID)
	if phone == "" || consumerID == "" {
		return nil, ErrMissingField
	}
	if q.SortColumn != "" {
		if _, ok := sortKeys[q.SortColumn]; !ok {
			return nil, ErrInvalidSort
		}
	}

	rows, err := s.Repo.ListTransactions(ctx, s.DB, phone, consumerID)
	if err != nil {
		return nil, err
	}

	rows = FilterTransactions(rows, q.Filter)
	if q.SortColumn != "" {
		SortTransactions(rows, q.SortColumn, q.Descending)
	}
	return rows, nil
}

// Stats exposes the ledger aggregate used by the HTTP layer for ETags.
func (s *HistoryService) Stats(ctx context.Context, phone, consumerID string) (int64, *time.Time, error) {
	return s.Repo.TransactionStats(ctx, s.DB, phone, consumerID)
}

// fold is the Unicode case-folding caser shared by all filter matches.
var fold = cases.Fold()

// formatAmount renders an amount the way it is filtered against: shortest
// decimal form, so 1250.50 matches "1250.5".
func formatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// FilterTransactions returns the rows whose transaction id, service, status,
// or amount contains filter as a case-insensitive substring. A blank filter
// returns the input unchanged.
func FilterTransactions(rows []domain.Transaction, filter string) []domain.Transaction {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return rows
	}
	needle := fold.String(filter)
	out := make([]domain.Transaction, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(fold.String(r.TransactionID), needle) ||
			strings.Contains(fold.String(r.Service), needle) ||
			strings.Contains(fold.String(r.Status), needle) ||
			strings.Contains(formatAmount(r.Amount), needle) {
			out = append(out, r)
		}
	}
	return out
}

// sortKeys is the closed set of sortable columns. "date" is accepted as an
// alias for transactionDate because the portal's history table labels the
// column that way.
var sortKeys = map[string]func(a, b domain.Transaction) int{
	"transactionId": func(a, b domain.Transaction) int { return strings.Compare(a.TransactionID, b.TransactionID) },
	"service":       func(a, b domain.Transaction) int { return strings.Compare(a.Service, b.Service) },
	"status":        func(a, b domain.Transaction) int { return strings.Compare(a.Status, b.Status) },
	"amount": func(a, b domain.Transaction) int {
		switch {
		case a.Amount < b.Amount:
			return -1
		case a.Amount > b.Amount:
			return 1
		}
		return 0
	},
	"transactionDate": compareDates,
	"date":            compareDates,
}

func compareDates(a, b domain.Transaction) int {
	switch {
	case a.TransactionDate.Before(b.TransactionDate):
		return -1
	case a.TransactionDate.After(b.TransactionDate):
		return 1
	}
	return 0
}

// SortTransactions stably sorts rows in place by the named column. Strings
// compare lexicographically, amount numerically, dates chronologically.
// Callers validate the column via the service; unknown columns are a no-op.
func SortTransactions(rows []domain.Transaction, column string, descending bool) {
	cmp, ok := sortKeys[column]
	if !ok {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(rows[i], rows[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
}
