// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (e.g., ETag generation) in the HTTP
// layer. Each function is context-aware and safe to call from services or
// handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/wardconnect/go-billpay-backend/internal/domain"
)

// TransactionStats returns aggregate metadata for one consumer's ledger
// slice: the total number of rows matching (phone, consumer_id) and the
// maximum transaction_date among them.
//
// When there are no matching rows, the returned count is 0 and maxDate is
// nil. Because the ledger is append-only, (count, maxDate) changes whenever
// the visible result set changes, which makes the pair a sound ETag input.
//
// Return values:
//   - count:   total transactions for (phone, consumerID)
//   - maxDate: pointer to the greatest transaction_date, or nil if no rows
//   - err:     database error, if any
func TransactionStats(ctx context.Context, db *gorm.DB, phone, consumerID string) (count int64, maxDate *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("phone = ? AND consumer_id = ?", phone, consumerID)

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest transaction_date (avoid MAX() -> TEXT in SQLite)
	var row struct {
		TransactionDate time.Time
	}
	if err = q.Select("transaction_date").Order("transaction_date DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.TransactionDate, nil
}
