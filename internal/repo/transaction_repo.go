// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// append-only transaction ledger.
//
// Functions:
//
//   - CreateTransaction(tx, t) -> error
//     Inserts one ledger row. Callers pass a transaction-bound handle when
//     the insert must commit together with a bill update.
//
//   - ListTransactions(ctx, db, phone, consumerID) -> []domain.Transaction, error
//     Returns all transactions matching both identity fields exactly,
//     newest first.
//
// Ledger rows are never updated or deleted.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/wardconnect/go-billpay-backend/internal/domain"
)

// CreateTransaction inserts a new ledger row. The transaction_id primary key
// is the only uniqueness constraint; generation is the service's concern.
// On failure, it returns the DB error and nothing is persisted.
func CreateTransaction(tx *gorm.DB, t *domain.Transaction) error {
	return tx.Create(t).Error
}

// ListTransactions returns all transactions matching phone and consumerID
// exactly, ordered by transaction_date descending. Ties break on
// transaction_id descending, which tracks insertion order for the
// time-derived ids used here. It returns an empty slice if nothing matches.
func ListTransactions(ctx context.Context, db *gorm.DB, phone, consumerID string) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := db.WithContext(ctx).
		Where("phone = ? AND consumer_id = ?", phone, consumerID).
		Order("transaction_date desc").
		Order("transaction_id desc").
		Find(&out).Error
	return out, err
}
