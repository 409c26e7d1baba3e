// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for bill records.
//
// All functions are context-aware (or accept a transaction-bound handle) and
// take an explicit *gorm.DB, making them safe for use within transactions or
// connection-scoped operations. They follow the "thin repository" approach:
// no business logic, only CRUD persistence and query composition.
//
// The bill table for a query is always resolved through domain.BillKind, a
// closed enum; request input never reaches a SQL identifier.
//
// Error semantics:
//   - When a bill is not found, GetBill returns gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/wardconnect/go-billpay-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// GetBill fetches the single bill in kind's table matching both identity
// fields exactly. If no row matches, it returns ErrNotFound. On other DB
// errors, the raw error is returned.
func GetBill(ctx context.Context, db *gorm.DB, kind domain.BillKind, consumerID, phone string) (*domain.Bill, error) {
	var b domain.Bill
	err := db.WithContext(ctx).
		Table(kind.TableName()).
		Where("consumer_id = ? AND phone = ?", consumerID, phone).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// MarkBillPaid flips the status of the bill matching consumerID in kind's
// table to PAID. The match is on consumer_id alone; the phone is not
// re-checked here (see the payment service for the documented rationale).
//
// It returns the number of rows affected. Zero rows is not an error: a
// payment for a consumer without a stored bill still commits its ledger row.
// The handle is expected to be transaction-bound when called from the
// payment unit of work.
func MarkBillPaid(tx *gorm.DB, kind domain.BillKind, consumerID string) (int64, error) {
	res := tx.Table(kind.TableName()).
		Where("consumer_id = ?", consumerID).
		Update("status", domain.BillStatusPaid)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
