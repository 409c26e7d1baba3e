// Package services – BillingService
//
// This file implements the BillingService, which answers bill and gas
// lookups. It validates and normalizes the request identity, resolves the
// utility kind through the closed domain.BillKind set, and delegates the
// single-row reads to the repository. Lookups are pure reads with no side
// effects.
//
// Service-level errors (e.g., ErrBillNotFound) are returned for predictable
// cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/wardconnect/go-billpay-backend/internal/domain"
)

// BillStore defines the repository contract required by BillingService.
// Implementations are responsible for persistence of bill and gas records.
type BillStore interface {
	// GetBill fetches the bill matching both identity fields in kind's table.
	GetBill(ctx context.Context, db *gorm.DB, kind domain.BillKind, consumerID, phone string) (*domain.Bill, error)

	// GetGasDetail fetches the gas booking record for a phone number.
	GetGasDetail(ctx context.Context, db *gorm.DB, phone string) (*domain.GasDetail, error)
}

// BillingService provides read-only lookups over the bill store. It enforces
// input validation before any storage access and never mutates state.
type BillingService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the bill repository used by this service.
	Repo BillStore
}

// NewBillingService constructs a BillingService.
func NewBillingService(db *gorm.DB, r BillStore) *BillingService {
	return &BillingService{DB: db, Repo: r}
}

// LookupBill returns the bill for (consumerID, phone) in the table selected
// by kind. The kind string must be one of the enumerated lowercase values.
//
// Errors:
//   - ErrMissingField when consumerID or phone is blank.
//   - ErrInvalidBillKind when kind is outside the closed set.
//   - ErrBillNotFound when no row matches both identity fields.
//   - The underlying DB error for storage faults.
func (s *BillingService) LookupBill(ctx context.Context, kind, consumerID, phone string) (*domain.Bill, error) {
	consumerID = strings.TrimSpace(consumerID)
	phone = strings.TrimSpace(phone)
	if consumerID == "" || phone == "" {
		return nil, ErrMissingField
	}
	k, ok := domain.ParseBillKind(kind)
	if !ok {
		return nil, ErrInvalidBillKind
	}

	b, err := s.Repo.GetBill(ctx, s.DB, k, consumerID, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return b, nil
}

// LookupGas returns the gas booking details for a phone number.
//
// Errors:
//   - ErrMissingField when phone is blank.
//   - ErrGasNotFound when no record exists for the phone.
//   - The underlying DB error for storage faults.
func (s *BillingService) LookupGas(ctx context.Context, phone string) (*domain.GasDetail, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrMissingField
	}

	g, err := s.Repo.GetGasDetail(ctx, s.DB, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGasNotFound
		}
		return nil, err
	}
	return g, nil
}
