// Package services – PaymentService
//
// This file implements PaymentService, the application-level component that
// owns the payment unit of work: the only write in the system that spans two
// logical records. Every attempt appends one immutable ledger row; for
// Electricity and Water the matching bill is flipped to PAID inside the same
// database transaction, so either both writes commit or neither does.
//
// Observability: Process is OpenTelemetry-instrumented; spans carry the
// service name and consumer identifier.
package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/wardconnect/go-billpay-backend/internal/domain"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PaymentLedger defines the repository contract required by PaymentService.
// Both methods receive a transaction-bound handle so the two writes share
// one atomic unit.
type PaymentLedger interface {
	// CreateTransaction appends one ledger row.
	CreateTransaction(tx *gorm.DB, t *domain.Transaction) error

	// MarkBillPaid flips the matching bill's status to PAID and reports the
	// number of rows affected.
	MarkBillPaid(tx *gorm.DB, kind domain.BillKind, consumerID string) (int64, error)
}

// PaymentResult is what a successful payment returns to the caller.
type PaymentResult struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}

// PaymentService coordinates the payment unit of work.
type PaymentService struct {
	// DB is the GORM handle used for persistence. Each Process call opens
	// its own transactional scope on it and releases it on every exit path.
	DB *gorm.DB
	// Repo is the ledger repository used by this service.
	Repo PaymentLedger

	// Now supplies the time for ids and transaction dates; tests override it.
	Now func() time.Time
}

// NewPaymentService constructs a PaymentService using wall-clock time.
func NewPaymentService(db *gorm.DB, r PaymentLedger) *PaymentService {
	return &PaymentService{DB: db, Repo: r, Now: time.Now}
}

// Transaction ids are "TXN" + epoch milliseconds. The guard below keeps the
// numeric part strictly increasing within the process so two attempts in the
// same millisecond cannot collide on the ledger primary key.
var (
	txnIDMu   sync.Mutex
	txnIDLast int64
)

func nextTransactionID(now time.Time) string {
	ms := now.UnixMilli()
	txnIDMu.Lock()
	if ms <= txnIDLast {
		ms = txnIDLast + 1
	}
	txnIDLast = ms
	txnIDMu.Unlock()
	return "TXN" + strconv.FormatInt(ms, 10)
}

// Process records one payment attempt.
//
// Semantics and validation:
//   - consumerID, phone, and service must be non-blank; otherwise ErrMissingField.
//   - amount must be > 0; otherwise ErrInvalidAmount.
//   - service must be Electricity, Water, or Gas; otherwise ErrUnknownService.
//     All validation happens before any storage access.
//
// Atomicity:
//   - The ledger insert and (for Electricity/Water) the bill status update
//     run inside one database transaction. Any failure rolls the whole unit
//     back and the DB error is returned; there is no partial state.
//   - The bill update matches on consumer_id alone, mirroring the lookup
//     tables' stored identity loosely: the phone was already verified when
//     the bill was looked up, and tightening the match here would silently
//     drop payments whose stored phone differs. Zero updated rows is
//     accepted; the ledger row still commits.
//
// Idempotency:
//   - There is none. Two calls with identical arguments produce two ledger
//     rows with distinct ids, and the bill stays PAID after either. Callers
//     that need double-submission protection must layer it above this API.
func (s *PaymentService) Process(ctx context.Context, consumerID, phone string, amount float64, service string) (*PaymentResult, error) {
	tr := otel.Tracer("services/PaymentService")
	ctx, span := tr.Start(ctx, "Process",
		trace.WithAttributes(
			attribute.String("payment.service", service),
			attribute.String("consumer.id", consumerID),
		),
	)
	defer span.End()

	consumerID = strings.TrimSpace(consumerID)
	phone = strings.TrimSpace(phone)
	service = strings.TrimSpace(service)
	if consumerID == "" || phone == "" || service == "" {
		return nil, ErrMissingField
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	switch service {
	case domain.ServiceElectricity, domain.ServiceWater, domain.ServiceGas:
	default:
		return nil, ErrUnknownService
	}

	now := s.Now().UTC()
	txn := &domain.Transaction{
		TransactionID:   nextTransactionID(now),
		Service:         service,
		ConsumerID:      consumerID,
		Phone:           phone,
		Amount:          amount,
		Status:          domain.TxnStatusSuccess,
		TransactionDate: now,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateTransaction(tx, txn); err != nil {
			return err
		}
		if kind, ok := domain.KindForService(service); ok {
			if _, err := s.Repo.MarkBillPaid(tx, kind, consumerID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PaymentResult{TransactionID: txn.TransactionID, Status: txn.Status}, nil
}
