// Package domain defines the persistence models for utility bills, gas
// booking details, and payment transactions. These types are mapped with
// GORM and form the core data layer of the bill-payment backend.
//
// Storage columns are lower_snake_case; the JSON tags on each struct are the
// single canonical external (camelCase) representation used at the HTTP
// boundary, so no runtime key renaming ever happens.
package domain

import (
	"time"
)

// Bill statuses. A bill starts PENDING and is flipped to PAID by a
// successful payment; it is never deleted and never reverts.
const (
	BillStatusPending = "PENDING"
	BillStatusPaid    = "PAID"
)

// Transaction statuses.
const (
	TxnStatusSuccess = "SUCCESS"
	TxnStatusFailed  = "FAILED"
)

// Service names carried on transactions. Electricity and Water payments
// also update the matching bill; Gas payments only append to the ledger.
const (
	ServiceElectricity = "Electricity"
	ServiceWater       = "Water"
	ServiceGas         = "Gas"
)

// BillKind is the closed set of utility kinds that have a bill table.
// Table selection is resolved exclusively through this type, never by
// interpolating request input into SQL identifiers.
type BillKind string

// Known bill kinds.
const (
	KindElectricity BillKind = "electricity"
	KindWater       BillKind = "water"
)

// ParseBillKind maps a request-path value onto a BillKind. The second
// return value is false for anything outside the closed set.
func ParseBillKind(s string) (BillKind, bool) {
	switch BillKind(s) {
	case KindElectricity:
		return KindElectricity, true
	case KindWater:
		return KindWater, true
	default:
		return "", false
	}
}

// KindForService returns the BillKind whose bill table a payment for the
// given service must update. ok is false for services without a bill table
// (currently Gas) and for unknown services.
func KindForService(service string) (BillKind, bool) {
	switch service {
	case ServiceElectricity:
		return KindElectricity, true
	case ServiceWater:
		return KindWater, true
	default:
		return "", false
	}
}

// TableName returns the physical bill table for the kind. It panics on a
// kind outside the closed set; callers validate via ParseBillKind first.
func (k BillKind) TableName() string {
	switch k {
	case KindElectricity:
		return "electricity_bills"
	case KindWater:
		return "water_bills"
	}
	panic("domain: unknown bill kind " + string(k))
}

// Service returns the transaction service name for the kind
// (e.g. KindElectricity -> "Electricity").
func (k BillKind) Service() string {
	switch k {
	case KindElectricity:
		return ServiceElectricity
	case KindWater:
		return ServiceWater
	}
	panic("domain: unknown bill kind " + string(k))
}

// Bill represents one billing-cycle record for a utility consumer. The same
// shape backs both the electricity_bills and water_bills tables; the table
// is chosen through BillKind.
//
// Identity within one kind's table is (consumer_id, phone). The only
// mutation ever applied is the PENDING -> PAID status flip performed inside
// the payment unit of work.
type Bill struct {
	ConsumerID   string    `json:"consumerId"   gorm:"column:consumer_id;type:varchar(32);primaryKey"`
	Phone        string    `json:"phone"        gorm:"column:phone;type:varchar(16);not null;index"`
	ConsumerName string    `json:"consumerName" gorm:"column:consumer_name;type:varchar(128);not null"`
	BillDate     time.Time `json:"billDate"     gorm:"column:bill_date;not null"`
	Amount       float64   `json:"amount"       gorm:"column:amount;not null"`
	Status       string    `json:"status"       gorm:"column:status;type:varchar(8);not null;default:'PENDING';check:status IN ('PENDING','PAID')"`
	DueDate      time.Time `json:"dueDate"      gorm:"column:due_date;not null"`
}

// GasDetail is a read-only gas-booking record looked up by phone. Gas has
// no persisted paid state, so payments never touch this table.
type GasDetail struct {
	ConsumerID   string  `json:"consumerId"   gorm:"column:consumer_id;type:varchar(32);primaryKey"`
	Phone        string  `json:"phone"        gorm:"column:phone;type:varchar(16);not null;index"`
	Provider     string  `json:"provider"     gorm:"column:provider;type:varchar(64);not null"`
	ConsumerName string  `json:"consumerName" gorm:"column:consumer_name;type:varchar(128);not null"`
	Amount       float64 `json:"amount"       gorm:"column:amount;not null"`
}

// TableName returns the database table name for GasDetail.
func (GasDetail) TableName() string { return "gas_details" }

// Transaction is an immutable record of one payment attempt. Rows are only
// ever inserted, exactly once per attempt that reaches the ledger write.
//
// Fields:
//   - TransactionID: generated primary key, "TXN" + epoch milliseconds.
//   - Service: "Electricity", "Water" or "Gas".
//   - ConsumerID / Phone: the payer's lookup identity.
//   - Amount: amount paid.
//   - Status: "SUCCESS" or "FAILED".
//   - TransactionDate: when the payment was recorded (UTC).
type Transaction struct {
	TransactionID   string    `json:"transactionId"   gorm:"column:transaction_id;type:varchar(32);primaryKey"`
	Service         string    `json:"service"         gorm:"column:service;type:varchar(16);not null;check:service IN ('Electricity','Water','Gas')"`
	ConsumerID      string    `json:"consumerId"      gorm:"column:consumer_id;type:varchar(32);not null;index:idx_txn_identity,priority:2"`
	Phone           string    `json:"phone"           gorm:"column:phone;type:varchar(16);not null;index:idx_txn_identity,priority:1"`
	Amount          float64   `json:"amount"          gorm:"column:amount;not null"`
	Status          string    `json:"status"          gorm:"column:status;type:varchar(8);not null;check:status IN ('SUCCESS','FAILED')"`
	TransactionDate time.Time `json:"transactionDate" gorm:"column:transaction_date;not null;index"`
}

// TableName returns the database table name for Transaction.
func (Transaction) TableName() string { return "transactions" }
