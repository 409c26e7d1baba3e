// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file loads demo fixtures for local development so the
// portal has lookable bills and history without manual inserts.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/wardconnect/go-billpay-backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedDemoData inserts the demo consumers into any table that is still
// empty. Tables with existing rows are left untouched, so the seed is safe
// to run on every startup.
func SeedDemoData(ctx context.Context, db *gorm.DB) error {
	h := db.WithContext(ctx)

	bills := map[domain.BillKind][]domain.Bill{
		domain.KindElectricity: {
			{ConsumerID: "ELEC12345", ConsumerName: "John Doe", Phone: "1234567890", BillDate: date(2024, 7, 1), Amount: 1250.50, Status: domain.BillStatusPending, DueDate: date(2024, 7, 20)},
			{ConsumerID: "ELEC67890", ConsumerName: "Jane Smith", Phone: "0987654321", BillDate: date(2024, 7, 5), Amount: 850.00, Status: domain.BillStatusPaid, DueDate: date(2024, 7, 25)},
		},
		domain.KindWater: {
			{ConsumerID: "WAT12345", ConsumerName: "John Doe", Phone: "1234567890", BillDate: date(2024, 7, 2), Amount: 450.00, Status: domain.BillStatusPending, DueDate: date(2024, 7, 22)},
			{ConsumerID: "WAT67890", ConsumerName: "Peter Jones", Phone: "1122334455", BillDate: date(2024, 7, 6), Amount: 300.75, Status: domain.BillStatusPending, DueDate: date(2024, 7, 28)},
		},
	}
	for kind, rows := range bills {
		var n int64
		if err := h.Table(kind.TableName()).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		for i := range rows {
			if err := h.Table(kind.TableName()).Create(&rows[i]).Error; err != nil {
				return err
			}
		}
	}

	var gasCount int64
	if err := h.Model(&domain.GasDetail{}).Count(&gasCount).Error; err != nil {
		return err
	}
	if gasCount == 0 {
		gas := []domain.GasDetail{
			{ConsumerID: "GAS12345", ConsumerName: "John Doe", Phone: "1234567890", Provider: "Indane (Indian Oil)", Amount: 950.00},
			{ConsumerID: "GAS67890", ConsumerName: "Jane Smith", Phone: "0987654321", Provider: "Bharat Gas", Amount: 975.00},
		}
		for i := range gas {
			if err := h.Create(&gas[i]).Error; err != nil {
				return err
			}
		}
	}

	var txnCount int64
	if err := h.Model(&domain.Transaction{}).Count(&txnCount).Error; err != nil {
		return err
	}
	if txnCount == 0 {
		txns := []domain.Transaction{
			{TransactionID: "TXN1720112233", Service: domain.ServiceElectricity, ConsumerID: "ELEC67890", Phone: "0987654321", Amount: 1100.00, Status: domain.TxnStatusSuccess, TransactionDate: date(2024, 6, 15)},
			{TransactionID: "TXN1720112244", Service: domain.ServiceWater, ConsumerID: "WAT12345", Phone: "1234567890", Amount: 400.00, Status: domain.TxnStatusSuccess, TransactionDate: date(2024, 6, 20)},
		}
		for i := range txns {
			if err := h.Create(&txns[i]).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
