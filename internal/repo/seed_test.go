package repo

import (
	"context"
	"testing"

	"github.com/wardconnect/go-billpay-backend/internal/domain"
)

func TestSeedDemoData_PopulatesEmptyTables(t *testing.T) {
	db := newTestDB(t)
	if err := SeedDemoData(context.Background(), db); err != nil {
		t.Fatalf("SeedDemoData: %v", err)
	}

	bill, err := GetBill(context.Background(), db, domain.KindElectricity, "ELEC12345", "1234567890")
	if err != nil {
		t.Fatalf("seeded electricity bill missing: %v", err)
	}
	if bill.Status != domain.BillStatusPending || bill.Amount != 1250.50 {
		t.Fatalf("unexpected seeded bill: %+v", bill)
	}
	if _, err := GetBill(context.Background(), db, domain.KindWater, "WAT67890", "1122334455"); err != nil {
		t.Fatalf("seeded water bill missing: %v", err)
	}
	if _, err := GetGasDetail(context.Background(), db, "0987654321"); err != nil {
		t.Fatalf("seeded gas detail missing: %v", err)
	}

	txns, err := ListTransactions(context.Background(), db, "0987654321", "ELEC67890")
	if err != nil {
		t.Fatalf("list seeded transactions: %v", err)
	}
	if len(txns) != 1 || txns[0].TransactionID != "TXN1720112233" {
		t.Fatalf("unexpected seeded transactions: %+v", txns)
	}
}

func TestSeedDemoData_SkipsNonEmptyTables(t *testing.T) {
	db := newTestDB(t)
	if err := SeedDemoData(context.Background(), db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	// Second run must not duplicate rows or trip primary keys.
	if err := SeedDemoData(context.Background(), db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var n int64
	if err := db.Model(&domain.Transaction{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("transactions = %d, want 2", n)
	}
}
