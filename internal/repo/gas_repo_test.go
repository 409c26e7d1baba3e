package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/wardconnect/go-billpay-backend/internal/domain"
)

func TestGetGasDetail_Error_NoTable(t *testing.T) {
	db := newBareDB(t)
	if _, err := GetGasDetail(context.Background(), db, "1234567890"); err == nil {
		t.Fatalf("expected error querying without table")
	}
}

func TestGetGasDetail_FoundAndNotFound(t *testing.T) {
	db := newTestDB(t)
	want := domain.GasDetail{
		ConsumerID: "GAS12345", Phone: "1234567890",
		Provider: "Indane (Indian Oil)", ConsumerName: "John Doe", Amount: 950.00,
	}
	if err := db.Create(&want).Error; err != nil {
		t.Fatalf("seed gas detail: %v", err)
	}

	got, err := GetGasDetail(context.Background(), db, "1234567890")
	if err != nil {
		t.Fatalf("GetGasDetail: %v", err)
	}
	if got.ConsumerID != want.ConsumerID || got.Provider != want.Provider || got.Amount != want.Amount {
		t.Fatalf("gas detail mismatch: %+v", got)
	}

	if _, err := GetGasDetail(context.Background(), db, "5555555555"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown phone: want ErrNotFound, got %v", err)
	}
}
