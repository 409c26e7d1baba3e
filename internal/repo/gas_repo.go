// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the repository function for gas booking
// details, a read-only table in this system.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/wardconnect/go-billpay-backend/internal/domain"
)

// GetGasDetail fetches the gas booking record for a phone number. If no row
// matches, it returns ErrNotFound. On other DB errors, the raw error is
// returned.
func GetGasDetail(ctx context.Context, db *gorm.DB, phone string) (*domain.GasDetail, error) {
	var g domain.GasDetail
	err := db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}
