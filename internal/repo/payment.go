package repo

import (
	"context"

	"github.com/farmlink-ke/farm_market/internal/models"
)

func (r *GormRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return r.DB.WithContext(ctx).Create(payment).Error
}

func (r *GormRepo) GetPaymentByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.DB.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *GormRepo) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	return r.DB.WithContext(ctx).Save(payment).Error
}
