package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/farmlink-ke/farm_market/internal/models"
)

// CreateOrder persists the order and records its product both in the legacy
// single-product column and in the order/product association table.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if order.ProductID == 0 {
			return nil
		}
		return tx.Model(order).
			Association("Products").
			Append(&models.Product{ID: order.ProductID})
	})
}

func (r *GormRepo) GetOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) UpdateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Save(order).Error
}

// AddProductToOrder appends one more product to an existing order's
// association.
func (r *GormRepo) AddProductToOrder(ctx context.Context, order *models.Order, productID uint) error {
	return r.DB.WithContext(ctx).Model(order).
		Association("Products").
		Append(&models.Product{ID: productID})
}

func (r *GormRepo) ListOrderProducts(ctx context.Context, order *models.Order) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Model(order).
		Association("Products").
		Find(&products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) ListOrderPayments(ctx context.Context, orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
