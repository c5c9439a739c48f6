package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/farmlink-ke/farm_market/internal/models"
)

// CreateReview persists the review and links it to its product through the
// product/review association table, keeping both paths to a product's
// reviews consistent.
func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		if review.ProductID == 0 {
			return nil
		}
		return tx.Model(&models.Product{ID: review.ProductID}).
			Association("Reviews").
			Append(review)
	})
}

func (r *GormRepo) GetReviewByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.DB.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *GormRepo) UpdateReview(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Save(review).Error
}

func (r *GormRepo) DeleteReview(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Review{}, id).Error
}
