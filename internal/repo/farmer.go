package repo

import (
	"context"

	"github.com/farmlink-ke/farm_market/internal/models"
)

func (r *GormRepo) CreateFarmer(ctx context.Context, farmer *models.Farmer) error {
	return r.DB.WithContext(ctx).Create(farmer).Error
}

func (r *GormRepo) GetFarmerByID(ctx context.Context, id uint) (*models.Farmer, error) {
	var farmer models.Farmer
	if err := r.DB.WithContext(ctx).First(&farmer, id).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *GormRepo) GetFarmerByFarmName(ctx context.Context, farmName string) (*models.Farmer, error) {
	var farmer models.Farmer
	if err := r.DB.WithContext(ctx).Where("farm_name = ?", farmName).First(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *GormRepo) GetFarmerByUserID(ctx context.Context, userID uint) (*models.Farmer, error) {
	var farmer models.Farmer
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *GormRepo) UpdateFarmer(ctx context.Context, farmer *models.Farmer) error {
	return r.DB.WithContext(ctx).Save(farmer).Error
}

func (r *GormRepo) DeleteFarmer(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Farmer{}, id).Error
}

func (r *GormRepo) ListFarmerProducts(ctx context.Context, farmerID uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
