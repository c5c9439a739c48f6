package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/farmlink-ke/farm_market/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UpdateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Save(user).Error
}

// Authenticate looks the user up by username and checks the password against
// the stored hash. Wrong username and wrong password are indistinguishable to
// the caller.
func (r *GormRepo) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Authenticate(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// DeleteUser removes a user and cascades their sent and received chat
// messages. It refuses to delete users that still own a farmer profile,
// orders or reviews.
func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		for _, q := range []*gorm.DB{
			tx.Model(&models.Farmer{}).Where("user_id = ?", id),
			tx.Model(&models.Order{}).Where("customer_id = ?", id),
			tx.Model(&models.Review{}).Where("customer_id = ?", id),
		} {
			var n int64
			if err := q.Count(&n).Error; err != nil {
				return err
			}
			total += n
		}
		if total > 0 {
			return ErrUserHasRecords
		}

		if err := tx.Where("sender_id = ? OR receiver_id = ?", id, id).
			Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

func (r *GormRepo) ListUserOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Where("customer_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListUserReviews(ctx context.Context, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.DB.WithContext(ctx).
		Where("customer_id = ?", userID).
		Order("review_date DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
