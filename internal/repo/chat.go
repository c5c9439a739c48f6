package repo

import (
	"context"

	"github.com/farmlink-ke/farm_market/internal/models"
)

func (r *GormRepo) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	return r.DB.WithContext(ctx).Create(msg).Error
}

// ListConversation returns all messages exchanged between two users, oldest
// first.
func (r *GormRepo) ListConversation(ctx context.Context, userA, userB uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := r.DB.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("timestamp ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *GormRepo) ListSentMessages(ctx context.Context, userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := r.DB.WithContext(ctx).
		Where("sender_id = ?", userID).
		Order("timestamp ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *GormRepo) ListReceivedMessages(ctx context.Context, userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := r.DB.WithContext(ctx).
		Where("receiver_id = ?", userID).
		Order("timestamp ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
