package friends

import (
	"context"

	friendsdomain "journeys-app-go/internal/domain/friends"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ friendsdomain.Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]friendsdomain.UserFriend, error) {
	var result []friendsdomain.UserFriend
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&result).Error
	return result, err
}

func (r *PostgresRepository) Create(ctx context.Context, friend *friendsdomain.UserFriend) error {
	return r.db.WithContext(ctx).Create(friend).Error
}

func (r *PostgresRepository) DeletePair(ctx context.Context, userID, friendID string) error {
	return r.db.WithContext(ctx).
		Delete(&friendsdomain.UserFriend{}, "user_id = ? AND friend_id = ?", userID, friendID).Error
}
