package memories

import (
	"context"

	memoriesdomain "journeys-app-go/internal/domain/memories"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ memoriesdomain.Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) ListMemories(ctx context.Context, travelType string, limit int) ([]memoriesdomain.AnonymousMemory, error) {
	query := r.db.WithContext(ctx).Model(&memoriesdomain.AnonymousMemory{})
	if travelType != "" {
		query = query.Where("travel_type = ?", travelType)
	}

	var result []memoriesdomain.AnonymousMemory
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&result).Error
	return result, err
}

func (r *PostgresRepository) CreateMemory(ctx context.Context, memory *memoriesdomain.AnonymousMemory) error {
	return r.db.WithContext(ctx).Create(memory).Error
}

func (r *PostgresRepository) ListExchangesByUser(ctx context.Context, userID string) ([]memoriesdomain.MemoryExchange, error) {
	var exchanges []memoriesdomain.MemoryExchange
	err := r.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&exchanges).Error
	return exchanges, err
}

func (r *PostgresRepository) CreateExchange(ctx context.Context, exchange *memoriesdomain.MemoryExchange) error {
	return r.db.WithContext(ctx).Create(exchange).Error
}
