package plans

import (
	"context"
	"errors"
	"time"

	plansdomain "journeys-app-go/internal/domain/plans"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ plansdomain.Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]plansdomain.FuturePlan, error) {
	var plans []plansdomain.FuturePlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&plans).Error
	return plans, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*plansdomain.FuturePlan, error) {
	var plan plansdomain.FuturePlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plansdomain.ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PostgresRepository) Create(ctx context.Context, plan *plansdomain.FuturePlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// UpdateCoalescing assigns every column in one statement, keeping the stored
// value wherever the input is nil.
func (r *PostgresRepository) UpdateCoalescing(ctx context.Context, id string, input plansdomain.UpdatePlanInput) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE future_plans
		SET destination = COALESCE(?, destination),
		    start_date = COALESCE(?, start_date),
		    end_date = COALESCE(?, end_date),
		    reason = COALESCE(?, reason),
		    notes = COALESCE(?, notes),
		    updated_at = ?
		WHERE id = ?`,
		input.Destination,
		input.StartDate,
		input.EndDate,
		input.Reason,
		input.Notes,
		time.Now().UTC(),
		id,
	).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&plansdomain.FuturePlan{}, "id = ?", id).Error
}
