package journeys

import (
	"context"
	"errors"

	journeysdomain "journeys-app-go/internal/domain/journeys"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ journeysdomain.Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) ListPublic(ctx context.Context, limit int) ([]journeysdomain.Journey, error) {
	var journeys []journeysdomain.Journey
	err := r.db.WithContext(ctx).
		Where("visibility = ?", "public").
		Order("created_at DESC").
		Limit(limit).
		Find(&journeys).Error
	return journeys, err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]journeysdomain.Journey, error) {
	var journeys []journeysdomain.Journey
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&journeys).Error
	return journeys, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*journeysdomain.Journey, error) {
	var journey journeysdomain.Journey
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&journey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, journeysdomain.ErrJourneyNotFound
		}
		return nil, err
	}
	return &journey, nil
}

func (r *PostgresRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&journeysdomain.Journey{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *PostgresRepository) Create(ctx context.Context, journey *journeysdomain.Journey) error {
	return r.db.WithContext(ctx).Create(journey).Error
}

func (r *PostgresRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&journeysdomain.Journey{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&journeysdomain.Journey{}, "id = ?", id).Error
}

func (r *PostgresRepository) IncrementLikes(ctx context.Context, id string) (int, error) {
	var count int
	result := r.db.WithContext(ctx).Raw(
		"UPDATE journeys SET likes_count = likes_count + 1 WHERE id = ? RETURNING likes_count",
		id,
	).Scan(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, journeysdomain.ErrJourneyNotFound
	}
	return count, nil
}

func (r *PostgresRepository) AddLike(ctx context.Context, like *journeysdomain.JourneyLike) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "journey_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(like).Error
}

func (r *PostgresRepository) DeleteLikesByJourney(ctx context.Context, journeyID string) error {
	return r.db.WithContext(ctx).
		Delete(&journeysdomain.JourneyLike{}, "journey_id = ?", journeyID).Error
}
