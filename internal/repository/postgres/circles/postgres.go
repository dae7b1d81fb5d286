package circles

import (
	"context"
	"errors"

	circlesdomain "journeys-app-go/internal/domain/circles"
	"gorm.io/gorm"
)

const memberCountSelect = "memory_circles.*, (SELECT COUNT(*) FROM memory_circle_members m WHERE m.circle_id = memory_circles.id) AS member_count"

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ circlesdomain.Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) ListAll(ctx context.Context, limit int) ([]circlesdomain.CircleSummary, error) {
	var summaries []circlesdomain.CircleSummary
	err := r.db.WithContext(ctx).
		Model(&circlesdomain.MemoryCircle{}).
		Select(memberCountSelect).
		Order("memory_circles.created_at DESC").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, err
}

func (r *PostgresRepository) ListByMember(ctx context.Context, userID string, limit int) ([]circlesdomain.CircleSummary, error) {
	var summaries []circlesdomain.CircleSummary
	err := r.db.WithContext(ctx).
		Model(&circlesdomain.MemoryCircle{}).
		Select("DISTINCT "+memberCountSelect).
		Joins("JOIN memory_circle_members members ON members.circle_id = memory_circles.id").
		Where("members.user_id = ?", userID).
		Order("memory_circles.created_at DESC").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*circlesdomain.MemoryCircle, error) {
	var circle circlesdomain.MemoryCircle
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&circle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, circlesdomain.ErrCircleNotFound
		}
		return nil, err
	}
	return &circle, nil
}

func (r *PostgresRepository) Create(ctx context.Context, circle *circlesdomain.MemoryCircle) error {
	return r.db.WithContext(ctx).Create(circle).Error
}

func (r *PostgresRepository) ListMembers(ctx context.Context, circleID string) ([]circlesdomain.MemoryCircleMember, error) {
	var members []circlesdomain.MemoryCircleMember
	err := r.db.WithContext(ctx).
		Where("circle_id = ?", circleID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (r *PostgresRepository) AddMember(ctx context.Context, member *circlesdomain.MemoryCircleMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) ListJourneys(ctx context.Context, circleID string) ([]circlesdomain.MemoryCircleJourney, error) {
	var shared []circlesdomain.MemoryCircleJourney
	err := r.db.WithContext(ctx).
		Where("circle_id = ?", circleID).
		Order("shared_at DESC").
		Find(&shared).Error
	return shared, err
}

func (r *PostgresRepository) AddJourney(ctx context.Context, shared *circlesdomain.MemoryCircleJourney) error {
	return r.db.WithContext(ctx).Create(shared).Error
}
