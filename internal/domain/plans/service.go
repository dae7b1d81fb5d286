package plans

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const listPlansLimit = 200

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPlans(ctx context.Context, userID string) ([]FuturePlan, error) {
	return s.repo.ListByUser(ctx, userID, listPlansLimit)
}

func (s *Service) CreatePlan(ctx context.Context, input CreatePlanInput) (*FuturePlan, error) {
	now := time.Now().UTC()
	plan := FuturePlan{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Reason:      input.Reason,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan always assigns every column, COALESCE-ing unsupplied values
// against the stored row, then re-reads the result. This differs from the
// selective-clause updates the other resources use; both behaviors are kept
// per resource.
func (s *Service) UpdatePlan(ctx context.Context, id string, input UpdatePlanInput) (*FuturePlan, error) {
	if err := s.repo.UpdateCoalescing(ctx, id, input); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeletePlan(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
