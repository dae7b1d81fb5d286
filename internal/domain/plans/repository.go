package plans

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]FuturePlan, error)
	GetByID(ctx context.Context, id string) (*FuturePlan, error)
	Create(ctx context.Context, plan *FuturePlan) error
	// UpdateCoalescing issues a single statement assigning every column,
	// falling back to the stored value for nil inputs.
	UpdateCoalescing(ctx context.Context, id string, input UpdatePlanInput) error
	Delete(ctx context.Context, id string) error
}
