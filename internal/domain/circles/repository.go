package circles

import "context"

type Repository interface {
	ListAll(ctx context.Context, limit int) ([]CircleSummary, error)
	ListByMember(ctx context.Context, userID string, limit int) ([]CircleSummary, error)
	GetByID(ctx context.Context, id string) (*MemoryCircle, error)
	Create(ctx context.Context, circle *MemoryCircle) error

	ListMembers(ctx context.Context, circleID string) ([]MemoryCircleMember, error)
	AddMember(ctx context.Context, member *MemoryCircleMember) error

	ListJourneys(ctx context.Context, circleID string) ([]MemoryCircleJourney, error)
	AddJourney(ctx context.Context, shared *MemoryCircleJourney) error
}
