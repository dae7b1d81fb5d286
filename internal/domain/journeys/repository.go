package journeys

import "context"

type Repository interface {
	ListPublic(ctx context.Context, limit int) ([]Journey, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Journey, error)
	GetByID(ctx context.Context, id string) (*Journey, error)
	IncrementViews(ctx context.Context, id string) error
	Create(ctx context.Context, journey *Journey) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error

	// IncrementLikes bumps likes_count and returns the new value.
	IncrementLikes(ctx context.Context, id string) (int, error)
	AddLike(ctx context.Context, like *JourneyLike) error
	DeleteLikesByJourney(ctx context.Context, journeyID string) error
}
