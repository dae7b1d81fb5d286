package friends

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]UserFriend, error)
	Create(ctx context.Context, friend *UserFriend) error
	DeletePair(ctx context.Context, userID, friendID string) error
}
