package memories

import "context"

type Repository interface {
	ListMemories(ctx context.Context, travelType string, limit int) ([]AnonymousMemory, error)
	CreateMemory(ctx context.Context, memory *AnonymousMemory) error

	ListExchangesByUser(ctx context.Context, userID string) ([]MemoryExchange, error)
	CreateExchange(ctx context.Context, exchange *MemoryExchange) error
}
