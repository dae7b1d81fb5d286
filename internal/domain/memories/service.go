package memories

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const listMemoriesLimit = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListMemories(ctx context.Context, travelType string) ([]AnonymousMemory, error) {
	return s.repo.ListMemories(ctx, travelType, listMemoriesLimit)
}

func (s *Service) CreateMemory(ctx context.Context, input CreateMemoryInput) (*AnonymousMemory, error) {
	travelType := input.TravelType
	if travelType == "" {
		travelType = "solo"
	}
	keywords := input.Keywords
	if keywords == nil {
		keywords = []byte("[]")
	}

	memory := AnonymousMemory{
		ID:             uuid.NewString(),
		JourneyID:      input.JourneyID,
		OriginalUserID: input.OriginalUserID,
		Title:          input.Title,
		Story:          input.Story,
		Location:       input.Location,
		TravelType:     travelType,
		Keywords:       keywords,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.CreateMemory(ctx, &memory); err != nil {
		return nil, err
	}
	return &memory, nil
}

func (s *Service) ListExchanges(ctx context.Context, userID string) ([]MemoryExchange, error) {
	return s.repo.ListExchangesByUser(ctx, userID)
}

// CreateExchange logs a pairing of two anonymous stories. There is no state
// machine; the row is the whole record.
func (s *Service) CreateExchange(ctx context.Context, input CreateExchangeInput) (*MemoryExchange, error) {
	exchange := MemoryExchange{
		ID:        uuid.NewString(),
		User1ID:   input.User1ID,
		User2ID:   input.User2ID,
		Memory1ID: input.Memory1ID,
		Memory2ID: input.Memory2ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateExchange(ctx, &exchange); err != nil {
		return nil, err
	}
	return &exchange, nil
}
