package circles

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const listCirclesLimit = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateCircle inserts the circle and then the owner as a member with the
// elevated role. The two inserts are not wrapped in a transaction.
func (s *Service) CreateCircle(ctx context.Context, input CreateCircleInput) (*MemoryCircle, error) {
	now := time.Now().UTC()
	circle := MemoryCircle{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
	}

	if err := s.repo.Create(ctx, &circle); err != nil {
		return nil, err
	}

	owner := MemoryCircleMember{
		ID:       uuid.NewString(),
		CircleID: circle.ID,
		UserID:   input.OwnerID,
		Role:     "owner",
		JoinedAt: now,
	}
	if err := s.repo.AddMember(ctx, &owner); err != nil {
		return nil, err
	}

	return &circle, nil
}

func (s *Service) ListCircles(ctx context.Context, userID string) ([]CircleSummary, error) {
	if userID != "" {
		return s.repo.ListByMember(ctx, userID, listCirclesLimit)
	}
	return s.repo.ListAll(ctx, listCirclesLimit)
}

func (s *Service) GetCircle(ctx context.Context, id string) (*CircleDetail, error) {
	circle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	journeys, err := s.repo.ListJourneys(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CircleDetail{Circle: *circle, Members: members, Journeys: journeys}, nil
}

// AddMember always inserts; there is no uniqueness constraint on the pair, so
// re-inviting a user produces a second membership row.
func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*MemoryCircleMember, error) {
	role := input.Role
	if role == "" {
		role = "member"
	}

	member := MemoryCircleMember{
		ID:       uuid.NewString(),
		CircleID: input.CircleID,
		UserID:   input.UserID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.repo.AddMember(ctx, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *Service) ShareJourney(ctx context.Context, input ShareJourneyInput) (*MemoryCircleJourney, error) {
	shared := MemoryCircleJourney{
		ID:        uuid.NewString(),
		CircleID:  input.CircleID,
		JourneyID: input.JourneyID,
		SharedBy:  input.SharedBy,
		SharedAt:  time.Now().UTC(),
	}
	if err := s.repo.AddJourney(ctx, &shared); err != nil {
		return nil, err
	}
	return &shared, nil
}
