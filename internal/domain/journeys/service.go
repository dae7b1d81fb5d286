package journeys

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	feedDefaultLimit = 20
	feedMaxLimit     = 100
	userListLimit    = 100
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListFeed returns public journeys, newest first. The limit defaults to 20
// and is capped at 100.
func (s *Service) ListFeed(ctx context.Context, limit int) ([]Journey, error) {
	if limit <= 0 {
		limit = feedDefaultLimit
	}
	if limit > feedMaxLimit {
		limit = feedMaxLimit
	}
	return s.repo.ListPublic(ctx, limit)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Journey, error) {
	return s.repo.ListByUser(ctx, userID, userListLimit)
}

// GetJourney bumps views_count before reading the row. The increment and the
// read are separate statements; concurrent readers race on the count.
func (s *Service) GetJourney(ctx context.Context, id string) (*Journey, error) {
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreateJourney(ctx context.Context, input CreateJourneyInput) (*Journey, error) {
	journeyType := input.JourneyType
	if journeyType == "" {
		journeyType = "solo"
	}
	visibility := input.Visibility
	if visibility == "" {
		visibility = "public"
	}
	rarity := 50.0
	if input.RarityScore != nil {
		rarity = *input.RarityScore
	}
	keywords := input.Keywords
	if keywords == nil {
		keywords = []byte("[]")
	}
	insights := input.CulturalInsights
	if insights == nil {
		insights = []byte("{}")
	}

	now := time.Now().UTC()
	journey := Journey{
		ID:               uuid.NewString(),
		UserID:           input.UserID,
		Title:            input.Title,
		Description:      input.Description,
		JourneyType:      journeyType,
		DepartureDate:    input.DepartureDate,
		ReturnDate:       input.ReturnDate,
		Legs:             input.Legs,
		Keywords:         keywords,
		AIStory:          input.AIStory,
		SimilarityScore:  input.SimilarityScore,
		RarityScore:      rarity,
		CulturalInsights: insights,
		Visibility:       visibility,
		LikesCount:       0,
		ViewsCount:       0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, &journey); err != nil {
		return nil, err
	}
	return &journey, nil
}

func (s *Service) UpdateJourney(ctx context.Context, id string, input UpdateJourneyInput) (*Journey, error) {
	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.JourneyType != nil {
		fields["journey_type"] = *input.JourneyType
	}
	if input.DepartureDate != nil {
		fields["departure_date"] = *input.DepartureDate
	}
	if input.ReturnDate != nil {
		fields["return_date"] = *input.ReturnDate
	}
	if input.Legs != nil {
		fields["legs"] = input.Legs
	}
	if input.Keywords != nil {
		fields["keywords"] = input.Keywords
	}
	if input.AIStory != nil {
		fields["ai_story"] = *input.AIStory
	}
	if input.SimilarityScore != nil {
		fields["similarity_score"] = *input.SimilarityScore
	}
	if input.RarityScore != nil {
		fields["rarity_score"] = *input.RarityScore
	}
	if input.CulturalInsights != nil {
		fields["cultural_insights"] = input.CulturalInsights
	}
	if input.Visibility != nil {
		fields["visibility"] = *input.Visibility
	}
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}
	fields["updated_at"] = time.Now().UTC()

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteJourney removes the like rows, then the journey. Sequential
// statements, no transaction.
func (s *Service) DeleteJourney(ctx context.Context, id string) error {
	if err := s.repo.DeleteLikesByJourney(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// LikeJourney increments likes_count unconditionally; the counter does not
// consult the like table. A non-empty userID additionally records a
// journey_likes row, ignored on conflict, so repeat likes by the same user
// still bump the count while leaving a single like row.
func (s *Service) LikeJourney(ctx context.Context, id, userID string) (int, error) {
	count, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		return 0, err
	}

	if userID != "" {
		like := JourneyLike{
			ID:        uuid.NewString(),
			JourneyID: id,
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.AddLike(ctx, &like); err != nil {
			return 0, err
		}
	}

	return count, nil
}
