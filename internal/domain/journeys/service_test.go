package journeys

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"gorm.io/datatypes"
)

type fakeJourneysRepo struct {
	journeys map[string]*Journey
	likes    map[string]*JourneyLike

	publicLimit int
	userLimit   int
}

func newFakeJourneysRepo() *fakeJourneysRepo {
	return &fakeJourneysRepo{
		journeys: make(map[string]*Journey),
		likes:    make(map[string]*JourneyLike),
	}
}

func (r *fakeJourneysRepo) ListPublic(ctx context.Context, limit int) ([]Journey, error) {
	r.publicLimit = limit
	items := make([]Journey, 0)
	for _, journey := range r.journeys {
		if journey.Visibility == "public" {
			items = append(items, *journey)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeJourneysRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Journey, error) {
	r.userLimit = limit
	items := make([]Journey, 0)
	for _, journey := range r.journeys {
		if journey.UserID == userID {
			items = append(items, *journey)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeJourneysRepo) GetByID(ctx context.Context, id string) (*Journey, error) {
	journey, ok := r.journeys[id]
	if !ok {
		return nil, ErrJourneyNotFound
	}
	return journey, nil
}

func (r *fakeJourneysRepo) IncrementViews(ctx context.Context, id string) error {
	journey, ok := r.journeys[id]
	if !ok {
		return ErrJourneyNotFound
	}
	journey.ViewsCount++
	return nil
}

func (r *fakeJourneysRepo) Create(ctx context.Context, journey *Journey) error {
	r.journeys[journey.ID] = journey
	return nil
}

func (r *fakeJourneysRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	journey, ok := r.journeys[id]
	if !ok {
		return ErrJourneyNotFound
	}
	if v, ok := fields["title"]; ok {
		journey.Title = v.(string)
	}
	if v, ok := fields["description"]; ok {
		journey.Description = v.(string)
	}
	if v, ok := fields["journey_type"]; ok {
		journey.JourneyType = v.(string)
	}
	if v, ok := fields["legs"]; ok {
		journey.Legs = v.(datatypes.JSON)
	}
	if v, ok := fields["ai_story"]; ok {
		journey.AIStory = v.(string)
	}
	if v, ok := fields["rarity_score"]; ok {
		journey.RarityScore = v.(float64)
	}
	if v, ok := fields["visibility"]; ok {
		journey.Visibility = v.(string)
	}
	if v, ok := fields["updated_at"]; ok {
		journey.UpdatedAt = v.(time.Time)
	}
	return nil
}

func (r *fakeJourneysRepo) Delete(ctx context.Context, id string) error {
	delete(r.journeys, id)
	return nil
}

func (r *fakeJourneysRepo) IncrementLikes(ctx context.Context, id string) (int, error) {
	journey, ok := r.journeys[id]
	if !ok {
		return 0, ErrJourneyNotFound
	}
	journey.LikesCount++
	return journey.LikesCount, nil
}

func (r *fakeJourneysRepo) AddLike(ctx context.Context, like *JourneyLike) error {
	for _, existing := range r.likes {
		if existing.JourneyID == like.JourneyID && existing.UserID == like.UserID {
			return nil
		}
	}
	r.likes[like.ID] = like
	return nil
}

func (r *fakeJourneysRepo) DeleteLikesByJourney(ctx context.Context, journeyID string) error {
	for id, like := range r.likes {
		if like.JourneyID == journeyID {
			delete(r.likes, id)
		}
	}
	return nil
}

func TestListFeedDefaultsLimit(t *testing.T) {
	repo := newFakeJourneysRepo()
	svc := NewService(repo)

	if _, err := svc.ListFeed(context.Background(), 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.publicLimit != 20 {
		t.Fatalf("expected default limit 20, got %d", repo.publicLimit)
	}
}

func TestListFeedCapsLimit(t *testing.T) {
	repo := newFakeJourneysRepo()
	svc := NewService(repo)

	if _, err := svc.ListFeed(context.Background(), 500); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.publicLimit != 100 {
		t.Fatalf("expected capped limit 100, got %d", repo.publicLimit)
	}
}

func TestListFeedOnlyPublic(t *testing.T) {
	repo := newFakeJourneysRepo()
	repo.journeys["jr-1"] = &Journey{ID: "jr-1", UserID: "user-1", Title: "Open", Visibility: "public"}
	repo.journeys["jr-2"] = &Journey{ID: "jr-2", UserID: "user-1", Title: "Hidden", Visibility: "private"}
	svc := NewService(repo)

	items, err := svc.ListFeed(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 1 || items[0].ID != "jr-1" {
		t.Fatalf("expected only the public journey, got %+v", items)
	}
}

func TestGetJourneyIncrementsViews(t *testing.T) {
	repo := newFakeJourneysRepo()
	repo.journeys["jr-1"] = &Journey{ID: "jr-1", UserID: "user-1", Title: "Trip", Visibility: "public"}
	svc := NewService(repo)

	journey, err := svc.GetJourney(context.Background(), "jr-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if journey.ViewsCount != 1 {
		t.Fatalf("expected views 1 after first read, got %d", journey.ViewsCount)
	}

	journey, err = svc.GetJourney(context.Background(), "jr-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if journey.ViewsCount != 2 {
		t.Fatalf("expected views 2 after second read, got %d", journey.ViewsCount)
	}
}

func TestGetJourneyNotFound(t *testing.T) {
	repo := newFakeJourneysRepo()
	svc := NewService(repo)

	if _, err := svc.GetJourney(context.Background(), "jr-1"); !errors.Is(err, ErrJourneyNotFound) {
		t.Fatalf("expected ErrJourneyNotFound, got %v", err)
	}
}

func TestCreateJourneyDefaults(t *testing.T) {
	repo := newFakeJourneysRepo()
	svc := NewService(repo)

	created, err := svc.CreateJourney(context.Background(), CreateJourneyInput{
		UserID: "user-1",
		Title:  "Andes crossing",
		Legs:   datatypes.JSON(`[{"city":"Santiago"}]`),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.JourneyType != "solo" {
		t.Fatalf("expected default journey type solo, got %q", created.JourneyType)
	}
	if created.Visibility != "public" {
		t.Fatalf("expected default visibility public, got %q", created.Visibility)
	}
	if created.RarityScore != 50 {
		t.Fatalf("expected default rarity 50, got %v", created.RarityScore)
	}
	if string(created.Keywords) != "[]" {
		t.Fatalf("expected empty keywords array, got %q", string(created.Keywords))
	}
	if string(created.CulturalInsights) != "{}" {
		t.Fatalf("expected empty insights object, got %q", string(created.CulturalInsights))
	}
	if created.LikesCount != 0 || created.ViewsCount != 0 {
		t.Fatalf("expected zero counters, got likes=%d views=%d", created.LikesCount, created.ViewsCount)
	}
}

func TestCreateJourneyKeepsExplicitRarity(t *testing.T) {
	repo := newFakeJourneysRepo()
	svc := NewService(repo)

	rarity := 87.5
	created, err := svc.CreateJourney(context.Background(), CreateJourneyInput{
		UserID:      "user-1",
		Title:       "Andes crossing",
		Legs:        datatypes.JSON(`[]`),
		RarityScore: &rarity,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.RarityScore != 87.5 {
		t.Fatalf("expected rarity 87.5, got %v", created.RarityScore)
	}
}

func TestCreateJourneyKeepsZeroRarity(t *testing.T) {
	repo := newFakeJourneysRepo()
	svc := NewService(repo)

	rarity := 0.0
	created, err := svc.CreateJourney(context.Background(), CreateJourneyInput{
		UserID:      "user-1",
		Title:       "Commuter line",
		Legs:        datatypes.JSON(`[]`),
		RarityScore: &rarity,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.RarityScore != 0 {
		t.Fatalf("expected rarity 0, got %v", created.RarityScore)
	}
	if repo.journeys[created.ID].RarityScore != 0 {
		t.Fatalf("expected stored rarity 0, got %v", repo.journeys[created.ID].RarityScore)
	}
}

func TestUpdateJourneyEmptyInput(t *testing.T) {
	repo := newFakeJourneysRepo()
	repo.journeys["jr-1"] = &Journey{ID: "jr-1", UserID: "user-1", Title: "Trip"}
	svc := NewService(repo)

	if _, err := svc.UpdateJourney(context.Background(), "jr-1", UpdateJourneyInput{}); !errors.Is(err, ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestUpdateJourneyPartial(t *testing.T) {
	repo := newFakeJourneysRepo()
	repo.journeys["jr-1"] = &Journey{ID: "jr-1", UserID: "user-1", Title: "Old", Description: "Keep me", RarityScore: 50}
	svc := NewService(repo)

	title := "New"
	updated, err := svc.UpdateJourney(context.Background(), "jr-1", UpdateJourneyInput{Title: &title})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Title != "New" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Description != "Keep me" {
		t.Fatalf("expected description untouched, got %q", updated.Description)
	}
	if updated.RarityScore != 50 {
		t.Fatalf("expected rarity untouched, got %v", updated.RarityScore)
	}
}

func TestLikeJourneyAnonymous(t *testing.T) {
	repo := newFakeJourneysRepo()
	repo.journeys["jr-1"] = &Journey{ID: "jr-1", UserID: "user-1", Title: "Trip"}
	svc := NewService(repo)

	count, err := svc.LikeJourney(context.Background(), "jr-1", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
	if len(repo.likes) != 0 {
		t.Fatalf("expected no like rows for anonymous like, got %d", len(repo.likes))
	}
}

func TestLikeJourneyRepeatBumpsCountKeepsOneRow(t *testing.T) {
	repo := newFakeJourneysRepo()
	repo.journeys["jr-1"] = &Journey{ID: "jr-1", UserID: "user-1", Title: "Trip"}
	svc := NewService(repo)

	if _, err := svc.LikeJourney(context.Background(), "jr-1", "user-2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	count, err := svc.LikeJourney(context.Background(), "jr-1", "user-2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2 after repeat like, got %d", count)
	}
	if len(repo.likes) != 1 {
		t.Fatalf("expected a single like row, got %d", len(repo.likes))
	}
}

func TestLikeJourneyNotFound(t *testing.T) {
	repo := newFakeJourneysRepo()
	svc := NewService(repo)

	if _, err := svc.LikeJourney(context.Background(), "jr-1", "user-2"); !errors.Is(err, ErrJourneyNotFound) {
		t.Fatalf("expected ErrJourneyNotFound, got %v", err)
	}
}

func TestDeleteJourneyRemovesLikes(t *testing.T) {
	repo := newFakeJourneysRepo()
	repo.journeys["jr-1"] = &Journey{ID: "jr-1", UserID: "user-1", Title: "Trip"}
	repo.likes["like-1"] = &JourneyLike{ID: "like-1", JourneyID: "jr-1", UserID: "user-2"}
	repo.likes["like-2"] = &JourneyLike{ID: "like-2", JourneyID: "jr-2", UserID: "user-2"}
	svc := NewService(repo)

	if err := svc.DeleteJourney(context.Background(), "jr-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.journeys["jr-1"]; ok {
		t.Fatalf("expected journey deleted")
	}
	if _, ok := repo.likes["like-1"]; ok {
		t.Fatalf("expected journey likes deleted")
	}
	if _, ok := repo.likes["like-2"]; !ok {
		t.Fatalf("expected other journey's likes untouched")
	}
}
