package circles

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type fakeCirclesRepo struct {
	circles  map[string]*MemoryCircle
	members  map[string]*MemoryCircleMember
	journeys map[string]*MemoryCircleJourney
}

func newFakeCirclesRepo() *fakeCirclesRepo {
	return &fakeCirclesRepo{
		circles:  make(map[string]*MemoryCircle),
		members:  make(map[string]*MemoryCircleMember),
		journeys: make(map[string]*MemoryCircleJourney),
	}
}

func (r *fakeCirclesRepo) memberCount(circleID string) int64 {
	var count int64
	for _, member := range r.members {
		if member.CircleID == circleID {
			count++
		}
	}
	return count
}

func (r *fakeCirclesRepo) ListAll(ctx context.Context, limit int) ([]CircleSummary, error) {
	items := make([]CircleSummary, 0)
	for _, circle := range r.circles {
		items = append(items, CircleSummary{MemoryCircle: *circle, MemberCount: r.memberCount(circle.ID)})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeCirclesRepo) ListByMember(ctx context.Context, userID string, limit int) ([]CircleSummary, error) {
	seen := make(map[string]struct{})
	items := make([]CircleSummary, 0)
	for _, member := range r.members {
		if member.UserID != userID {
			continue
		}
		if _, ok := seen[member.CircleID]; ok {
			continue
		}
		seen[member.CircleID] = struct{}{}
		if circle, ok := r.circles[member.CircleID]; ok {
			items = append(items, CircleSummary{MemoryCircle: *circle, MemberCount: r.memberCount(circle.ID)})
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

func (r *fakeCirclesRepo) GetByID(ctx context.Context, id string) (*MemoryCircle, error) {
	circle, ok := r.circles[id]
	if !ok {
		return nil, ErrCircleNotFound
	}
	return circle, nil
}

func (r *fakeCirclesRepo) Create(ctx context.Context, circle *MemoryCircle) error {
	r.circles[circle.ID] = circle
	return nil
}

func (r *fakeCirclesRepo) ListMembers(ctx context.Context, circleID string) ([]MemoryCircleMember, error) {
	items := make([]MemoryCircleMember, 0)
	for _, member := range r.members {
		if member.CircleID == circleID {
			items = append(items, *member)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *fakeCirclesRepo) AddMember(ctx context.Context, member *MemoryCircleMember) error {
	r.members[member.ID] = member
	return nil
}

func (r *fakeCirclesRepo) ListJourneys(ctx context.Context, circleID string) ([]MemoryCircleJourney, error) {
	items := make([]MemoryCircleJourney, 0)
	for _, shared := range r.journeys {
		if shared.CircleID == circleID {
			items = append(items, *shared)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *fakeCirclesRepo) AddJourney(ctx context.Context, shared *MemoryCircleJourney) error {
	r.journeys[shared.ID] = shared
	return nil
}

func TestCreateCircleAddsOwnerMember(t *testing.T) {
	repo := newFakeCirclesRepo()
	svc := NewService(repo)

	created, err := svc.CreateCircle(context.Background(), CreateCircleInput{
		Name:    "Backpackers",
		OwnerID: "user-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	members, err := repo.ListMembers(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	if members[0].UserID != "user-1" || members[0].Role != "owner" {
		t.Fatalf("expected owner membership, got %+v", members[0])
	}
}

func TestListCirclesByMember(t *testing.T) {
	repo := newFakeCirclesRepo()
	repo.circles["cir-1"] = &MemoryCircle{ID: "cir-1", Name: "Backpackers", OwnerID: "user-1"}
	repo.circles["cir-2"] = &MemoryCircle{ID: "cir-2", Name: "Foodies", OwnerID: "user-2"}
	repo.members["mem-1"] = &MemoryCircleMember{ID: "mem-1", CircleID: "cir-1", UserID: "user-3", Role: "member"}
	svc := NewService(repo)

	items, err := svc.ListCircles(context.Background(), "user-3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 1 || items[0].ID != "cir-1" {
		t.Fatalf("expected only cir-1, got %+v", items)
	}
	if items[0].MemberCount != 1 {
		t.Fatalf("expected member count 1, got %d", items[0].MemberCount)
	}
}

func TestListCirclesAllWithoutUser(t *testing.T) {
	repo := newFakeCirclesRepo()
	repo.circles["cir-1"] = &MemoryCircle{ID: "cir-1", Name: "Backpackers", OwnerID: "user-1"}
	repo.circles["cir-2"] = &MemoryCircle{ID: "cir-2", Name: "Foodies", OwnerID: "user-2"}
	svc := NewService(repo)

	items, err := svc.ListCircles(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 circles, got %d", len(items))
	}
}

func TestGetCircleDetail(t *testing.T) {
	repo := newFakeCirclesRepo()
	repo.circles["cir-1"] = &MemoryCircle{ID: "cir-1", Name: "Backpackers", OwnerID: "user-1"}
	repo.members["mem-1"] = &MemoryCircleMember{ID: "mem-1", CircleID: "cir-1", UserID: "user-1", Role: "owner"}
	repo.journeys["shr-1"] = &MemoryCircleJourney{ID: "shr-1", CircleID: "cir-1", JourneyID: "jr-1", SharedBy: "user-1"}
	svc := NewService(repo)

	detail, err := svc.GetCircle(context.Background(), "cir-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if detail.Circle.ID != "cir-1" {
		t.Fatalf("expected circle cir-1, got %q", detail.Circle.ID)
	}
	if len(detail.Members) != 1 || len(detail.Journeys) != 1 {
		t.Fatalf("expected 1 member and 1 journey, got %d/%d", len(detail.Members), len(detail.Journeys))
	}
}

func TestGetCircleNotFound(t *testing.T) {
	repo := newFakeCirclesRepo()
	svc := NewService(repo)

	if _, err := svc.GetCircle(context.Background(), "cir-1"); !errors.Is(err, ErrCircleNotFound) {
		t.Fatalf("expected ErrCircleNotFound, got %v", err)
	}
}

func TestAddMemberDefaultsRole(t *testing.T) {
	repo := newFakeCirclesRepo()
	svc := NewService(repo)

	member, err := svc.AddMember(context.Background(), AddMemberInput{CircleID: "cir-1", UserID: "user-2"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if member.Role != "member" {
		t.Fatalf("expected default role member, got %q", member.Role)
	}
}

func TestAddMemberTwiceKeepsBothRows(t *testing.T) {
	repo := newFakeCirclesRepo()
	svc := NewService(repo)

	if _, err := svc.AddMember(context.Background(), AddMemberInput{CircleID: "cir-1", UserID: "user-2"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.AddMember(context.Background(), AddMemberInput{CircleID: "cir-1", UserID: "user-2"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.members) != 2 {
		t.Fatalf("expected duplicate membership rows, got %d", len(repo.members))
	}
}

func TestShareJourney(t *testing.T) {
	repo := newFakeCirclesRepo()
	svc := NewService(repo)

	shared, err := svc.ShareJourney(context.Background(), ShareJourneyInput{CircleID: "cir-1", JourneyID: "jr-1", SharedBy: "user-1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if shared.CircleID != "cir-1" || shared.JourneyID != "jr-1" {
		t.Fatalf("expected share row, got %+v", shared)
	}
	if repo.journeys[shared.ID] == nil {
		t.Fatalf("share not stored")
	}
}
