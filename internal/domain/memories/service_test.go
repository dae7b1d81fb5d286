package memories

import (
	"context"
	"sort"
	"testing"
)

type fakeMemoriesRepo struct {
	memories  map[string]*AnonymousMemory
	exchanges map[string]*MemoryExchange

	listLimit int
}

func newFakeMemoriesRepo() *fakeMemoriesRepo {
	return &fakeMemoriesRepo{
		memories:  make(map[string]*AnonymousMemory),
		exchanges: make(map[string]*MemoryExchange),
	}
}

func (r *fakeMemoriesRepo) ListMemories(ctx context.Context, travelType string, limit int) ([]AnonymousMemory, error) {
	r.listLimit = limit
	items := make([]AnonymousMemory, 0)
	for _, memory := range r.memories {
		if travelType != "" && memory.TravelType != travelType {
			continue
		}
		items = append(items, *memory)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeMemoriesRepo) CreateMemory(ctx context.Context, memory *AnonymousMemory) error {
	r.memories[memory.ID] = memory
	return nil
}

func (r *fakeMemoriesRepo) ListExchangesByUser(ctx context.Context, userID string) ([]MemoryExchange, error) {
	items := make([]MemoryExchange, 0)
	for _, exchange := range r.exchanges {
		if exchange.User1ID == userID || exchange.User2ID == userID {
			items = append(items, *exchange)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *fakeMemoriesRepo) CreateExchange(ctx context.Context, exchange *MemoryExchange) error {
	r.exchanges[exchange.ID] = exchange
	return nil
}

func TestCreateMemoryDefaults(t *testing.T) {
	repo := newFakeMemoriesRepo()
	svc := NewService(repo)

	created, err := svc.CreateMemory(context.Background(), CreateMemoryInput{
		JourneyID:      "jr-1",
		OriginalUserID: "user-1",
		Title:          "Night train to Hanoi",
		Story:          "We shared tea with strangers.",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.TravelType != "solo" {
		t.Fatalf("expected default travel type solo, got %q", created.TravelType)
	}
	if string(created.Keywords) != "[]" {
		t.Fatalf("expected empty keywords array, got %q", string(created.Keywords))
	}
	if repo.memories[created.ID] == nil {
		t.Fatalf("memory not stored")
	}
}

func TestListMemoriesFiltersTravelType(t *testing.T) {
	repo := newFakeMemoriesRepo()
	repo.memories["mem-1"] = &AnonymousMemory{ID: "mem-1", JourneyID: "jr-1", OriginalUserID: "user-1", Title: "A", Story: "a", TravelType: "solo"}
	repo.memories["mem-2"] = &AnonymousMemory{ID: "mem-2", JourneyID: "jr-2", OriginalUserID: "user-2", Title: "B", Story: "b", TravelType: "family"}
	svc := NewService(repo)

	items, err := svc.ListMemories(context.Background(), "family")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 1 || items[0].ID != "mem-2" {
		t.Fatalf("expected only mem-2, got %+v", items)
	}
	if repo.listLimit != 50 {
		t.Fatalf("expected limit 50, got %d", repo.listLimit)
	}
}

func TestListExchangesMatchesEitherSide(t *testing.T) {
	repo := newFakeMemoriesRepo()
	repo.exchanges["exc-1"] = &MemoryExchange{ID: "exc-1", User1ID: "user-1", User2ID: "user-2", Memory1ID: "mem-1", Memory2ID: "mem-2"}
	repo.exchanges["exc-2"] = &MemoryExchange{ID: "exc-2", User1ID: "user-3", User2ID: "user-1", Memory1ID: "mem-3", Memory2ID: "mem-4"}
	repo.exchanges["exc-3"] = &MemoryExchange{ID: "exc-3", User1ID: "user-3", User2ID: "user-4", Memory1ID: "mem-5", Memory2ID: "mem-6"}
	svc := NewService(repo)

	items, err := svc.ListExchanges(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(items))
	}
}

func TestCreateExchangeStoresRow(t *testing.T) {
	repo := newFakeMemoriesRepo()
	svc := NewService(repo)

	created, err := svc.CreateExchange(context.Background(), CreateExchangeInput{
		User1ID:   "user-1",
		User2ID:   "user-2",
		Memory1ID: "mem-1",
		Memory2ID: "mem-2",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if repo.exchanges[created.ID] == nil {
		t.Fatalf("exchange not stored")
	}
}
