package friends

import (
	"context"
	"sort"
	"testing"
)

type fakeFriendsRepo struct {
	friends map[string]*UserFriend
}

func newFakeFriendsRepo() *fakeFriendsRepo {
	return &fakeFriendsRepo{friends: make(map[string]*UserFriend)}
}

func (r *fakeFriendsRepo) ListByUser(ctx context.Context, userID string) ([]UserFriend, error) {
	items := make([]UserFriend, 0)
	for _, friend := range r.friends {
		if friend.UserID == userID {
			items = append(items, *friend)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *fakeFriendsRepo) Create(ctx context.Context, friend *UserFriend) error {
	r.friends[friend.ID] = friend
	return nil
}

func (r *fakeFriendsRepo) DeletePair(ctx context.Context, userID, friendID string) error {
	for id, friend := range r.friends {
		if friend.UserID == userID && friend.FriendID == friendID {
			delete(r.friends, id)
		}
	}
	return nil
}

func TestAddFriendDefaultsStatus(t *testing.T) {
	repo := newFakeFriendsRepo()
	svc := NewService(repo)

	created, err := svc.AddFriend(context.Background(), AddFriendInput{
		UserID:     "user-1",
		FriendID:   "user-2",
		FriendName: "Sam",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Status != "active" {
		t.Fatalf("expected default status active, got %q", created.Status)
	}
	if repo.friends[created.ID] == nil {
		t.Fatalf("friend not stored")
	}
}

func TestListFriendsScopedToUser(t *testing.T) {
	repo := newFakeFriendsRepo()
	repo.friends["fr-1"] = &UserFriend{ID: "fr-1", UserID: "user-1", FriendID: "user-2"}
	repo.friends["fr-2"] = &UserFriend{ID: "fr-2", UserID: "user-3", FriendID: "user-1"}
	svc := NewService(repo)

	items, err := svc.ListFriends(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 1 || items[0].ID != "fr-1" {
		t.Fatalf("expected only fr-1, got %+v", items)
	}
}

func TestRemoveFriendDeletesPairOnly(t *testing.T) {
	repo := newFakeFriendsRepo()
	repo.friends["fr-1"] = &UserFriend{ID: "fr-1", UserID: "user-1", FriendID: "user-2"}
	repo.friends["fr-2"] = &UserFriend{ID: "fr-2", UserID: "user-2", FriendID: "user-1"}
	svc := NewService(repo)

	if err := svc.RemoveFriend(context.Background(), "user-1", "user-2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.friends["fr-1"]; ok {
		t.Fatalf("expected fr-1 deleted")
	}
	if _, ok := repo.friends["fr-2"]; !ok {
		t.Fatalf("expected inverse row untouched")
	}
}

func TestRemoveFriendMissingPair(t *testing.T) {
	repo := newFakeFriendsRepo()
	svc := NewService(repo)

	if err := svc.RemoveFriend(context.Background(), "user-1", "user-2"); err != nil {
		t.Fatalf("expected delete of missing pair to succeed, got %v", err)
	}
}
