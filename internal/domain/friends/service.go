package friends

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListFriends(ctx context.Context, userID string) ([]UserFriend, error) {
	return s.repo.ListByUser(ctx, userID)
}

// AddFriend inserts the pair. The (user_id, friend_id) unique constraint makes
// a duplicate add surface as a database error.
func (s *Service) AddFriend(ctx context.Context, input AddFriendInput) (*UserFriend, error) {
	status := input.Status
	if status == "" {
		status = "active"
	}

	friend := UserFriend{
		ID:           uuid.NewString(),
		UserID:       input.UserID,
		FriendID:     input.FriendID,
		FriendName:   input.FriendName,
		FriendEmail:  input.FriendEmail,
		FriendAvatar: input.FriendAvatar,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, &friend); err != nil {
		return nil, err
	}
	return &friend, nil
}

func (s *Service) RemoveFriend(ctx context.Context, userID, friendID string) error {
	return s.repo.DeletePair(ctx, userID, friendID)
}
