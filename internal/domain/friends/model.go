package friends

import "time"

type UserFriend struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	UserID       string `gorm:"index;not null"`
	FriendID     string `gorm:"not null"`
	FriendName   string
	FriendEmail  string
	FriendAvatar string
	Status       string
	CreatedAt    time.Time
}

type AddFriendInput struct {
	UserID       string
	FriendID     string
	FriendName   string
	FriendEmail  string
	FriendAvatar string
	Status       string
}
