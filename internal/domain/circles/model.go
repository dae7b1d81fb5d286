package circles

import "time"

type MemoryCircle struct {
	ID          string `gorm:"type:char(36);primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	OwnerID     string `gorm:"index;not null"`
	CreatedAt   time.Time
}

type MemoryCircleMember struct {
	ID       string `gorm:"type:char(36);primaryKey"`
	CircleID string `gorm:"type:char(36);index;not null"`
	UserID   string `gorm:"index;not null"`
	Role     string
	JoinedAt time.Time
}

type MemoryCircleJourney struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	CircleID  string `gorm:"type:char(36);index;not null"`
	JourneyID string `gorm:"type:char(36);not null"`
	SharedBy  string `gorm:"not null"`
	SharedAt  time.Time
}

// CircleSummary is a circle row with its member count, as returned by lists.
type CircleSummary struct {
	MemoryCircle `gorm:"embedded"`
	MemberCount  int64
}

type CircleDetail struct {
	Circle   MemoryCircle
	Members  []MemoryCircleMember
	Journeys []MemoryCircleJourney
}

type CreateCircleInput struct {
	Name        string
	Description string
	OwnerID     string
}

type AddMemberInput struct {
	CircleID string
	UserID   string
	Role     string
}

type ShareJourneyInput struct {
	CircleID  string
	JourneyID string
	SharedBy  string
}
