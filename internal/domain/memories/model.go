package memories

import (
	"time"

	"gorm.io/datatypes"
)

// AnonymousMemory is a journey-derived story published without attribution.
// The originating user is stored for bookkeeping but never serialized.
type AnonymousMemory struct {
	ID             string `gorm:"type:char(36);primaryKey"`
	JourneyID      string `gorm:"type:char(36);not null"`
	OriginalUserID string `gorm:"not null" json:"-"`
	Title          string `gorm:"not null"`
	Story          string `gorm:"not null"`
	Location       string
	TravelType     string
	Keywords       datatypes.JSON
	CreatedAt      time.Time
}

type MemoryExchange struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	User1ID   string `gorm:"column:user1_id;index;not null"`
	User2ID   string `gorm:"column:user2_id;index;not null"`
	Memory1ID string `gorm:"column:memory1_id;type:char(36);not null"`
	Memory2ID string `gorm:"column:memory2_id;type:char(36);not null"`
	CreatedAt time.Time
}

type CreateMemoryInput struct {
	JourneyID      string
	OriginalUserID string
	Title          string
	Story          string
	Location       string
	TravelType     string
	Keywords       datatypes.JSON
}

type CreateExchangeInput struct {
	User1ID   string
	User2ID   string
	Memory1ID string
	Memory2ID string
}
