package journeys

import (
	"time"

	"gorm.io/datatypes"
)

type Journey struct {
	ID               string `gorm:"type:char(36);primaryKey"`
	UserID           string `gorm:"index;not null"`
	Title            string `gorm:"not null"`
	Description      string
	JourneyType      string
	DepartureDate    *time.Time `gorm:"type:date"`
	ReturnDate       *time.Time `gorm:"type:date"`
	Legs             datatypes.JSON `gorm:"not null"`
	Keywords         datatypes.JSON
	AIStory          string `gorm:"column:ai_story"`
	SimilarityScore  float64
	RarityScore      float64
	CulturalInsights datatypes.JSON
	Visibility       string
	LikesCount       int
	ViewsCount       int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type JourneyLike struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	JourneyID string `gorm:"type:char(36);index;not null"`
	UserID    string `gorm:"index;not null"`
	CreatedAt time.Time
}

type CreateJourneyInput struct {
	UserID           string
	Title            string
	Description      string
	JourneyType      string
	DepartureDate    *time.Time
	ReturnDate       *time.Time
	Legs             datatypes.JSON
	Keywords         datatypes.JSON
	AIStory          string
	SimilarityScore  float64
	RarityScore      *float64
	CulturalInsights datatypes.JSON
	Visibility       string
}

type UpdateJourneyInput struct {
	Title            *string
	Description      *string
	JourneyType      *string
	DepartureDate    *time.Time
	ReturnDate       *time.Time
	Legs             datatypes.JSON
	Keywords         datatypes.JSON
	AIStory          *string
	SimilarityScore  *float64
	RarityScore      *float64
	CulturalInsights datatypes.JSON
	Visibility       *string
}
