package plans

import "time"

type FuturePlan struct {
	ID          string `gorm:"type:char(36);primaryKey"`
	UserID      string `gorm:"index;not null"`
	Destination string `gorm:"not null"`
	StartDate   *time.Time `gorm:"type:date"`
	EndDate     *time.Time `gorm:"type:date"`
	Reason      string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreatePlanInput struct {
	UserID      string
	Destination string
	StartDate   *time.Time
	EndDate     *time.Time
	Reason      string
	Notes       string
}

type UpdatePlanInput struct {
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Reason      *string
	Notes       *string
}
