package albums

import "time"

type Album struct {
	ID          string `gorm:"type:char(36);primaryKey"`
	UserID      string `gorm:"not null"`
	Title       string `gorm:"not null"`
	Description string
	JourneyID   string `gorm:"type:char(36)"`
	Visibility  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type AlbumPhoto struct {
	ID         string `gorm:"type:char(36);primaryKey"`
	AlbumID    string `gorm:"type:char(36);index;not null"`
	UserID     string `gorm:"not null"`
	ImageURL   string `gorm:"not null"`
	Caption    string
	PageNumber int
	Meta       string
	CreatedAt  time.Time
}

type AlbumPage struct {
	ID         string `gorm:"type:char(36);primaryKey"`
	AlbumID    string `gorm:"type:char(36);not null"`
	PageNumber int    `gorm:"not null"`
	Content    string
	UpdatedAt  time.Time
}

type CreateAlbumInput struct {
	UserID      string
	Title       string
	Description string
	JourneyID   string
	Visibility  string
}

type UpdateAlbumInput struct {
	Title       *string
	Description *string
	JourneyID   *string
	Visibility  *string
}

type CreatePhotoInput struct {
	AlbumID    string
	UserID     string
	ImageURL   string
	Caption    string
	PageNumber int
	Meta       string
}

type UpdatePhotoInput struct {
	Caption    *string
	PageNumber *int
	Meta       *string
}
