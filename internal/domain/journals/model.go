package journals

import "time"

type CollaborativeJournal struct {
	ID          string `gorm:"type:char(36);primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	CreatedBy   string `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type JournalMember struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	JournalID string `gorm:"type:char(36);index;not null"`
	UserID    string `gorm:"index;not null"`
	UserName  string
	Role      string
	JoinedAt  time.Time
}

type JournalEntry struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	JournalID string `gorm:"type:char(36);index;not null"`
	UserID    string `gorm:"not null"`
	UserName  string
	Content   string `gorm:"not null"`
	EntryType string
	ImageURL  string
	Location  string
	CreatedAt time.Time
}

type JournalDetail struct {
	Journal CollaborativeJournal
	Members []JournalMember
	Entries []JournalEntry
}

type CreateJournalInput struct {
	Title       string
	Description string
	CreatedBy   string
	CreatorName string
}

type AddMemberInput struct {
	JournalID string
	UserID    string
	UserName  string
	Role      string
}

type AddEntryInput struct {
	JournalID string
	UserID    string
	UserName  string
	Content   string
	EntryType string
	ImageURL  string
	Location  string
}
