package journals

import "context"

type Repository interface {
	ListAll(ctx context.Context, limit int) ([]CollaborativeJournal, error)
	ListByMember(ctx context.Context, userID string, limit int) ([]CollaborativeJournal, error)
	GetByID(ctx context.Context, id string) (*CollaborativeJournal, error)
	Create(ctx context.Context, journal *CollaborativeJournal) error
	Touch(ctx context.Context, id string) error

	ListMembers(ctx context.Context, journalID string) ([]JournalMember, error)
	AddMember(ctx context.Context, member *JournalMember) error

	ListEntries(ctx context.Context, journalID string) ([]JournalEntry, error)
	AddEntry(ctx context.Context, entry *JournalEntry) error
}
