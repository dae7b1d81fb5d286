package journals

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const listJournalsLimit = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateJournal inserts the journal and then its creator as an admin member,
// as two sequential statements.
func (s *Service) CreateJournal(ctx context.Context, input CreateJournalInput) (*CollaborativeJournal, error) {
	now := time.Now().UTC()
	journal := CollaborativeJournal{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, &journal); err != nil {
		return nil, err
	}

	creator := JournalMember{
		ID:        uuid.NewString(),
		JournalID: journal.ID,
		UserID:    input.CreatedBy,
		UserName:  input.CreatorName,
		Role:      "admin",
		JoinedAt:  now,
	}
	if err := s.repo.AddMember(ctx, &creator); err != nil {
		return nil, err
	}

	return &journal, nil
}

func (s *Service) ListJournals(ctx context.Context, userID string) ([]CollaborativeJournal, error) {
	if userID != "" {
		return s.repo.ListByMember(ctx, userID, listJournalsLimit)
	}
	return s.repo.ListAll(ctx, listJournalsLimit)
}

func (s *Service) GetJournal(ctx context.Context, id string) (*JournalDetail, error) {
	journal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListEntries(ctx, id)
	if err != nil {
		return nil, err
	}

	return &JournalDetail{Journal: *journal, Members: members, Entries: entries}, nil
}

func (s *Service) ListEntries(ctx context.Context, journalID string) ([]JournalEntry, error) {
	return s.repo.ListEntries(ctx, journalID)
}

// AddEntry appends an entry and refreshes the parent journal's update
// timestamp with a second statement.
func (s *Service) AddEntry(ctx context.Context, input AddEntryInput) (*JournalEntry, error) {
	entryType := input.EntryType
	if entryType == "" {
		entryType = "text"
	}

	entry := JournalEntry{
		ID:        uuid.NewString(),
		JournalID: input.JournalID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		Content:   input.Content,
		EntryType: entryType,
		ImageURL:  input.ImageURL,
		Location:  input.Location,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AddEntry(ctx, &entry); err != nil {
		return nil, err
	}
	if err := s.repo.Touch(ctx, input.JournalID); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*JournalMember, error) {
	role := input.Role
	if role == "" {
		role = "contributor"
	}

	member := JournalMember{
		ID:        uuid.NewString(),
		JournalID: input.JournalID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		Role:      role,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.repo.AddMember(ctx, &member); err != nil {
		return nil, err
	}
	return &member, nil
}
