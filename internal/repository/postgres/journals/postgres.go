package journals

import (
	"context"
	"errors"
	"time"

	journalsdomain "journeys-app-go/internal/domain/journals"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ journalsdomain.Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) ListAll(ctx context.Context, limit int) ([]journalsdomain.CollaborativeJournal, error) {
	var journals []journalsdomain.CollaborativeJournal
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&journals).Error
	return journals, err
}

func (r *PostgresRepository) ListByMember(ctx context.Context, userID string, limit int) ([]journalsdomain.CollaborativeJournal, error) {
	// Distinct because duplicate membership rows are possible.
	var journals []journalsdomain.CollaborativeJournal
	err := r.db.WithContext(ctx).
		Model(&journalsdomain.CollaborativeJournal{}).
		Distinct("collaborative_journals.*").
		Joins("JOIN journal_members members ON members.journal_id = collaborative_journals.id").
		Where("members.user_id = ?", userID).
		Order("collaborative_journals.created_at DESC").
		Limit(limit).
		Find(&journals).Error
	return journals, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*journalsdomain.CollaborativeJournal, error) {
	var journal journalsdomain.CollaborativeJournal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&journal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, journalsdomain.ErrJournalNotFound
		}
		return nil, err
	}
	return &journal, nil
}

func (r *PostgresRepository) Create(ctx context.Context, journal *journalsdomain.CollaborativeJournal) error {
	return r.db.WithContext(ctx).Create(journal).Error
}

func (r *PostgresRepository) Touch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&journalsdomain.CollaborativeJournal{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", time.Now().UTC()).Error
}

func (r *PostgresRepository) ListMembers(ctx context.Context, journalID string) ([]journalsdomain.JournalMember, error) {
	var members []journalsdomain.JournalMember
	err := r.db.WithContext(ctx).
		Where("journal_id = ?", journalID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (r *PostgresRepository) AddMember(ctx context.Context, member *journalsdomain.JournalMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) ListEntries(ctx context.Context, journalID string) ([]journalsdomain.JournalEntry, error) {
	var entries []journalsdomain.JournalEntry
	err := r.db.WithContext(ctx).
		Where("journal_id = ?", journalID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *PostgresRepository) AddEntry(ctx context.Context, entry *journalsdomain.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
