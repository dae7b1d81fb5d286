package albums

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const listAlbumsLimit = 100

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAlbums(ctx context.Context, userID string) ([]Album, error) {
	return s.repo.ListAlbums(ctx, userID, listAlbumsLimit)
}

func (s *Service) GetAlbum(ctx context.Context, id string) (*Album, error) {
	return s.repo.GetAlbum(ctx, id)
}

// CreateAlbum inserts a fully populated row and echoes the constructed album
// without re-reading it.
func (s *Service) CreateAlbum(ctx context.Context, input CreateAlbumInput) (*Album, error) {
	visibility := input.Visibility
	if visibility == "" {
		visibility = "public"
	}

	now := time.Now().UTC()
	album := Album{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		JourneyID:   input.JourneyID,
		Visibility:  visibility,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateAlbum(ctx, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// UpdateAlbum applies only the supplied fields. An update with no fields is
// rejected; photo and page updates treat the same case as a no-op instead.
func (s *Service) UpdateAlbum(ctx context.Context, id string, input UpdateAlbumInput) (*Album, error) {
	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.JourneyID != nil {
		fields["journey_id"] = *input.JourneyID
	}
	if input.Visibility != nil {
		fields["visibility"] = *input.Visibility
	}
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}
	fields["updated_at"] = time.Now().UTC()

	if err := s.repo.UpdateAlbum(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetAlbum(ctx, id)
}

// DeleteAlbum removes photos, then pages, then the album itself. The three
// deletes run as separate statements; a failure mid-sequence leaves the
// remaining rows in place.
func (s *Service) DeleteAlbum(ctx context.Context, id string) error {
	if err := s.repo.DeletePhotosByAlbum(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeletePagesByAlbum(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteAlbum(ctx, id)
}

func (s *Service) ListPhotos(ctx context.Context, albumID string) ([]AlbumPhoto, error) {
	return s.repo.ListPhotos(ctx, albumID)
}

func (s *Service) CreatePhoto(ctx context.Context, input CreatePhotoInput) (*AlbumPhoto, error) {
	pageNumber := input.PageNumber
	if pageNumber < 1 {
		pageNumber = 1
	}

	photo := AlbumPhoto{
		ID:         uuid.NewString(),
		AlbumID:    input.AlbumID,
		UserID:     input.UserID,
		ImageURL:   input.ImageURL,
		Caption:    input.Caption,
		PageNumber: pageNumber,
		Meta:       input.Meta,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.CreatePhoto(ctx, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (s *Service) UpdatePhoto(ctx context.Context, albumID, photoID string, input UpdatePhotoInput) error {
	fields := map[string]any{}
	if input.Caption != nil {
		fields["caption"] = *input.Caption
	}
	if input.PageNumber != nil {
		fields["page_number"] = *input.PageNumber
	}
	if input.Meta != nil {
		fields["meta"] = *input.Meta
	}
	if len(fields) == 0 {
		return nil
	}

	return s.repo.UpdatePhoto(ctx, albumID, photoID, fields)
}

func (s *Service) DeletePhoto(ctx context.Context, albumID, photoID string) error {
	return s.repo.DeletePhoto(ctx, albumID, photoID)
}

func (s *Service) ListPages(ctx context.Context, albumID string) ([]AlbumPage, error) {
	return s.repo.ListPages(ctx, albumID)
}

// UpsertPage updates the page content for (album, page_number) and falls back
// to an insert when no row was touched. The two steps are not atomic; the
// unique constraint on the pair rejects the loser of a concurrent race.
func (s *Service) UpsertPage(ctx context.Context, albumID string, pageNumber int, content string) error {
	affected, err := s.repo.UpdatePageContent(ctx, albumID, pageNumber, content)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	page := AlbumPage{
		ID:         uuid.NewString(),
		AlbumID:    albumID,
		PageNumber: pageNumber,
		Content:    content,
		UpdatedAt:  time.Now().UTC(),
	}
	return s.repo.CreatePage(ctx, &page)
}
