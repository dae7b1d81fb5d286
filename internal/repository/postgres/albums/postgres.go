package albums

import (
	"context"
	"errors"

	albumsdomain "journeys-app-go/internal/domain/albums"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ albumsdomain.Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) ListAlbums(ctx context.Context, userID string, limit int) ([]albumsdomain.Album, error) {
	var albums []albumsdomain.Album
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&albums).Error
	return albums, err
}

func (r *PostgresRepository) GetAlbum(ctx context.Context, id string) (*albumsdomain.Album, error) {
	var album albumsdomain.Album
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&album).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, albumsdomain.ErrAlbumNotFound
		}
		return nil, err
	}
	return &album, nil
}

func (r *PostgresRepository) CreateAlbum(ctx context.Context, album *albumsdomain.Album) error {
	return r.db.WithContext(ctx).Create(album).Error
}

func (r *PostgresRepository) UpdateAlbum(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&albumsdomain.Album{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *PostgresRepository) DeleteAlbum(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&albumsdomain.Album{}, "id = ?", id).Error
}

func (r *PostgresRepository) ListPhotos(ctx context.Context, albumID string) ([]albumsdomain.AlbumPhoto, error) {
	var photos []albumsdomain.AlbumPhoto
	err := r.db.WithContext(ctx).
		Where("album_id = ?", albumID).
		Order("created_at DESC").
		Find(&photos).Error
	return photos, err
}

func (r *PostgresRepository) CreatePhoto(ctx context.Context, photo *albumsdomain.AlbumPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *PostgresRepository) UpdatePhoto(ctx context.Context, albumID, photoID string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&albumsdomain.AlbumPhoto{}).
		Where("id = ? AND album_id = ?", photoID, albumID).
		Updates(fields).Error
}

func (r *PostgresRepository) DeletePhoto(ctx context.Context, albumID, photoID string) error {
	return r.db.WithContext(ctx).
		Delete(&albumsdomain.AlbumPhoto{}, "id = ? AND album_id = ?", photoID, albumID).Error
}

func (r *PostgresRepository) DeletePhotosByAlbum(ctx context.Context, albumID string) error {
	return r.db.WithContext(ctx).
		Delete(&albumsdomain.AlbumPhoto{}, "album_id = ?", albumID).Error
}

func (r *PostgresRepository) ListPages(ctx context.Context, albumID string) ([]albumsdomain.AlbumPage, error) {
	var pages []albumsdomain.AlbumPage
	err := r.db.WithContext(ctx).
		Where("album_id = ?", albumID).
		Order("page_number ASC").
		Find(&pages).Error
	return pages, err
}

func (r *PostgresRepository) UpdatePageContent(ctx context.Context, albumID string, pageNumber int, content string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&albumsdomain.AlbumPage{}).
		Where("album_id = ? AND page_number = ?", albumID, pageNumber).
		Updates(map[string]any{"content": content})
	return result.RowsAffected, result.Error
}

func (r *PostgresRepository) CreatePage(ctx context.Context, page *albumsdomain.AlbumPage) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *PostgresRepository) DeletePagesByAlbum(ctx context.Context, albumID string) error {
	return r.db.WithContext(ctx).
		Delete(&albumsdomain.AlbumPage{}, "album_id = ?", albumID).Error
}
