package albums

import "context"

type Repository interface {
	ListAlbums(ctx context.Context, userID string, limit int) ([]Album, error)
	GetAlbum(ctx context.Context, id string) (*Album, error)
	CreateAlbum(ctx context.Context, album *Album) error
	UpdateAlbum(ctx context.Context, id string, fields map[string]any) error
	DeleteAlbum(ctx context.Context, id string) error

	ListPhotos(ctx context.Context, albumID string) ([]AlbumPhoto, error)
	CreatePhoto(ctx context.Context, photo *AlbumPhoto) error
	UpdatePhoto(ctx context.Context, albumID, photoID string, fields map[string]any) error
	DeletePhoto(ctx context.Context, albumID, photoID string) error
	DeletePhotosByAlbum(ctx context.Context, albumID string) error

	ListPages(ctx context.Context, albumID string) ([]AlbumPage, error)
	UpdatePageContent(ctx context.Context, albumID string, pageNumber int, content string) (int64, error)
	CreatePage(ctx context.Context, page *AlbumPage) error
	DeletePagesByAlbum(ctx context.Context, albumID string) error
}
