package ports

import (
	"context"

	"github.com/albumhub/album-api/internal/core/domain"
)

// AlbumChanges holds editable album fields. Nil fields are left untouched.
type AlbumChanges struct {
	Title       *string
	Slug        *string
	Description *string
}

// AlbumRepository defines persistence operations for albums.
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) (*domain.Album, error)
	FindByID(ctx context.Context, id string) (*domain.Album, error)
	// List returns albums whose title contains titleFilter (case-insensitive);
	// an empty filter returns all albums.
	List(ctx context.Context, titleFilter string) ([]*domain.Album, error)
	Update(ctx context.Context, id string, changes AlbumChanges) (*domain.Album, error)
	Delete(ctx context.Context, id string) error
	AddPhoto(ctx context.Context, albumID, photoID string) error
	RemovePhoto(ctx context.Context, albumID, photoID string) error
}

// PhotoChanges holds editable photo fields. Nil fields are left untouched.
type PhotoChanges struct {
	Title       *string
	URL         *string
	Description *string
}

// PhotoRepository defines persistence operations for photos.
type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) (*domain.Photo, error)
	// FindInAlbum scopes the lookup to albumID so photos cannot be reached
	// through a foreign album.
	FindInAlbum(ctx context.Context, albumID, photoID string) (*domain.Photo, error)
	ListByAlbums(ctx context.Context, albumIDs ...string) ([]*domain.Photo, error)
	Update(ctx context.Context, albumID, photoID string, changes PhotoChanges) (*domain.Photo, error)
	Delete(ctx context.Context, albumID, photoID string) error
	DeleteByAlbum(ctx context.Context, albumID string) error
}
