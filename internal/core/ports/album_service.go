package ports

import (
	"context"

	"github.com/albumhub/album-api/internal/core/domain"
)

// AlbumDetail is an album together with its photos.
type AlbumDetail struct {
	*domain.Album
	Photos []*domain.Photo `json:"photos"`
}

// CreateAlbumInput carries the fields for a new album.
type CreateAlbumInput struct {
	Title       string
	Description string
}

// CreatePhotoInput carries the fields for a new photo.
type CreatePhotoInput struct {
	AlbumID     string
	Title       string
	URL         string
	Description string
}

// AlbumService defines album use cases.
type AlbumService interface {
	List(ctx context.Context, titleFilter string) ([]AlbumDetail, error)
	Get(ctx context.Context, id string) (*AlbumDetail, error)
	Create(ctx context.Context, input CreateAlbumInput) (*domain.Album, error)
	Update(ctx context.Context, id string, changes AlbumChanges) (*domain.Album, error)
	Delete(ctx context.Context, id string) error
}

// PhotoService defines photo use cases. Every operation is scoped to an album.
type PhotoService interface {
	List(ctx context.Context, albumID string) ([]*domain.Photo, error)
	Get(ctx context.Context, albumID, photoID string) (*domain.Photo, error)
	Create(ctx context.Context, input CreatePhotoInput) (*domain.Photo, error)
	Update(ctx context.Context, albumID, photoID string, changes PhotoChanges) (*domain.Photo, error)
	Delete(ctx context.Context, albumID, photoID string) error
}
