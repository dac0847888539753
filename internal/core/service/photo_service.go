package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
)

// PhotoService implements photo use cases and keeps the album's photo id list
// in step with the photos collection.
type PhotoService struct {
	albums ports.AlbumRepository
	photos ports.PhotoRepository
	logger zerolog.Logger
}

func NewPhotoService(albums ports.AlbumRepository, photos ports.PhotoRepository, logger zerolog.Logger) *PhotoService {
	return &PhotoService{albums: albums, photos: photos, logger: logger}
}

func (s *PhotoService) List(ctx context.Context, albumID string) ([]*domain.Photo, error) {
	album, err := s.albums.FindByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	photos, err := s.photos.ListByAlbums(ctx, album.ID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return orderPhotos(album.PhotoIDs, photos), nil
}

func (s *PhotoService) Get(ctx context.Context, albumID, photoID string) (*domain.Photo, error) {
	return s.photos.FindInAlbum(ctx, albumID, photoID)
}

// Create stores a photo and links it to its album. The album must exist.
func (s *PhotoService) Create(ctx context.Context, input ports.CreatePhotoInput) (*domain.Photo, error) {
	if _, err := s.albums.FindByID(ctx, input.AlbumID); err != nil {
		return nil, err
	}

	photo, err := s.photos.Create(ctx, &domain.Photo{
		AlbumID:     input.AlbumID,
		Title:       strings.TrimSpace(input.Title),
		URL:         strings.TrimSpace(input.URL),
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.albums.AddPhoto(ctx, input.AlbumID, photo.ID); err != nil {
		if delErr := s.photos.Delete(ctx, input.AlbumID, photo.ID); delErr != nil {
			s.logger.Error().Err(delErr).Str("photo_id", photo.ID).Msg("failed to roll back orphan photo")
		}
		return nil, fmt.Errorf("link photo to album: %w", err)
	}

	s.logger.Info().Str("album_id", input.AlbumID).Str("photo_id", photo.ID).Msg("photo created")
	return photo, nil
}

func (s *PhotoService) Update(ctx context.Context, albumID, photoID string, changes ports.PhotoChanges) (*domain.Photo, error) {
	return s.photos.Update(ctx, albumID, photoID, changes)
}

// Delete removes the photo and unlinks it from its album.
func (s *PhotoService) Delete(ctx context.Context, albumID, photoID string) error {
	if err := s.photos.Delete(ctx, albumID, photoID); err != nil {
		return err
	}
	if err := s.albums.RemovePhoto(ctx, albumID, photoID); err != nil {
		s.logger.Warn().Err(err).Str("album_id", albumID).Str("photo_id", photoID).Msg("failed to unlink photo from album")
	}
	return nil
}
