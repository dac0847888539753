package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
)

// AlbumService implements album use cases. Photos are loaded in one batch per
// call rather than per album.
type AlbumService struct {
	albums ports.AlbumRepository
	photos ports.PhotoRepository
	logger zerolog.Logger
}

func NewAlbumService(albums ports.AlbumRepository, photos ports.PhotoRepository, logger zerolog.Logger) *AlbumService {
	return &AlbumService{albums: albums, photos: photos, logger: logger}
}

func (s *AlbumService) List(ctx context.Context, titleFilter string) ([]ports.AlbumDetail, error) {
	albums, err := s.albums.List(ctx, strings.TrimSpace(titleFilter))
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	if len(albums) == 0 {
		return []ports.AlbumDetail{}, nil
	}

	ids := make([]string, 0, len(albums))
	for _, a := range albums {
		ids = append(ids, a.ID)
	}
	photos, err := s.photos.ListByAlbums(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("list album photos: %w", err)
	}

	byAlbum := make(map[string][]*domain.Photo, len(albums))
	for _, p := range photos {
		byAlbum[p.AlbumID] = append(byAlbum[p.AlbumID], p)
	}

	out := make([]ports.AlbumDetail, 0, len(albums))
	for _, a := range albums {
		out = append(out, ports.AlbumDetail{Album: a, Photos: orderPhotos(a.PhotoIDs, byAlbum[a.ID])})
	}
	return out, nil
}

func (s *AlbumService) Get(ctx context.Context, id string) (*ports.AlbumDetail, error) {
	album, err := s.albums.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.photos.ListByAlbums(ctx, album.ID)
	if err != nil {
		return nil, fmt.Errorf("list album photos: %w", err)
	}
	return &ports.AlbumDetail{Album: album, Photos: orderPhotos(album.PhotoIDs, photos)}, nil
}

func (s *AlbumService) Create(ctx context.Context, input ports.CreateAlbumInput) (*domain.Album, error) {
	title := strings.TrimSpace(input.Title)
	album, err := s.albums.Create(ctx, &domain.Album{
		Title:       title,
		Slug:        slug.Make(title),
		Description: strings.TrimSpace(input.Description),
		PhotoIDs:    []string{},
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("album_id", album.ID).Str("slug", album.Slug).Msg("album created")
	return album, nil
}

// Update edits an album; a new title also regenerates the slug.
func (s *AlbumService) Update(ctx context.Context, id string, changes ports.AlbumChanges) (*domain.Album, error) {
	if changes.Title != nil {
		title := strings.TrimSpace(*changes.Title)
		sl := slug.Make(title)
		changes.Title = &title
		changes.Slug = &sl
	}
	return s.albums.Update(ctx, id, changes)
}

// Delete removes the album and every photo it owns.
func (s *AlbumService) Delete(ctx context.Context, id string) error {
	if err := s.albums.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.photos.DeleteByAlbum(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("album_id", id).Msg("failed to delete album photos")
	}
	s.logger.Info().Str("album_id", id).Msg("album deleted")
	return nil
}

// orderPhotos returns photos in the album's insertion order. Photos missing
// from ids are appended at the end.
func orderPhotos(ids []string, photos []*domain.Photo) []*domain.Photo {
	out := make([]*domain.Photo, 0, len(photos))
	byID := make(map[string]*domain.Photo, len(photos))
	for _, p := range photos {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
			delete(byID, id)
		}
	}
	for _, p := range photos {
		if _, ok := byID[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}
