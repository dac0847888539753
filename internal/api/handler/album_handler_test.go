package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
)

func TestAlbumHandler_List(t *testing.T) {
	albums := &stubAlbumService{
		listFn: func(ctx context.Context, title string) ([]ports.AlbumDetail, error) {
			if title != "summer" {
				t.Fatalf("unexpected title filter %q", title)
			}
			return []ports.AlbumDetail{{
				Album:  &domain.Album{ID: albumID, Title: "Summer 2024", Slug: "summer-2024"},
				Photos: []*domain.Photo{{ID: photoID, AlbumID: albumID, Title: "Beach"}},
			}}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/albums?title=summer", "")

	if err := NewAlbumHandler(albums).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["title"] != "Summer 2024" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
	photos, ok := resp[0]["photos"].([]any)
	if !ok || len(photos) != 1 {
		t.Fatalf("photos not embedded: %s", rec.Body.String())
	}
}

func TestAlbumHandler_List_EmptyIsArray(t *testing.T) {
	albums := &stubAlbumService{
		listFn: func(context.Context, string) ([]ports.AlbumDetail, error) { return nil, nil },
	}
	c, rec := newTestContext(http.MethodGet, "/albums", "")

	if err := NewAlbumHandler(albums).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestAlbumHandler_Get_NotFound(t *testing.T) {
	albums := &stubAlbumService{
		getFn: func(context.Context, string) (*ports.AlbumDetail, error) { return nil, domain.ErrAlbumNotFound },
	}
	c, _ := newTestContext(http.MethodGet, "/album/"+albumID, "", "id", albumID)

	if err := NewAlbumHandler(albums).Get(c); !errors.Is(err, domain.ErrAlbumNotFound) {
		t.Fatalf("expected ErrAlbumNotFound, got %v", err)
	}
}

func TestAlbumHandler_Create(t *testing.T) {
	albums := &stubAlbumService{
		createFn: func(ctx context.Context, in ports.CreateAlbumInput) (*domain.Album, error) {
			if in.Title != "Road trip" || in.Description != "2023" {
				t.Fatalf("unexpected input %+v", in)
			}
			return &domain.Album{ID: albumID, Title: in.Title, Slug: "road-trip"}, nil
		},
	}
	c, rec := newTestContext(http.MethodPost, "/album", `{"title":"Road trip","description":"2023"}`)

	if err := NewAlbumHandler(albums).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAlbumHandler_Create_RequiresTitle(t *testing.T) {
	albums := &stubAlbumService{
		createFn: func(context.Context, ports.CreateAlbumInput) (*domain.Album, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	c, _ := newTestContext(http.MethodPost, "/album", `{"description":"no title"}`)

	if err := NewAlbumHandler(albums).Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAlbumHandler_Update(t *testing.T) {
	albums := &stubAlbumService{
		updateFn: func(ctx context.Context, id string, ch ports.AlbumChanges) (*domain.Album, error) {
			if id != albumID || ch.Title == nil || *ch.Title != "Renamed" || ch.Description != nil {
				t.Fatalf("unexpected update %s %+v", id, ch)
			}
			return &domain.Album{ID: id, Title: *ch.Title}, nil
		},
	}
	c, rec := newTestContext(http.MethodPut, "/album/"+albumID, `{"title":"Renamed"}`, "id", albumID)

	if err := NewAlbumHandler(albums).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAlbumHandler_Delete(t *testing.T) {
	albums := &stubAlbumService{
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	c, rec := newTestContext(http.MethodDelete, "/album/"+albumID, "", "id", albumID)

	if err := NewAlbumHandler(albums).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
