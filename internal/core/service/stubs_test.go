package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	nextID    int
	touched   map[string]time.Time
	createErr error
	existsErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), touched: make(map[string]time.Time)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrIdentityConflict
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "u" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) List(_ context.Context, f ports.ListUsersFilter) ([]*domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.User
	for _, u := range r.users {
		if f.Role != "" && string(u.Role) != f.Role {
			continue
		}
		if f.IsActive != nil && u.IsActive != *f.IsActive {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(u.Username), strings.ToLower(f.Search)) {
			continue
		}
		matched = append(matched, cloneUser(u))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := (f.Page - 1) * f.Limit
	if start >= len(matched) {
		return []*domain.User{}, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, c ports.UserChanges) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if c.Username != nil {
		u.Username = *c.Username
	}
	if c.Email != nil {
		u.Email = *c.Email
	}
	if c.FirstName != nil {
		u.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		u.LastName = *c.LastName
	}
	if c.Role != nil {
		u.Role = *c.Role
	}
	if c.IsActive != nil {
		u.IsActive = *c.IsActive
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetPasswordHash(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touched[id] = at
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// seed stores u as-is and returns its id.
func (r *stubUserRepo) seed(u *domain.User) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	copy := cloneUser(u)
	copy.ID = "u" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = copy
	return copy.ID
}

// ---------------------------------------------------------------------------
// Login recorder
// ---------------------------------------------------------------------------

type recordedLogin struct {
	userID string
	at     time.Time
}

type stubLoginRecorder struct {
	mu    sync.Mutex
	calls []recordedLogin
}

func (r *stubLoginRecorder) Record(userID string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedLogin{userID: userID, at: at})
}

func (r *stubLoginRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// ---------------------------------------------------------------------------
// In-memory album and photo repositories
// ---------------------------------------------------------------------------

type stubAlbumRepo struct {
	albums    map[string]*domain.Album
	nextID    int
	addErr    error
	removeErr error
}

func newStubAlbumRepo() *stubAlbumRepo {
	return &stubAlbumRepo{albums: make(map[string]*domain.Album)}
}

func cloneAlbum(a *domain.Album) *domain.Album {
	clone := *a
	clone.PhotoIDs = append([]string(nil), a.PhotoIDs...)
	return &clone
}

func (r *stubAlbumRepo) Create(_ context.Context, a *domain.Album) (*domain.Album, error) {
	r.nextID++
	copy := cloneAlbum(a)
	copy.ID = "a" + strconv.Itoa(r.nextID)
	r.albums[copy.ID] = copy
	return cloneAlbum(copy), nil
}

func (r *stubAlbumRepo) FindByID(_ context.Context, id string) (*domain.Album, error) {
	a, ok := r.albums[id]
	if !ok {
		return nil, domain.ErrAlbumNotFound
	}
	return cloneAlbum(a), nil
}

func (r *stubAlbumRepo) List(_ context.Context, titleFilter string) ([]*domain.Album, error) {
	var out []*domain.Album
	for _, a := range r.albums {
		if titleFilter == "" || strings.Contains(strings.ToLower(a.Title), strings.ToLower(titleFilter)) {
			out = append(out, cloneAlbum(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAlbumRepo) Update(_ context.Context, id string, c ports.AlbumChanges) (*domain.Album, error) {
	a, ok := r.albums[id]
	if !ok {
		return nil, domain.ErrAlbumNotFound
	}
	if c.Title != nil {
		a.Title = *c.Title
	}
	if c.Slug != nil {
		a.Slug = *c.Slug
	}
	if c.Description != nil {
		a.Description = *c.Description
	}
	return cloneAlbum(a), nil
}

func (r *stubAlbumRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.albums[id]; !ok {
		return domain.ErrAlbumNotFound
	}
	delete(r.albums, id)
	return nil
}

func (r *stubAlbumRepo) AddPhoto(_ context.Context, albumID, photoID string) error {
	if r.addErr != nil {
		return r.addErr
	}
	a, ok := r.albums[albumID]
	if !ok {
		return domain.ErrAlbumNotFound
	}
	a.PhotoIDs = append(a.PhotoIDs, photoID)
	return nil
}

func (r *stubAlbumRepo) RemovePhoto(_ context.Context, albumID, photoID string) error {
	if r.removeErr != nil {
		return r.removeErr
	}
	a, ok := r.albums[albumID]
	if !ok {
		return domain.ErrAlbumNotFound
	}
	kept := a.PhotoIDs[:0]
	for _, id := range a.PhotoIDs {
		if id != photoID {
			kept = append(kept, id)
		}
	}
	a.PhotoIDs = kept
	return nil
}

type stubPhotoRepo struct {
	photos map[string]*domain.Photo
	nextID int
}

func newStubPhotoRepo() *stubPhotoRepo {
	return &stubPhotoRepo{photos: make(map[string]*domain.Photo)}
}

func (r *stubPhotoRepo) Create(_ context.Context, p *domain.Photo) (*domain.Photo, error) {
	r.nextID++
	copy := *p
	copy.ID = "p" + strconv.Itoa(r.nextID)
	r.photos[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubPhotoRepo) FindInAlbum(_ context.Context, albumID, photoID string) (*domain.Photo, error) {
	p, ok := r.photos[photoID]
	if !ok || p.AlbumID != albumID {
		return nil, domain.ErrPhotoNotFound
	}
	out := *p
	return &out, nil
}

func (r *stubPhotoRepo) ListByAlbums(_ context.Context, albumIDs ...string) ([]*domain.Photo, error) {
	want := make(map[string]bool, len(albumIDs))
	for _, id := range albumIDs {
		want[id] = true
	}
	var out []*domain.Photo
	for _, p := range r.photos {
		if want[p.AlbumID] {
			copy := *p
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPhotoRepo) Update(_ context.Context, albumID, photoID string, c ports.PhotoChanges) (*domain.Photo, error) {
	p, ok := r.photos[photoID]
	if !ok || p.AlbumID != albumID {
		return nil, domain.ErrPhotoNotFound
	}
	if c.Title != nil {
		p.Title = *c.Title
	}
	if c.URL != nil {
		p.URL = *c.URL
	}
	if c.Description != nil {
		p.Description = *c.Description
	}
	out := *p
	return &out, nil
}

func (r *stubPhotoRepo) Delete(_ context.Context, albumID, photoID string) error {
	p, ok := r.photos[photoID]
	if !ok || p.AlbumID != albumID {
		return domain.ErrPhotoNotFound
	}
	delete(r.photos, photoID)
	return nil
}

func (r *stubPhotoRepo) DeleteByAlbum(_ context.Context, albumID string) error {
	for id, p := range r.photos {
		if p.AlbumID == albumID {
			delete(r.photos, id)
		}
	}
	return nil
}
