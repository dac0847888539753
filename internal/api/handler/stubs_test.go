package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/albumhub/album-api/internal/api/middleware"
	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
)

const (
	userID  = "507f1f77bcf86cd799439011"
	albumID = "507f191e810c19729de860ea"
	photoID = "65a1b2c3d4e5f60718293a4b"
)

// newTestContext builds an echo context with the real validator installed.
// Path parameters are given as name/value pairs.
func newTestContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func withIdentity(c echo.Context, id string, role domain.Role) {
	middleware.SetIdentity(c, &domain.Identity{SubjectID: id, Username: "caller", Role: role})
}

type stubCredentialService struct {
	registerFn       func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	loginFn          func(ctx context.Context, username, password string) (*ports.AuthResult, error)
	changePasswordFn func(ctx context.Context, userID, current, next string) error
}

func (s *stubCredentialService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubCredentialService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubCredentialService) ChangePassword(ctx context.Context, userID, current, next string) error {
	return s.changePasswordFn(ctx, userID, current, next)
}

type stubUserService struct {
	listFn      func(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error)
	getFn       func(ctx context.Context, id string) (*domain.User, error)
	updateFn    func(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error)
	setActiveFn func(ctx context.Context, id string, active bool) (*domain.User, error)
	deleteFn    func(ctx context.Context, id string) error
}

func (s *stubUserService) List(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
	return s.listFn(ctx, filter)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, input)
}

func (s *stubUserService) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	return s.setActiveFn(ctx, id, active)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubAlbumService struct {
	listFn   func(ctx context.Context, title string) ([]ports.AlbumDetail, error)
	getFn    func(ctx context.Context, id string) (*ports.AlbumDetail, error)
	createFn func(ctx context.Context, input ports.CreateAlbumInput) (*domain.Album, error)
	updateFn func(ctx context.Context, id string, changes ports.AlbumChanges) (*domain.Album, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubAlbumService) List(ctx context.Context, title string) ([]ports.AlbumDetail, error) {
	return s.listFn(ctx, title)
}

func (s *stubAlbumService) Get(ctx context.Context, id string) (*ports.AlbumDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubAlbumService) Create(ctx context.Context, input ports.CreateAlbumInput) (*domain.Album, error) {
	return s.createFn(ctx, input)
}

func (s *stubAlbumService) Update(ctx context.Context, id string, changes ports.AlbumChanges) (*domain.Album, error) {
	return s.updateFn(ctx, id, changes)
}

func (s *stubAlbumService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubPhotoService struct {
	listFn   func(ctx context.Context, albumID string) ([]*domain.Photo, error)
	getFn    func(ctx context.Context, albumID, photoID string) (*domain.Photo, error)
	createFn func(ctx context.Context, input ports.CreatePhotoInput) (*domain.Photo, error)
	updateFn func(ctx context.Context, albumID, photoID string, changes ports.PhotoChanges) (*domain.Photo, error)
	deleteFn func(ctx context.Context, albumID, photoID string) error
}

func (s *stubPhotoService) List(ctx context.Context, albumID string) ([]*domain.Photo, error) {
	return s.listFn(ctx, albumID)
}

func (s *stubPhotoService) Get(ctx context.Context, albumID, photoID string) (*domain.Photo, error) {
	return s.getFn(ctx, albumID, photoID)
}

func (s *stubPhotoService) Create(ctx context.Context, input ports.CreatePhotoInput) (*domain.Photo, error) {
	return s.createFn(ctx, input)
}

func (s *stubPhotoService) Update(ctx context.Context, albumID, photoID string, changes ports.PhotoChanges) (*domain.Photo, error) {
	return s.updateFn(ctx, albumID, photoID, changes)
}

func (s *stubPhotoService) Delete(ctx context.Context, albumID, photoID string) error {
	return s.deleteFn(ctx, albumID, photoID)
}

type stubGenerator struct {
	generateFn func(ctx context.Context) (*domain.CompositeProfile, error)
}

func (s *stubGenerator) Generate(ctx context.Context) (*domain.CompositeProfile, error) {
	return s.generateFn(ctx)
}
