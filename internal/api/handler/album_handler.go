package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/albumhub/album-api/internal/core/ports"
)

// AlbumHandler handles album CRUD.
type AlbumHandler struct {
	albums ports.AlbumService
}

func NewAlbumHandler(albums ports.AlbumService) *AlbumHandler {
	return &AlbumHandler{albums: albums}
}

// List handles GET /albums.
//
// @Summary      List albums with their photos
// @Tags         albums
// @Produce      json
// @Param        title  query     string  false  "Case-insensitive title filter"
// @Success      200    {array}   ports.AlbumDetail
// @Router       /albums [get]
func (h *AlbumHandler) List(c echo.Context) error {
	var req listAlbumsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	albums, err := h.albums.List(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}
	if albums == nil {
		albums = []ports.AlbumDetail{}
	}
	return c.JSON(http.StatusOK, albums)
}

// Get handles GET /album/:id.
//
// @Summary      Get an album
// @Tags         albums
// @Produce      json
// @Param        id   path      string  true  "Album ID"
// @Success      200  {object}  ports.AlbumDetail
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /album/{id} [get]
func (h *AlbumHandler) Get(c echo.Context) error {
	var req albumIDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	album, err := h.albums.Get(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, album)
}

// Create handles POST /album.
//
// @Summary      Create an album
// @Tags         albums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAlbumRequest  true  "Album"
// @Success      201   {object}  domain.Album
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /album [post]
func (h *AlbumHandler) Create(c echo.Context) error {
	var req createAlbumRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	album, err := h.albums.Create(c.Request().Context(), ports.CreateAlbumInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, album)
}

// Update handles PUT /album/:id.
//
// @Summary      Update an album
// @Tags         albums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Album ID"
// @Param        body  body      updateAlbumRequest  true  "Fields to change"
// @Success      200   {object}  domain.Album
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /album/{id} [put]
func (h *AlbumHandler) Update(c echo.Context) error {
	var req updateAlbumRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	album, err := h.albums.Update(c.Request().Context(), req.ID, ports.AlbumChanges{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, album)
}

// Delete handles DELETE /album/:id. The album's photos are removed with it.
//
// @Summary      Delete an album
// @Tags         albums
// @Security     BearerAuth
// @Param        id   path  string  true  "Album ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /album/{id} [delete]
func (h *AlbumHandler) Delete(c echo.Context) error {
	var req albumIDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.albums.Delete(c.Request().Context(), req.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
