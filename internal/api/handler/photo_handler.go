package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
)

// PhotoHandler handles photos nested under an album.
type PhotoHandler struct {
	photos ports.PhotoService
}

func NewPhotoHandler(photos ports.PhotoService) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

// List handles GET /album/:idalbum/photos.
//
// @Summary      List an album's photos
// @Tags         photos
// @Produce      json
// @Param        idalbum  path      string  true  "Album ID"
// @Success      200      {array}   domain.Photo
// @Failure      404      {object}  errorResponse
// @Router       /album/{idalbum}/photos [get]
func (h *PhotoHandler) List(c echo.Context) error {
	var req albumPhotosRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	photos, err := h.photos.List(c.Request().Context(), req.AlbumID)
	if err != nil {
		return err
	}
	if photos == nil {
		photos = []*domain.Photo{}
	}
	return c.JSON(http.StatusOK, photos)
}

// Get handles GET /album/:idalbum/photo/:idphoto.
//
// @Summary      Get a photo
// @Tags         photos
// @Produce      json
// @Param        idalbum  path      string  true  "Album ID"
// @Param        idphoto  path      string  true  "Photo ID"
// @Success      200      {object}  domain.Photo
// @Failure      404      {object}  errorResponse
// @Router       /album/{idalbum}/photo/{idphoto} [get]
func (h *PhotoHandler) Get(c echo.Context) error {
	var req photoIDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	photo, err := h.photos.Get(c.Request().Context(), req.AlbumID, req.PhotoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photo)
}

// Create handles POST /album/:idalbum/photo.
//
// @Summary      Add a photo to an album
// @Tags         photos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        idalbum  path      string              true  "Album ID"
// @Param        body     body      createPhotoRequest  true  "Photo"
// @Success      201      {object}  domain.Photo
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /album/{idalbum}/photo [post]
func (h *PhotoHandler) Create(c echo.Context) error {
	var req createPhotoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	photo, err := h.photos.Create(c.Request().Context(), ports.CreatePhotoInput{
		AlbumID:     req.AlbumID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, photo)
}

// Update handles PUT /album/:idalbum/photo/:idphoto.
//
// @Summary      Update a photo
// @Tags         photos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        idalbum  path      string              true  "Album ID"
// @Param        idphoto  path      string              true  "Photo ID"
// @Param        body     body      updatePhotoRequest  true  "Fields to change"
// @Success      200      {object}  domain.Photo
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /album/{idalbum}/photo/{idphoto} [put]
func (h *PhotoHandler) Update(c echo.Context) error {
	var req updatePhotoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	photo, err := h.photos.Update(c.Request().Context(), req.AlbumID, req.PhotoID, ports.PhotoChanges{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photo)
}

// Delete handles DELETE /album/:idalbum/photo/:idphoto.
//
// @Summary      Delete a photo
// @Tags         photos
// @Security     BearerAuth
// @Param        idalbum  path  string  true  "Album ID"
// @Param        idphoto  path  string  true  "Photo ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /album/{idalbum}/photo/{idphoto} [delete]
func (h *PhotoHandler) Delete(c echo.Context) error {
	var req photoIDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.photos.Delete(c.Request().Context(), req.AlbumID, req.PhotoID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
