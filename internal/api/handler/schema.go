package handler

import "github.com/albumhub/album-api/internal/core/domain"

// --- Auth ---

type registerRequest struct {
	Username  string `json:"username"  validate:"required,min=3,max=30,username"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,max=72,strongpassword"`
	FirstName string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName  string `json:"lastName"  validate:"omitempty,min=2,max=50"`
	Role      string `json:"role"      validate:"omitempty,oneof=admin editor user"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileResponse struct {
	User *domain.Identity `json:"user"`
}

// --- Users ---

type userIDRequest struct {
	ID string `param:"id" json:"-" validate:"required,mongodb"`
}

type listUsersRequest struct {
	Role     string `query:"role"     validate:"omitempty,oneof=admin editor user"`
	IsActive string `query:"isActive" validate:"omitempty,oneof=true false"`
	Search   string `query:"search"   validate:"omitempty,max=100"`
	Page     int    `query:"page"     validate:"omitempty,min=1"`
	Limit    int    `query:"limit"    validate:"omitempty,min=1,max=100"`
}

type updateUserRequest struct {
	ID        string  `param:"id"       json:"-"         validate:"required,mongodb"`
	Username  *string `json:"username"  validate:"omitempty,min=3,max=30,username"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	FirstName *string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"lastName"  validate:"omitempty,min=2,max=50"`
	Role      *string `json:"role"      validate:"omitempty,oneof=admin editor user"`
	IsActive  *bool   `json:"isActive"`
}

type changePasswordRequest struct {
	ID              string `param:"id"             json:"-"               validate:"required,mongodb"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,max=72,strongpassword"`
}

type listUsersResponse struct {
	Data       []*domain.User     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// --- Albums & photos ---

type listAlbumsRequest struct {
	Title string `query:"title" validate:"omitempty,max=200"`
}

type albumIDRequest struct {
	ID string `param:"id" json:"-" validate:"required,mongodb"`
}

type createAlbumRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type updateAlbumRequest struct {
	ID          string  `param:"id"         json:"-"           validate:"required,mongodb"`
	Title       *string `json:"title"       validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type albumPhotosRequest struct {
	AlbumID string `param:"idalbum" json:"-" validate:"required,mongodb"`
}

type photoIDRequest struct {
	AlbumID string `param:"idalbum" json:"-" validate:"required,mongodb"`
	PhotoID string `param:"idphoto" json:"-" validate:"required,mongodb"`
}

type createPhotoRequest struct {
	AlbumID     string `param:"idalbum"    json:"-"           validate:"required,mongodb"`
	Title       string `json:"title"       validate:"required,max=200"`
	URL         string `json:"url"         validate:"required,url"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type updatePhotoRequest struct {
	AlbumID     string  `param:"idalbum"    json:"-"           validate:"required,mongodb"`
	PhotoID     string  `param:"idphoto"    json:"-"           validate:"required,mongodb"`
	Title       *string `json:"title"       validate:"omitempty,min=1,max=200"`
	URL         *string `json:"url"         validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse documents the envelope rendered by the API error handler.
type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Status  string `json:"status"  example:"fail"`
	Code    string `json:"code"    example:"VALIDATION_ERROR"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
