package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/albumhub/album-api/internal/core/domain"
)

type stubVerifier struct {
	verifyFn func(token string) (*domain.Identity, error)
}

func (s *stubVerifier) Verify(token string) (*domain.Identity, error) {
	return s.verifyFn(token)
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	c, rec := newAuthContext("Bearer good-token")
	verifier := &stubVerifier{verifyFn: func(token string) (*domain.Identity, error) {
		if token != "good-token" {
			t.Fatalf("unexpected token %q", token)
		}
		return &domain.Identity{SubjectID: "u1", Username: "alice", Role: domain.RoleAdmin}, nil
	}}

	called := false
	handler := Authenticate(verifier)(func(c echo.Context) error {
		called = true
		id := IdentityFrom(c)
		if id == nil || id.SubjectID != "u1" || id.Username != "alice" || id.Role != domain.RoleAdmin {
			t.Fatalf("identity not attached: %+v", id)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		verifyErr error
		wantErr   error
	}{
		{"missing header", "", nil, domain.ErrUnauthenticated},
		{"wrong scheme", "Token abc", nil, domain.ErrUnauthenticated},
		{"bearer without token", "Bearer ", nil, domain.ErrUnauthenticated},
		{"expired token", "Bearer old", domain.ErrTokenExpired, domain.ErrTokenExpired},
		{"malformed token", "Bearer junk", domain.ErrTokenMalformed, domain.ErrTokenMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAuthContext(tt.header)
			verifier := &stubVerifier{verifyFn: func(string) (*domain.Identity, error) {
				if tt.verifyErr == nil {
					t.Fatalf("verifier should not be called")
				}
				return nil, tt.verifyErr
			}}

			handler := Authenticate(verifier)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if IdentityFrom(c) != nil {
				t.Fatalf("identity must not be attached on failure")
			}
		})
	}
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	c, _ := newAuthContext("bearer tok")
	verifier := &stubVerifier{verifyFn: func(string) (*domain.Identity, error) {
		return &domain.Identity{SubjectID: "u1", Role: domain.RoleUser}, nil
	}}
	handler := Authenticate(verifier)(func(c echo.Context) error { return nil })
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
