package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hosteldesk/hosteldesk/internal/app/system/identity"
	"github.com/hosteldesk/hosteldesk/internal/app/system/token"
	"github.com/hosteldesk/hosteldesk/internal/domain/models"
)

const adminEmail = "warden@test.com"

func newResolver(t *testing.T) (*identity.Resolver, *token.Service) {
	t.Helper()
	tokens := token.NewService("test-secret", time.Hour)
	return identity.NewResolver(tokens, adminEmail), tokens
}

func TestResolve_NoCredentials(t *testing.T) {
	r, _ := newResolver(t)

	id := r.Resolve("", "")
	if !id.IsGuest() {
		t.Errorf("expected guest, got %+v", id)
	}
	if id.Email != "" {
		t.Errorf("guest email should be empty, got %q", id.Email)
	}
}

func TestResolve_ValidUserToken(t *testing.T) {
	r, tokens := newResolver(t)

	signed, err := tokens.Sign("asha@test.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	id := r.Resolve("Bearer "+signed, "")
	if id.Email != "asha@test.com" || id.Role != models.RoleUser {
		t.Errorf("got %+v, want user asha@test.com", id)
	}
}

func TestResolve_AdminToken(t *testing.T) {
	r, tokens := newResolver(t)

	signed, err := tokens.Sign(adminEmail, models.RoleAdmin)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	id := r.Resolve("Bearer "+signed, "")
	if !id.IsAdmin() {
		t.Errorf("expected admin, got %+v", id)
	}
}

// A token claiming the admin role for a non-admin subject is downgraded:
// the role claim alone never grants admin.
func TestResolve_AdminRoleForWrongSubjectDowngraded(t *testing.T) {
	r, tokens := newResolver(t)

	signed, err := tokens.Sign("asha@test.com", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	id := r.Resolve("Bearer "+signed, "")
	if id.IsAdmin() {
		t.Fatalf("admin role granted to non-admin subject: %+v", id)
	}
	if id.Role != models.RoleUser {
		t.Errorf("expected downgrade to user, got %q", id.Role)
	}
}

func TestResolve_InvalidTokenFallsBackToHeader(t *testing.T) {
	r, _ := newResolver(t)

	id := r.Resolve("Bearer garbage", "asha@test.com")
	if id.Email != "asha@test.com" || id.Role != models.RoleUser {
		t.Errorf("got %+v, want header fallback user", id)
	}
}

// The fallback header is unauthenticated and can never mint an admin,
// even when it names the admin address.
func TestResolve_HeaderNamingAdminStaysUser(t *testing.T) {
	r, _ := newResolver(t)

	id := r.Resolve("", adminEmail)
	if id.IsAdmin() {
		t.Fatal("fallback header must never yield admin")
	}
	if id.Role != models.RoleUser {
		t.Errorf("expected user role, got %q", id.Role)
	}
}

func TestResolve_TokenWinsOverHeader(t *testing.T) {
	r, tokens := newResolver(t)

	signed, err := tokens.Sign("token@test.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	id := r.Resolve("Bearer "+signed, "header@test.com")
	if id.Email != "token@test.com" {
		t.Errorf("token identity should win, got %q", id.Email)
	}
}

func TestResolve_NormalizesEmail(t *testing.T) {
	r, _ := newResolver(t)

	id := r.Resolve("", "  Asha@Test.COM ")
	if id.Email != "asha@test.com" {
		t.Errorf("expected normalized email, got %q", id.Email)
	}
}

func TestMiddleware_StoresIdentity(t *testing.T) {
	r, tokens := newResolver(t)

	signed, err := tokens.Sign("asha@test.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	var got identity.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		got = identity.FromRequest(req)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	r.Middleware(next).ServeHTTP(rec, req)

	if got.Email != "asha@test.com" || got.Role != models.RoleUser {
		t.Errorf("middleware stored %+v", got)
	}
}

func TestFromRequest_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	id := identity.FromRequest(req)
	if !id.IsGuest() {
		t.Errorf("expected guest without middleware, got %+v", id)
	}
}
