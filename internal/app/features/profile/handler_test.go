package profile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hosteldesk/hosteldesk/internal/app/features/profile"
	"github.com/hosteldesk/hosteldesk/internal/testutil"
	"go.uber.org/zap"
)

type profileResponse struct {
	Email           string `json:"email"`
	Year            string `json:"year"`
	Department      string `json:"department"`
	Number          string `json:"number"`
	MemberSinceYear int    `json:"memberSinceYear"`
}

func TestGet_ExistingProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateProfile(ctx, "asha@test.com", "2", "Computer Science", "9876543210")

	h := profile.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/profile?email=asha@test.com", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.Year != "2" || resp.Department != "Computer Science" {
		t.Errorf("unexpected profile: %+v", resp)
	}
}

// A missing profile is a 200 with the zero-valued shape, not a 404.
func TestGet_MissingProfileIsZeroValued(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := profile.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/profile?email=new@test.com", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.Email != "new@test.com" {
		t.Errorf("email: got %q", resp.Email)
	}
	if resp.Year != "" || resp.Department != "" || resp.Number != "" {
		t.Errorf("expected zero-valued profile, got %+v", resp)
	}
}

func TestGet_RequiresEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := profile.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/profile", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestGet_IncludesMemberSinceYear(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateUser(ctx, "asha@test.com", "$2a$10$fakehash")

	h := profile.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/profile?email=asha@test.com", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.MemberSinceYear != time.Now().UTC().Year() {
		t.Errorf("memberSinceYear: got %d, want %d", resp.MemberSinceYear, time.Now().UTC().Year())
	}
}

func TestUpsert_CreatesAndUpdates(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := profile.NewHandler(db, zap.NewNop())

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/profile", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Upsert(rec, req)
		return rec
	}

	rec := post(`{"email":"asha@test.com","year":"2","department":"Physics","number":"123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	rec = post(`{"email":"asha@test.com","year":"3","department":"Physics","number":"123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: got %d, want 200", rec.Code)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.Year != "3" {
		t.Errorf("year after update: got %q, want 3", resp.Year)
	}
}

func TestUpsert_RequiresEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := profile.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/profile", strings.NewReader(`{"year":"2"}`))
	rec := httptest.NewRecorder()

	h.Upsert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestUpsert_InvalidBody(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := profile.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/profile", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.Upsert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}
