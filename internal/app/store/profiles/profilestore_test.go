package profilestore_test

import (
	"testing"

	profilestore "github.com/hosteldesk/hosteldesk/internal/app/store/profiles"
	"github.com/hosteldesk/hosteldesk/internal/testutil"
)

func TestUpsert_CreatesThenUpdates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := profilestore.New(db)

	first, err := store.Upsert(ctx, "asha@test.com", "2", "Computer Science", "9876543210")
	if err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}
	if first.Year != "2" || first.Department != "Computer Science" {
		t.Errorf("unexpected stored profile: %+v", first)
	}
	if first.CreatedAt.IsZero() {
		t.Error("created_at should be stamped on insert")
	}

	second, err := store.Upsert(ctx, "asha@test.com", "3", "Computer Science", "9876543210")
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	if second.Year != "3" {
		t.Errorf("year: got %q, want 3", second.Year)
	}
	if second.ID != first.ID {
		t.Error("upsert should update the same document, not create a new one")
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Error("created_at should not change on update")
	}
}

func TestUpsert_NormalizesEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := profilestore.New(db)

	if _, err := store.Upsert(ctx, "  ASHA@Test.Com ", "1", "Physics", ""); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	p, err := store.Get(ctx, "asha@test.com")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Email != "asha@test.com" {
		t.Errorf("stored email should be normalized, got %q", p.Email)
	}
}

func TestGet_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := profilestore.New(db)

	_, err := store.Get(ctx, "nobody@test.com")
	if err != profilestore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
