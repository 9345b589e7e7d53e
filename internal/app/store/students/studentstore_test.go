package studentstore_test

import (
	"testing"

	studentstore "github.com/hosteldesk/hosteldesk/internal/app/store/students"
	"github.com/hosteldesk/hosteldesk/internal/testutil"
)

func TestFindByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateStudent(ctx, "asha@test.com", "Asha", "Rao", "A-104")

	store := studentstore.New(db)

	st, err := store.FindByEmail(ctx, "asha@test.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if st.Room != "A-104" {
		t.Errorf("room: got %q, want A-104", st.Room)
	}
}

func TestFindByEmail_NormalizesInput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateStudent(ctx, "asha@test.com", "Asha", "Rao", "A-104")

	store := studentstore.New(db)

	if _, err := store.FindByEmail(ctx, "  ASHA@Test.Com "); err != nil {
		t.Errorf("uppercase/whitespace email should still match: %v", err)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := studentstore.New(db)

	_, err := store.FindByEmail(ctx, "nobody@test.com")
	if err != studentstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByNameAndRoom_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateStudent(ctx, "asha@test.com", "Asha", "Rao", "A-104")

	store := studentstore.New(db)

	st, err := store.FindByNameAndRoom(ctx, "asha", "RAO", "A-104")
	if err != nil {
		t.Fatalf("FindByNameAndRoom failed: %v", err)
	}
	if st.Email != "asha@test.com" {
		t.Errorf("email: got %q, want asha@test.com", st.Email)
	}
}

func TestFindByNameAndRoom_WrongRoom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateStudent(ctx, "asha@test.com", "Asha", "Rao", "A-104")

	store := studentstore.New(db)

	_, err := store.FindByNameAndRoom(ctx, "Asha", "Rao", "B-201")
	if err != studentstore.ErrNotFound {
		t.Errorf("expected ErrNotFound for wrong room, got %v", err)
	}
}

func TestFindByNameAndRoom_NoRegexInjection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateStudent(ctx, "asha@test.com", "Asha", "Rao", "A-104")

	store := studentstore.New(db)

	// ".*" must not match everything; name tokens are quoted literals
	_, err := store.FindByNameAndRoom(ctx, ".*", ".*", "A-104")
	if err != studentstore.ErrNotFound {
		t.Errorf("regex metacharacters should not match, got %v", err)
	}
}
