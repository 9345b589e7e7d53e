package complaintpolicy_test

import (
	"testing"

	"github.com/hosteldesk/hosteldesk/internal/app/policy/complaintpolicy"
	"github.com/hosteldesk/hosteldesk/internal/app/system/identity"
	"github.com/hosteldesk/hosteldesk/internal/domain/models"
)

var (
	admin = identity.Identity{Email: "warden@test.com", Role: models.RoleAdmin}
	user  = identity.Identity{Email: "asha@test.com", Role: models.RoleUser}
	guest = identity.Guest()
)

func TestCanList_OpenToEveryone(t *testing.T) {
	for _, id := range []identity.Identity{admin, user, guest} {
		if err := complaintpolicy.CanList(id); err != nil {
			t.Errorf("CanList(%s) = %v, want nil", id.Role, err)
		}
	}
}

func TestIncludeContact(t *testing.T) {
	if !complaintpolicy.IncludeContact(admin) {
		t.Error("admin should see contact numbers")
	}
	if complaintpolicy.IncludeContact(user) {
		t.Error("user should not see contact numbers")
	}
	if complaintpolicy.IncludeContact(guest) {
		t.Error("guest should not see contact numbers")
	}
}

func TestCanCreate(t *testing.T) {
	if err := complaintpolicy.CanCreate(user); err != nil {
		t.Errorf("user should be able to create: %v", err)
	}
	if err := complaintpolicy.CanCreate(guest); err != nil {
		t.Errorf("guest should be able to create: %v", err)
	}
	if err := complaintpolicy.CanCreate(admin); err != complaintpolicy.ErrAdminCannotCreate {
		t.Errorf("admin create: got %v, want ErrAdminCannotCreate", err)
	}
}

func TestCanManage(t *testing.T) {
	if err := complaintpolicy.CanManage(admin); err != nil {
		t.Errorf("admin should manage: %v", err)
	}
	if err := complaintpolicy.CanManage(user); err != complaintpolicy.ErrAdminRequired {
		t.Errorf("user manage: got %v, want ErrAdminRequired", err)
	}
	if err := complaintpolicy.CanManage(guest); err != complaintpolicy.ErrAdminRequired {
		t.Errorf("guest manage: got %v, want ErrAdminRequired", err)
	}
}

func TestCanDelete_AlwaysDenied(t *testing.T) {
	for _, id := range []identity.Identity{admin, user, guest} {
		if err := complaintpolicy.CanDelete(id); err != complaintpolicy.ErrDeletionDisabled {
			t.Errorf("CanDelete(%s) = %v, want ErrDeletionDisabled", id.Role, err)
		}
	}
}
