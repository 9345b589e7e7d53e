// internal/app/policy/complaintpolicy/complaintpolicy.go

// Package complaintpolicy holds the role-gate decisions for complaint
// operations. Every function is a pure decision over the resolved request
// identity; handlers translate a returned error into a 403 with the
// error's text as the reason.
package complaintpolicy

import (
	"errors"

	"github.com/hosteldesk/hosteldesk/internal/app/system/identity"
)

// Fixed denial reasons. These strings are user-visible and part of the API
// surface, so they stay stable.
var (
	ErrAdminCannotCreate = errors.New("Admins cannot create complaints. Admins can only manage existing complaints.")
	ErrAdminRequired     = errors.New("Admin privileges required")
	ErrDeletionDisabled  = errors.New("Complaint deletion is disabled. Complaints can only be resolved.")
)

// CanList reports whether the identity may list or read complaints.
// Reading is open to everyone, including guests; what varies by role is
// redaction (see IncludeContact).
func CanList(identity.Identity) error { return nil }

// IncludeContact reports whether responses for this identity carry the
// contactNumber field. Only the admin sees contact numbers.
func IncludeContact(id identity.Identity) bool { return id.IsAdmin() }

// CanCreate reports whether the identity may file a complaint. The admin
// manages complaints but never files them.
func CanCreate(id identity.Identity) error {
	if id.IsAdmin() {
		return ErrAdminCannotCreate
	}
	return nil
}

// CanManage reports whether the identity may change a complaint's status
// or resolve it.
func CanManage(id identity.Identity) error {
	if !id.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// CanDelete always denies: complaints are a permanent record and the
// deletion endpoint is disabled for every role, the admin included.
func CanDelete(identity.Identity) error { return ErrDeletionDisabled }
