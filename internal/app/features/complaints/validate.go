// internal/app/features/complaints/validate.go
package complaints

import (
	"context"
	"errors"
	"strings"

	studentstore "github.com/hosteldesk/hosteldesk/internal/app/store/students"
	"github.com/hosteldesk/hosteldesk/internal/app/system/htmlsanitize"
	"github.com/hosteldesk/hosteldesk/internal/app/system/identity"
	"github.com/hosteldesk/hosteldesk/internal/app/system/normalize"
	"github.com/hosteldesk/hosteldesk/internal/domain/models"
)

// Allowlist denial reasons. These distinguish the three mismatch cases for
// the submitter; all of them map to a 403.
var (
	errStudentNotFound = errors.New("Student record not found for provided name/room")
	errRoomMismatch    = errors.New("Room number does not match student records")
	errNameMismatch    = errors.New("Name does not match student records")
)

// validateCreate checks the submission fields and returns the normalized
// complaint plus every violation found. Checks never short-circuit: a
// payload with three bad fields reports all three at once.
//
// An omitted priority falls back to the default; a present-but-unknown one
// is a violation.
func validateCreate(req createRequest) (models.Complaint, []string) {
	var violations []string

	name := normalize.Name(req.StudentName)
	if name == "" {
		violations = append(violations, "studentName is required")
	}

	room := normalize.Room(req.RoomNumber)
	if room == "" {
		violations = append(violations, "roomNumber is required")
	}

	if !models.IsValidCategory(req.Category) {
		violations = append(violations, "category is invalid")
	}

	priority := strings.TrimSpace(req.Priority)
	if priority == "" {
		priority = models.DefaultPriority
	} else if !models.IsValidPriority(priority) {
		violations = append(violations, "priority is invalid")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		violations = append(violations, "description is required")
	}

	contact := strings.TrimSpace(req.ContactNumber)
	if contact == "" {
		violations = append(violations, "contactNumber is required")
	}

	c := models.Complaint{
		StudentName:   name,
		RoomNumber:    room,
		Category:      req.Category,
		Priority:      priority,
		Description:   htmlsanitize.Sanitize(description),
		ContactNumber: contact,
	}
	return c, violations
}

// verifyStudent is the allowlist check: the claimed name/room must match a
// directory record tied to the submitter. Lookup prefers the authenticated
// email; with no email (or no record for it) it falls back to a
// case-insensitive name + room search. This is anti-impersonation, not
// data integrity — a denial is an authorization failure.
//
// Returned denials are one of errStudentNotFound, errRoomMismatch,
// errNameMismatch; any other error is an upstream directory failure.
func verifyStudent(ctx context.Context, students *studentstore.Store, id identity.Identity, claimedName, claimedRoom string) error {
	var (
		rec models.Student
		err error
	)

	found := false
	if id.Email != "" {
		rec, err = students.FindByEmail(ctx, id.Email)
		switch {
		case err == nil:
			found = true
		case errors.Is(err, studentstore.ErrNotFound):
			// fall through to the name/room lookup
		default:
			return err
		}
	}

	if !found {
		first, last := normalize.SplitName(claimedName)
		rec, err = students.FindByNameAndRoom(ctx, first, last, claimedRoom)
		if errors.Is(err, studentstore.ErrNotFound) {
			return errStudentNotFound
		}
		if err != nil {
			return err
		}
	}

	if normalize.RoomKey(rec.Room) != normalize.RoomKey(claimedRoom) {
		return errRoomMismatch
	}

	recName := normalize.FullNameKey(rec.FirstName + " " + rec.LastName)
	if recName != "" && recName != normalize.FullNameKey(claimedName) {
		return errNameMismatch
	}

	return nil
}

// isAllowlistDenial separates the 403 reasons above from upstream errors.
func isAllowlistDenial(err error) bool {
	return errors.Is(err, errStudentNotFound) ||
		errors.Is(err, errRoomMismatch) ||
		errors.Is(err, errNameMismatch)
}
