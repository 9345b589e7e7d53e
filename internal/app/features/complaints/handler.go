// internal/app/features/complaints/handler.go
package complaints

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hosteldesk/hosteldesk/internal/app/policy/complaintpolicy"
	complaintstore "github.com/hosteldesk/hosteldesk/internal/app/store/complaints"
	studentstore "github.com/hosteldesk/hosteldesk/internal/app/store/students"
	"github.com/hosteldesk/hosteldesk/internal/app/system/identity"
	"github.com/hosteldesk/hosteldesk/internal/app/system/respond"
	"github.com/hosteldesk/hosteldesk/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the resident-facing complaint endpoints.
type Handler struct {
	complaints *complaintstore.Store
	students   *studentstore.Store
	log        *zap.Logger
}

// NewHandler constructs a complaints Handler over the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		complaints: complaintstore.New(db),
		students:   studentstore.New(db),
		log:        logger,
	}
}

// List handles GET /api/complaints?status=&category=.
// Open to every role; non-admin responses have contactNumber redacted.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	id := identity.FromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	filter := complaintstore.Filter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
	}
	list, err := h.complaints.List(ctx, filter, complaintpolicy.IncludeContact(id))
	if err != nil {
		h.log.Error("list complaints failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch complaints")
		return
	}

	respond.JSON(w, http.StatusOK, list)
}

// Get handles GET /api/complaints/{id}, with the same redaction as List.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Complaint not found")
		return
	}
	id := identity.FromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.complaints.GetByID(ctx, oid, complaintpolicy.IncludeContact(id))
	if errors.Is(err, complaintstore.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "Complaint not found")
		return
	}
	if err != nil {
		h.log.Error("get complaint failed", zap.String("id", oid.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch complaint")
		return
	}

	respond.JSON(w, http.StatusOK, c)
}

// Create handles POST /api/complaints.
//
// Order of checks: role gate, field validation (all violations reported
// together), then the directory allowlist. Nothing is written unless every
// check passes.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id := identity.FromRequest(r)
	if err := complaintpolicy.CanCreate(id); err != nil {
		respond.Error(w, http.StatusForbidden, err.Error())
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, violations := validateCreate(req)
	if len(violations) > 0 {
		respond.Error(w, http.StatusBadRequest, strings.Join(violations, ", "))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := verifyStudent(ctx, h.students, id, c.StudentName, c.RoomNumber); err != nil {
		if isAllowlistDenial(err) {
			respond.Error(w, http.StatusForbidden, err.Error())
			return
		}
		h.log.Error("student allowlist check failed", zap.String("email", id.Email), zap.Error(err))
		respond.Error(w, http.StatusForbidden, "Failed student validation")
		return
	}

	created, err := h.complaints.Create(ctx, c)
	if err != nil {
		h.log.Error("create complaint failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to create complaint")
		return
	}

	h.log.Info("complaint created",
		zap.String("id", created.ID.Hex()),
		zap.String("category", created.Category),
		zap.String("room", created.RoomNumber))
	respond.JSON(w, http.StatusCreated, created)
}

// Delete handles DELETE /api/complaints/{id}. The endpoint exists so the
// denial is explicit: deletion is disabled for every role and no record is
// ever removed.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := complaintpolicy.CanDelete(identity.FromRequest(r))
	respond.Error(w, http.StatusForbidden, err.Error())
}
