// internal/app/features/complaints/adminhandler.go
package complaints

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	complaintstore "github.com/hosteldesk/hosteldesk/internal/app/store/complaints"
	"github.com/hosteldesk/hosteldesk/internal/app/system/htmlsanitize"
	"github.com/hosteldesk/hosteldesk/internal/app/system/respond"
	"github.com/hosteldesk/hosteldesk/internal/app/system/timeouts"
	"github.com/hosteldesk/hosteldesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AdminHandler serves the admin complaint-management endpoints. Routes
// carrying it are mounted behind the admin gate, so handlers here assume
// an admin identity.
type AdminHandler struct {
	complaints *complaintstore.Store
	log        *zap.Logger
}

// NewAdminHandler constructs an AdminHandler over the given database.
func NewAdminHandler(db *mongo.Database, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		complaints: complaintstore.New(db),
		log:        logger,
	}
}

// List handles GET /api/admin/complaints?status=&category=.
// Admin reads are never redacted.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	filter := complaintstore.Filter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
	}
	list, err := h.complaints.List(ctx, filter, true)
	if err != nil {
		h.log.Error("admin list complaints failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch complaints")
		return
	}

	respond.JSON(w, http.StatusOK, list)
}

// SetStatus handles PATCH /api/admin/complaints/{id}/status.
//
// Only the open states are accepted here, in either direction. A resolved
// complaint is terminal (409), and marking one resolved goes through
// Resolve so a resolved record always carries its resolution.
func (h *AdminHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Complaint not found")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.IsValidStatus(req.Status) {
		respond.Error(w, http.StatusBadRequest, "status is invalid")
		return
	}
	if req.Status == models.StatusResolved {
		respond.Error(w, http.StatusBadRequest, "resolved status is set via the resolve endpoint")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	c, err := h.complaints.SetStatus(ctx, oid, req.Status)
	if err != nil {
		h.writeLifecycleError(w, oid, "update complaint status failed", err)
		return
	}

	h.log.Info("complaint status updated",
		zap.String("id", oid.Hex()),
		zap.String("status", req.Status))
	respond.JSON(w, http.StatusOK, c)
}

// Resolve handles PATCH /api/admin/complaints/{id}/resolve. It atomically
// records the resolved status, the resolution text, and the timestamp.
func (h *AdminHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Complaint not found")
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resolution := strings.TrimSpace(req.Resolution)
	if resolution == "" {
		respond.Error(w, http.StatusBadRequest, "resolution is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	c, err := h.complaints.Resolve(ctx, oid, htmlsanitize.Sanitize(resolution))
	if err != nil {
		h.writeLifecycleError(w, oid, "resolve complaint failed", err)
		return
	}

	h.log.Info("complaint resolved", zap.String("id", oid.Hex()))
	respond.JSON(w, http.StatusOK, c)
}

func (h *AdminHandler) writeLifecycleError(w http.ResponseWriter, oid primitive.ObjectID, msg string, err error) {
	switch {
	case errors.Is(err, complaintstore.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Complaint not found")
	case errors.Is(err, complaintstore.ErrAlreadyResolved):
		respond.Error(w, http.StatusConflict, complaintstore.ErrAlreadyResolved.Error())
	default:
		h.log.Error(msg, zap.String("id", oid.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to update complaint")
	}
}
