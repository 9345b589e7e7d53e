// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	profilestore "github.com/hosteldesk/hosteldesk/internal/app/store/profiles"
	userstore "github.com/hosteldesk/hosteldesk/internal/app/store/users"
	"github.com/hosteldesk/hosteldesk/internal/app/system/normalize"
	"github.com/hosteldesk/hosteldesk/internal/app/system/respond"
	"github.com/hosteldesk/hosteldesk/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the per-user profile endpoints.
type Handler struct {
	profiles *profilestore.Store
	users    *userstore.Store
	log      *zap.Logger
}

// NewHandler constructs a profile Handler over the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		profiles: profilestore.New(db),
		users:    userstore.New(db),
		log:      logger,
	}
}

// profileResponse is the profile document plus the account's signup year.
type profileResponse struct {
	Email           string `json:"email"`
	Year            string `json:"year"`
	Department      string `json:"department"`
	Number          string `json:"number"`
	MemberSinceYear int    `json:"memberSinceYear,omitempty"`
}

type upsertRequest struct {
	Email      string `json:"email"`
	Year       string `json:"year"`
	Department string `json:"department"`
	Number     string `json:"number"`
}

// Get handles GET /api/profile?email=. A missing profile is not an error:
// the response is the zero-valued shape for that email, so clients can
// render an empty form without a 404 branch.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(r.URL.Query().Get("email"))
	if email == "" {
		respond.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resp := profileResponse{Email: email}

	p, err := h.profiles.Get(ctx, email)
	switch {
	case err == nil:
		resp.Year = p.Year
		resp.Department = p.Department
		resp.Number = p.Number
	case errors.Is(err, profilestore.ErrNotFound):
		// zero-valued response
	default:
		h.log.Error("get profile failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	// Signup year is decoration; if the account lookup fails the profile
	// still goes out without it.
	if u, uerr := h.users.FindByEmail(ctx, email); uerr == nil {
		resp.MemberSinceYear = u.CreatedAt.Year()
	}

	respond.JSON(w, http.StatusOK, resp)
}

// Upsert handles POST /api/profile: create-or-replace of the editable
// fields keyed by email.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := normalize.Email(req.Email)
	if email == "" {
		respond.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.profiles.Upsert(ctx, email,
		strings.TrimSpace(req.Year),
		strings.TrimSpace(req.Department),
		strings.TrimSpace(req.Number))
	if err != nil {
		h.log.Error("upsert profile failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	respond.JSON(w, http.StatusOK, profileResponse{
		Email:      p.Email,
		Year:       p.Year,
		Department: p.Department,
		Number:     p.Number,
	})
}
