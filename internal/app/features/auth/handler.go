// internal/app/features/auth/handler.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	profilestore "github.com/hosteldesk/hosteldesk/internal/app/store/profiles"
	studentstore "github.com/hosteldesk/hosteldesk/internal/app/store/students"
	userstore "github.com/hosteldesk/hosteldesk/internal/app/store/users"
	"github.com/hosteldesk/hosteldesk/internal/app/system/normalize"
	"github.com/hosteldesk/hosteldesk/internal/app/system/passwords"
	"github.com/hosteldesk/hosteldesk/internal/app/system/respond"
	"github.com/hosteldesk/hosteldesk/internal/app/system/timeouts"
	"github.com/hosteldesk/hosteldesk/internal/app/system/token"
	"github.com/hosteldesk/hosteldesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// emailPattern is intentionally loose: one @, no whitespace, a dot in the
// domain. Real validation is the student-directory allowlist.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Handler serves signup and login.
type Handler struct {
	users         *userstore.Store
	students      *studentstore.Store
	profiles      *profilestore.Store
	tokens        *token.Service
	adminEmail    string
	adminPassword string
	log           *zap.Logger
}

// NewHandler constructs an auth Handler. adminEmail/adminPassword are the
// configured operator credentials; the admin account never lives in the
// users collection.
func NewHandler(db *mongo.Database, tokens *token.Service, adminEmail, adminPassword string, logger *zap.Logger) *Handler {
	return &Handler{
		users:         userstore.New(db),
		students:      studentstore.New(db),
		profiles:      profilestore.New(db),
		tokens:        tokens,
		adminEmail:    normalize.Email(adminEmail),
		adminPassword: adminPassword,
		log:           logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Signup handles POST /api/auth/signup. Accounts are allowlisted: only
// emails present in the student directory may register, and the configured
// admin email can never be created this way.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := normalize.Email(req.Email)
	if !emailPattern.MatchString(email) {
		respond.Error(w, http.StatusBadRequest, "email is invalid")
		return
	}
	if len(req.Password) < passwords.MinLength {
		respond.Error(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}
	if email == h.adminEmail {
		respond.Error(w, http.StatusForbidden, "Cannot create admin via signup")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	student, err := h.students.FindByEmail(ctx, email)
	if errors.Is(err, studentstore.ErrNotFound) {
		respond.Error(w, http.StatusForbidden, "Email not found in student records")
		return
	}
	if err != nil {
		h.log.Error("student lookup failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	hash, err := passwords.Hash(req.Password)
	if err != nil {
		h.log.Error("password hash failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	if _, err := h.users.Create(ctx, email, hash); err != nil {
		if errors.Is(err, userstore.ErrDuplicateUser) {
			respond.Error(w, http.StatusConflict, userstore.ErrDuplicateUser.Error())
			return
		}
		h.log.Error("create user failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	// Prefill the profile from the directory record. Best effort: a failure
	// here never fails the signup.
	if _, perr := h.profiles.Upsert(ctx, email, student.Year, student.Department, ""); perr != nil {
		h.log.Warn("profile prefill failed", zap.String("email", email), zap.Error(perr))
	}

	h.issueToken(w, http.StatusCreated, email, models.RoleUser)
}

// Login handles POST /api/auth/login. The configured admin credentials are
// checked first; everything else goes through the users collection. All
// failures look identical to the caller.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := normalize.Email(req.Email)

	if email == h.adminEmail && h.adminEmail != "" {
		if h.adminPassword == "" || req.Password != h.adminPassword {
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.log.Info("admin login", zap.String("email", email))
		h.issueToken(w, http.StatusOK, email, models.RoleAdmin)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.users.FindByEmail(ctx, email)
	if errors.Is(err, userstore.ErrNotFound) {
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.log.Error("user lookup failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if !passwords.Verify(u.PasswordHash, req.Password) {
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.issueToken(w, http.StatusOK, email, models.RoleUser)
}

func (h *Handler) issueToken(w http.ResponseWriter, status int, email, role string) {
	t, err := h.tokens.Sign(email, role)
	if err != nil {
		h.log.Error("token sign failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	respond.JSON(w, status, authResponse{Token: t, Email: email, Role: role})
}
