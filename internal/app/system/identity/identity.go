// internal/app/system/identity/identity.go

// Package identity derives the per-request {email, role} value from
// credentials. Resolution is a pure function of the request headers plus
// injected configuration; nothing here touches session state.
//
// Precedence: a verifiable bearer token wins, the X-User-Email fallback
// header comes second, and everything else is a guest. The fallback header
// is unauthenticated, so it can never confer the admin role: admin is
// granted only through a signed token whose subject matches the configured
// admin address.
package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/hosteldesk/hosteldesk/internal/app/system/normalize"
	"github.com/hosteldesk/hosteldesk/internal/app/system/token"
	"github.com/hosteldesk/hosteldesk/internal/domain/models"
)

// EmailHeader is the unauthenticated fallback identity header.
const EmailHeader = "X-User-Email"

// Identity is who a request claims to be, after resolution.
type Identity struct {
	Email string // normalized lowercase; "" for guests
	Role  string // models.RoleAdmin | models.RoleUser | models.RoleGuest
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool { return id.Role == models.RoleAdmin }

// IsGuest reports whether the request carried no usable credentials.
func (id Identity) IsGuest() bool { return id.Role == models.RoleGuest }

// Guest is the identity of a request with no credentials.
func Guest() Identity {
	return Identity{Email: "", Role: models.RoleGuest}
}

// TokenVerifier validates a bearer token and returns its embedded claims.
type TokenVerifier interface {
	Verify(tokenStr string) (token.Claims, error)
}

// Resolver derives identities. The admin email is injected at construction
// so business logic never reads ambient configuration.
type Resolver struct {
	tokens     TokenVerifier
	adminEmail string // normalized lowercase
}

// NewResolver builds a Resolver around a token verifier and the configured
// admin address.
func NewResolver(tokens TokenVerifier, adminEmail string) *Resolver {
	return &Resolver{
		tokens:     tokens,
		adminEmail: normalize.Email(adminEmail),
	}
}

// Resolve computes the identity for the given Authorization header value
// and fallback email header value.
//
// A malformed or unverifiable token never errors; it silently falls
// through to the fallback header, and the absence of both yields a guest.
// A token-embedded admin role is honored only when the token subject is
// the configured admin address; the fallback header caps out at the user
// role even when it names the admin.
func (r *Resolver) Resolve(authHeader, fallbackEmail string) Identity {
	if raw, ok := strings.CutPrefix(authHeader, "Bearer "); ok && r.tokens != nil {
		if claims, err := r.tokens.Verify(raw); err == nil && claims.Email != "" {
			email := normalize.Email(claims.Email)
			role := claims.Role
			if role == "" {
				role = models.RoleUser
			}
			if role == models.RoleAdmin && email != r.adminEmail {
				role = models.RoleUser
			}
			return Identity{Email: email, Role: role}
		}
	}

	if email := normalize.Email(fallbackEmail); email != "" {
		return Identity{Email: email, Role: models.RoleUser}
	}

	return Guest()
}

type ctxKey string

const identityKey ctxKey = "requestIdentity"

// Middleware resolves the request identity once and stores it in the
// request context for handlers to read via FromRequest.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := r.Resolve(req.Header.Get("Authorization"), req.Header.Get(EmailHeader))
		ctx := context.WithValue(req.Context(), identityKey, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// FromRequest returns the identity placed in the context by Middleware,
// or a guest when the middleware did not run.
func FromRequest(r *http.Request) Identity {
	if id, ok := r.Context().Value(identityKey).(Identity); ok {
		return id
	}
	return Guest()
}

// WithTestIdentity injects an identity into a request's context. Test
// helper for handlers that read FromRequest without the middleware.
func WithTestIdentity(r *http.Request, id Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, id))
}
