package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/config"
	"github.com/stardustenigma/portfolio-backend/errs"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

// adminAuth gates the administrative command surface: a single operator
// authenticates with a password checked against a bcrypt hash and receives
// a short-lived JWT.
type adminAuth struct {
	responder    Responder
	secret       []byte
	passwordHash string
	tokenTTL     time.Duration
}

func newAdminAuth(c map[string]string) adminAuth {
	logger := log.With().Str("handlerName", "adminAuth").Logger()

	return adminAuth{
		responder:    NewResponder(logger),
		secret:       []byte(config.GetString(c, "JWT_SECRET", "")),
		passwordHash: config.GetString(c, "ADMIN_PASSWORD_HASH", ""),
		tokenTTL:     config.GetDuration(c, "ADMIN_TOKEN_TTL", 12*time.Hour),
	}
}

// configured reports whether the admin gate has both credentials it needs.
// Without them the gate fails closed: no login and no token verification,
// since an empty signing key would accept tokens anyone can mint.
func (a adminAuth) configured() bool {
	return len(a.secret) > 0 && a.passwordHash != ""
}

// verifyPassword checks the submitted password against the configured hash.
func (a adminAuth) verifyPassword(password string) error {
	if !a.configured() {
		return errs.NewForbiddenError("admin access not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return errs.NewUnauthorizedError("invalid credentials")
	}
	return nil
}

// issueToken mints an admin session token.
func (a adminAuth) issueToken(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// authenticate rejects requests without a valid admin bearer token.
func (a adminAuth) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.configured() {
			a.responder.WriteError(w, errs.NewForbiddenError("admin access not configured"))
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			a.responder.WriteError(w, errs.NewUnauthorizedError("missing bearer token"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errs.ErrUnauthorized
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid || claims.Subject != adminSubject {
			a.responder.WriteError(w, errs.NewUnauthorizedError("invalid or expired token"))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithAdminSubject(r.Context(), claims.Subject)))
	})
}
