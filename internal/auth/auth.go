package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/probill/billing-api/internal/httpx"
)

type ctxKey string

const (
	tokenCookieName = "token"
	subjectCtxKey   = ctxKey("subject")

	// tokenTTL bounds the validity window of issued credentials.
	tokenTTL = time.Hour
)

// Secret returns TOKEN_SECRET or a default dev value. The default is not
// suitable for production.
func Secret() string {
	if s := os.Getenv("TOKEN_SECRET"); s != "" {
		return s
	}
	return "devtokensecret"
}

// IssueToken signs a bearer credential for the given subject with a
// one-hour expiry.
func IssueToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(Secret()))
}

// ParseToken verifies signature and expiry and returns the subject claim.
func ParseToken(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(Secret()), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}

// TokenFromRequest extracts the bearer credential. The token cookie takes
// precedence over the Authorization header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(tokenCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// WithSubject stores the authenticated subject in context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectCtxKey, subject)
}

// SubjectFromContext extracts the authenticated subject.
func SubjectFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(subjectCtxKey)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// RequireAuth rejects requests without a valid credential and attaches the
// subject to the request context before invoking the handler.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := TokenFromRequest(r)
		if raw == "" {
			httpx.Error(w, http.StatusUnauthorized, "Not authorized")
			return
		}
		subject, err := ParseToken(raw)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
	})
}
