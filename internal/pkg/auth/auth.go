package auth

import (
	"context"
	"errors"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleDelivery Role = "delivery"
)

// Principal is the authenticated caller extracted from the bearer token.
type Principal struct {
	UserID string
	Name   string
	Role   Role
}

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}

// ParseBearer validates an Authorization header value and returns the
// caller. Only HS256-signed tokens are accepted.
func ParseBearer(header, secret string) (*Principal, error) {
	if header == "" {
		return nil, ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrInvalidToken
	}

	return parseJWT(strings.TrimSpace(parts[1]), secret)
}

func parseJWT(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	type claims struct {
		Name string `json:"name"`
		Role string `json:"role"`
		jwt.RegisteredClaims
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	c, _ := tok.Claims.(*claims)
	if c == nil || c.Subject == "" || c.Role == "" {
		return nil, ErrInvalidToken
	}

	role := Role(strings.ToLower(c.Role))
	switch role {
	case RoleCustomer, RoleAdmin, RoleDelivery:
	default:
		return nil, ErrInvalidToken
	}

	return &Principal{
		UserID: c.Subject,
		Name:   c.Name,
		Role:   role,
	}, nil
}
