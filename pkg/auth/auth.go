package auth

import (
	"context"

	jwt "github.com/golang-jwt/jwt/v4"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleUser:
		return true
	}
	return false
}

// IsStaff reports whether the role may operate on any booking, not just its own.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleStaff
}

type Config struct {
	JWTKey string `yaml:"jwtKey" envconfig:"JWT_KEY" default:"secret"`
}

type Profile struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type Claims struct {
	jwt.RegisteredClaims
	Profile Profile `json:"profile"`
}

type ctxKey int

const principalKey ctxKey = iota + 1

// SetAuthContext stores the authenticated principal on the request context.
func SetAuthContext(ctx context.Context, username string, role Role) context.Context {
	return context.WithValue(ctx, principalKey, Profile{Username: username, Role: role})
}

// FromContext returns the authenticated principal, if any.
func FromContext(ctx context.Context) (Profile, bool) {
	p, ok := ctx.Value(principalKey).(Profile)
	return p, ok
}
