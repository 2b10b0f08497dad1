package session

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

var ErrInvalidToken = errors.New("invalid_token")

// Claims is the payload carried by a session token.
type Claims struct {
	UserID snowflake.ID
	Name   string
	Role   identitydomain.Role
}

// Issue signs an HS256 token for the user with the given lifetime.
func Issue(secret string, user identitydomain.User, ttl time.Duration, now time.Time) (string, time.Time, error) {
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"name": user.Name,
		"role": string(user.Role),
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse validates the signature and expiry and returns the claims.
func Parse(secret, token string) (Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, _ := mapClaims["sub"].(string)
	name, _ := mapClaims["name"].(string)
	role, _ := mapClaims["role"].(string)

	id, err := snowflake.ParseString(sub)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	if !identitydomain.Role(role).Valid() {
		return Claims{}, ErrInvalidToken
	}
	return Claims{UserID: id, Name: name, Role: identitydomain.Role(role)}, nil
}
