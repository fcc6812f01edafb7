package utils // package utils provides helpers for session token creation

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"table-booking/internal/model"
)

// AccessToken represents a signed JWT session token along with its
// expiry.  Tokens carry the whole identity record as claims so the
// booking handlers never need an extra lookup: subject (sub), email,
// name and the is_admin flag, plus exp and iat.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// NewAccessToken builds and signs an HS256 JWT for a user with the
// given TTL in minutes.
func NewAccessToken(secret string, u model.User, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"email":    u.Email,
		"name":     u.Name,
		"is_admin": u.IsAdmin,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
