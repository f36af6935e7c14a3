package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. Callers branch with errors.Is; the HTTP
// layer reports all of them as a uniform 401.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

const sessionTTL = 7 * 24 * time.Hour

// Identity is the claim set carried by a session token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// TokenService issues and verifies self-contained HS256 session tokens.
// A token is trusted until its embedded expiry; there is no server-side
// session table to revalidate against.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue signs a token embedding the identity with a 7-day expiry.
func (s *TokenService) Issue(identity Identity) (string, error) {
	claims := jwt.MapClaims{
		"email": identity.Email,
		"exp":   s.now().Add(sessionTTL).Unix(),
	}
	if identity.Name != "" {
		claims["name"] = identity.Name
	}
	if identity.Photo != "" {
		claims["photo"] = identity.Photo
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning the embedded identity.
// Failures map to exactly one of ErrTokenExpired, ErrTokenSignatureInvalid
// or ErrTokenMalformed.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))

	switch {
	case err == nil && token.Valid:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Identity{}, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Identity{}, ErrTokenSignatureInvalid
	default:
		return Identity{}, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrTokenMalformed
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return Identity{}, ErrTokenMalformed
	}
	name, _ := claims["name"].(string)
	photo, _ := claims["photo"].(string)

	return Identity{Email: email, Name: name, Photo: photo}, nil
}
