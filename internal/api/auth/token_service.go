package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and verifies HS256 bearer tokens against a shared
// symmetric secret. Tokens carry no user identity: the subject is a fixed
// placeholder, and holding any unexpired token grants access.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

const tokenSubject = "user"

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		ttl:    ttl,
	}
}

// Issue signs a fresh token with a unique jti and an expiration of now+TTL.
func (s *TokenService) Issue() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiration of a token. Issuer and
// audience are deliberately not validated. The returned error never
// contains the secret.
func (s *TokenService) Verify(tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("alg not allowed")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
