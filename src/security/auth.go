package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService signs and validates the session tokens handed to the
// dashboard. A session token wraps the upstream provider's bearer
// credential so the proxy itself stays stateless.
type AuthService struct {
	JWTSecret string
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{
		JWTSecret: secret,
	}
}

// GenerateSessionToken wraps an upstream session token in a signed JWT.
func (a *AuthService) GenerateSessionToken(upstreamToken string, expiry time.Duration) (string, error) {
	if upstreamToken == "" {
		return "", errors.New("upstream token is required")
	}
	claims := jwt.MapClaims{
		"upstream_token": upstreamToken,
		"exp":            time.Now().Add(expiry).Unix(),
		"iat":            time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.JWTSecret))
}

// ValidateSessionToken checks the JWT and returns the wrapped upstream
// token.
func (a *AuthService) ValidateSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.JWTSecret), nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		upstream, ok := claims["upstream_token"].(string)
		if !ok || upstream == "" {
			return "", errors.New("invalid token: 'upstream_token' claim missing")
		}
		return upstream, nil
	}

	return "", errors.New("invalid token")
}
