package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Payload is the identity carried by an access token.
type Payload struct {
	UserID string
	Email  string
	Name   string
}

// Manager issues and verifies access tokens.
type Manager interface {
	Issue(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

// Claims are the JWT claims written into access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates an HS256 token manager.
func NewJWTManager(secret string, ttl time.Duration) Manager {
	return &jwtManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new access token for the given identity.
func (m *jwtManager) Issue(p Payload) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		Email: p.Email,
		Name:  p.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns the identity it carries.
func (m *jwtManager) Verify(tokenStr string) (Payload, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return Payload{}, ErrInvalidToken
	}

	return Payload{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
