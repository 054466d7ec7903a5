package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "jwt_token"

// ErrInvalidToken is returned when a token fails verification.
var ErrInvalidToken = errors.New("invalid or expired token")

// Payload is the identity carried by a session token.
type Payload struct {
	UserID    string
	SessionID string
	Email     string
}

// Manager issues and verifies session tokens.
type Manager interface {
	Generate(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

type jwtManager struct {
	secret []byte
	expiry time.Duration
}

// NewManager creates an HS256 token manager. Tokens expire after the
// given duration.
func NewManager(secret string, expiry time.Duration) Manager {
	return &jwtManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

type sessionClaims struct {
	UserID    string `json:"uid"`
	SessionID string `json:"sid"`
	Email     string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Generate signs a token for the payload. An empty SessionID gets a
// fresh one, so each login starts its own conversation session.
func (m *jwtManager) Generate(p Payload) (string, error) {
	if p.SessionID == "" {
		p.SessionID = uuid.NewString()
	}

	now := time.Now()
	claims := sessionClaims{
		UserID:    p.UserID,
		SessionID: p.SessionID,
		Email:     p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its payload.
func (m *jwtManager) Verify(tokenStr string) (Payload, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Payload{}, ErrInvalidToken
	}

	return Payload{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		Email:     claims.Email,
	}, nil
}
