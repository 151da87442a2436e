package helpers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const DefaultTokenTTL = 2 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed payload: {id, tipo_usuario, iat, exp}.
type Claims struct {
	ID   int    `json:"id"`
	Role string `json:"tipo_usuario"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 tokens with a fixed TTL.
// There is no refresh and no revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenService) Issue(userID int, role string) (string, error) {
	now := s.now()
	claims := Claims{
		ID:   userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify accepts "Bearer <t>" or a bare token.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	tok := StripBearer(raw)
	if tok == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil || claims.ID <= 0 || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func StripBearer(raw string) string {
	tok := strings.TrimSpace(raw)
	if fields := strings.Fields(tok); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		tok = fields[1]
	}
	return strings.Trim(tok, "\"'")
}
