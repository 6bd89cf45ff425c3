package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"modgate/internal/shared/biztime"
)

// AdminRole is the role claim carried by administrative API tokens.
const AdminRole = "admin"

// AdminClaims are the claims embedded in an administrative API token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminTokenService issues and verifies short-lived HS256 tokens for the
// administrative API. These are unrelated to session credentials; they gate
// key generation, session revocation, and registry management.
type AdminTokenService struct {
	secret     []byte
	expMinutes int
}

func NewAdminTokenService(secret string, expMinutes int) *AdminTokenService {
	if expMinutes <= 0 {
		expMinutes = 60
	}
	return &AdminTokenService{
		secret:     []byte(secret),
		expMinutes: expMinutes,
	}
}

// Generate mints an admin token.
func (s *AdminTokenService) Generate() (token string, expiresIn int64, err error) {
	now := biztime.NowUTC()
	claims := &AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, int64(s.expMinutes) * 60, nil
}

// Verify validates an admin token and returns its claims.
func (s *AdminTokenService) Verify(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin token: %w", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid admin token")
	}
	if claims.Role != AdminRole {
		return nil, fmt.Errorf("invalid role in admin token")
	}

	return claims, nil
}
