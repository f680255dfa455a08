package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/staffhive/staffhive/pkg/kernel"
)

// Role identifies which side of the marketplace a token belongs to
type Role string

const (
	RoleStaff     Role = "staff"
	RoleRecruiter Role = "recruiter"
	RoleInstitute Role = "institute"
)

// TokenClaims is the validated content of an access token
type TokenClaims struct {
	UserID    kernel.UserID
	Role      Role
	ExpiresAt time.Time
}

// TokenService issues and validates HS256 access tokens. Credential
// storage and login flows live outside this service; it only covers the
// marketplace API's bearer-token boundary.
type TokenService struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

func NewTokenService(secret []byte, issuer string, lifetime time.Duration) *TokenService {
	return &TokenService{
		secret:   secret,
		issuer:   issuer,
		lifetime: lifetime,
	}
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a signed token for the given identity
func (s *TokenService) GenerateAccessToken(userID kernel.UserID, role Role) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateAccessToken parses and verifies a token string
func (s *TokenService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	var claims accessClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return &TokenClaims{
		UserID:    kernel.UserID(claims.Subject),
		Role:      Role(claims.Role),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
