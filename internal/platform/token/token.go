// Package token issues and validates the HS256 access tokens used to
// authenticate reviewers against the alert endpoints.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vigia/internal/platform/middleware"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
)

// Claims represents the JWT claims for access tokens.
type Claims struct {
	UserID   string `json:"user_id"`
	NotaryID string `json:"notary_id"`
	jwt.RegisteredClaims
}

// Service handles JWT creation and validation.
type Service struct {
	signingKey []byte
	issuer     string
}

func NewService(signingKey, issuer string) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
	}
}

// GenerateAccessToken signs a token for the given reviewer identity.
func (s *Service) GenerateAccessToken(userID id.UserID, notaryID id.NotaryID, expiresIn time.Duration) (string, error) {
	claims := Claims{
		UserID:   userID.String(),
		NotaryID: notaryID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// ValidateToken parses and verifies a token, returning middleware claims.
func (s *Service) ValidateToken(tokenString string) (*middleware.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnauthorized, "invalid token", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	userID, err := id.ParseUserID(claims.UserID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnauthorized, "invalid user id in token", err)
	}
	notaryID, err := id.ParseNotaryID(claims.NotaryID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnauthorized, "invalid notary id in token", err)
	}

	return &middleware.Claims{UserID: userID, NotaryID: notaryID}, nil
}
