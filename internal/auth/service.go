package auth

import (
	"errors"
	"time"

	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// TokenTypeAccess marks short-lived tokens accepted on API requests
	TokenTypeAccess = "access"
	// TokenTypeRefresh marks long-lived tokens accepted only by the refresh mutation
	TokenTypeRefresh = "refresh"

	issuer = "mini-project-management-system"
)

// Claims represents JWT token claims carried by both token types. The
// organization id reflects the user's tenant at issuance time; tenancy is
// re-resolved on every request, so a stale claim cannot widen access.
type Claims struct {
	Email          string `json:"email,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	TokenType      string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair bundles the access and refresh tokens returned by login/refresh
type TokenPair struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresIn  int64
	RefreshTokenExpiresIn int64
}

// TokenService issues and validates HS256-signed JWTs
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GeneratePair issues an access/refresh token pair for a user
func (s *TokenService) GeneratePair(userID uuid.UUID, email string, organizationID *uuid.UUID) (*TokenPair, error) {
	now := time.Now()

	orgClaim := ""
	if organizationID != nil {
		orgClaim = organizationID.String()
	}

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email:          email,
		OrganizationID: orgClaim,
		TokenType:      TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})
	accessToken, err := access.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})
	refreshToken, err := refresh.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  int64(s.accessTTL.Seconds()),
		RefreshTokenExpiresIn: int64(s.refreshTTL.Seconds()),
	}, nil
}

// ValidateAccess validates an access token and returns its claims
func (s *TokenService) ValidateAccess(tokenString string) (*Claims, error) {
	return s.validate(tokenString, TokenTypeAccess)
}

// ValidateRefresh validates a refresh token and returns its claims
func (s *TokenService) ValidateRefresh(tokenString string) (*Claims, error) {
	claims, err := s.validate(tokenString, TokenTypeRefresh)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenExpired) {
			return nil, err
		}
		return nil, apperrors.ErrInvalidRefreshToken
	}
	return claims, nil
}

func (s *TokenService) validate(tokenString, tokenType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash against a plaintext candidate
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
