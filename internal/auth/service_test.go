package auth_test

import (
	"testing"
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/auth"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	tokens *auth.TokenService
	userID uuid.UUID
	orgID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TokenServiceTestSuite) SetupTest() {
	suite.tokens = auth.NewTokenService("test-secret", 15*time.Minute, 24*time.Hour)
	suite.userID = uuid.New()
	suite.orgID = uuid.New()
}

// TestGenerateAndValidatePair tests the issue/validate round trip
func (suite *TokenServiceTestSuite) TestGenerateAndValidatePair() {
	pair, err := suite.tokens.GeneratePair(suite.userID, "alice@acme.test", &suite.orgID)
	suite.Require().NoError(err)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEmpty(pair.RefreshToken)
	suite.Equal(int64(15*60), pair.AccessTokenExpiresIn)
	suite.Equal(int64(24*60*60), pair.RefreshTokenExpiresIn)

	claims, err := suite.tokens.ValidateAccess(pair.AccessToken)
	suite.Require().NoError(err)
	suite.Equal(suite.userID.String(), claims.Subject)
	suite.Equal("alice@acme.test", claims.Email)
	suite.Equal(suite.orgID.String(), claims.OrganizationID)
	suite.Equal(auth.TokenTypeAccess, claims.TokenType)

	refreshClaims, err := suite.tokens.ValidateRefresh(pair.RefreshToken)
	suite.Require().NoError(err)
	suite.Equal(suite.userID.String(), refreshClaims.Subject)
	suite.Equal(auth.TokenTypeRefresh, refreshClaims.TokenType)
}

// TestNoOrganizationClaim tests issuing tokens for a user without a tenant
func (suite *TokenServiceTestSuite) TestNoOrganizationClaim() {
	pair, err := suite.tokens.GeneratePair(suite.userID, "alice@acme.test", nil)
	suite.Require().NoError(err)

	claims, err := suite.tokens.ValidateAccess(pair.AccessToken)
	suite.Require().NoError(err)
	suite.Empty(claims.OrganizationID)
}

// TestTokenTypeConfusion tests that each validator rejects the other type
func (suite *TokenServiceTestSuite) TestTokenTypeConfusion() {
	pair, err := suite.tokens.GeneratePair(suite.userID, "alice@acme.test", &suite.orgID)
	suite.Require().NoError(err)

	_, err = suite.tokens.ValidateAccess(pair.RefreshToken)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)

	_, err = suite.tokens.ValidateRefresh(pair.AccessToken)
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

// TestExpiredAccessToken tests expiry detection
func (suite *TokenServiceTestSuite) TestExpiredAccessToken() {
	expired := auth.NewTokenService("test-secret", -time.Minute, -time.Minute)
	pair, err := expired.GeneratePair(suite.userID, "alice@acme.test", nil)
	suite.Require().NoError(err)

	_, err = suite.tokens.ValidateAccess(pair.AccessToken)
	suite.ErrorIs(err, apperrors.ErrTokenExpired)

	_, err = suite.tokens.ValidateRefresh(pair.RefreshToken)
	suite.ErrorIs(err, apperrors.ErrTokenExpired)
}

// TestWrongSecret tests that tokens from another signer are rejected
func (suite *TokenServiceTestSuite) TestWrongSecret() {
	other := auth.NewTokenService("another-secret", 15*time.Minute, 24*time.Hour)
	pair, err := other.GeneratePair(suite.userID, "alice@acme.test", nil)
	suite.Require().NoError(err)

	_, err = suite.tokens.ValidateAccess(pair.AccessToken)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

// TestGarbageInput tests that unparseable strings are rejected
func (suite *TokenServiceTestSuite) TestGarbageInput() {
	_, err := suite.tokens.ValidateAccess("not.a.token")
	suite.ErrorIs(err, apperrors.ErrInvalidToken)

	_, err = suite.tokens.ValidateRefresh("")
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

// TestTokenServiceTestSuite runs the test suite
func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

// PasswordTestSuite defines the test suite for password hashing
type PasswordTestSuite struct {
	suite.Suite
}

// TestHashAndCheck tests the bcrypt round trip
func (suite *PasswordTestSuite) TestHashAndCheck() {
	hash, err := auth.HashPassword("correct horse battery staple")
	suite.Require().NoError(err)
	suite.NotEqual("correct horse battery staple", hash)

	suite.True(auth.CheckPassword(hash, "correct horse battery staple"))
	suite.False(auth.CheckPassword(hash, "Correct horse battery staple"))
	suite.False(auth.CheckPassword(hash, ""))
}

// TestHashesAreSalted tests that identical passwords hash differently
func (suite *PasswordTestSuite) TestHashesAreSalted() {
	first, err := auth.HashPassword("secret123")
	suite.Require().NoError(err)
	second, err := auth.HashPassword("secret123")
	suite.Require().NoError(err)

	suite.NotEqual(first, second)
}

// TestPasswordTestSuite runs the test suite
func TestPasswordTestSuite(t *testing.T) {
	suite.Run(t, new(PasswordTestSuite))
}
