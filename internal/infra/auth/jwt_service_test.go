package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmonitor/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokenService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	accessToken, err := tokenService.GenerateAccessToken("ana@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	token, err := tokenService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	subject, err := SubjectFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", subject)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	tokenService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	first, err := tokenService.GenerateAccessToken("ana@example.com")
	require.NoError(t, err)
	second, err := tokenService.GenerateAccessToken("ana@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := tokenService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig())
	require.NoError(t, err)

	other := testConfig()
	other.SecretKey.Access = "another_secret_key_very_long_for_testing"
	verifier, err := NewJWTService(other)
	require.NoError(t, err)

	accessToken, err := issuer.GenerateAccessToken("ana@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(accessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	accessToken, err := impl.GenerateAccessToken("ana@example.com")
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(accessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherTokenTypes(t *testing.T) {
	cfg := testConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ana@example.com",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "refresh",
	})
	signed, err := token.SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	tokenService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, tokenService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestSubjectFromToken_Missing(t *testing.T) {
	_, err := SubjectFromToken(nil)
	assert.Error(t, err)

	_, err = SubjectFromToken(jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{}))
	assert.Error(t, err)
}
