package auth

import (
	"testing"
	"time"

	"assethub/config"
	"assethub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.SecretKey.AccessTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, expiresAt, err := tokens.GenerateToken("hana@acme.test", entity.RoleHR)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "hana@acme.test", claims.Email)
	assert.Equal(t, entity.RoleHR, claims.Role)
}

func TestJWTService_EmptyRoleRoundTrips(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig("secret", time.Hour))
	require.NoError(t, err)

	token, _, err := tokens.GenerateToken("new@acme.test", entity.RoleNone)
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleNone, claims.Role)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig("secret", time.Hour))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("another-secret", time.Hour))
	require.NoError(t, err)
	foreign, _, err := other.GenerateToken("hana@acme.test", entity.RoleHR)
	require.NoError(t, err)

	expiring := tokens.(*jwtService)
	expiring.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiring.GenerateToken("hana@acme.test", entity.RoleHR)
	require.NoError(t, err)
	expiring.now = time.Now

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "hana@acme.test", "iss": tokenIssuer})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "unsigned", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokens.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
}
