// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/S-Khan786/Medicine-Mart-App/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "MediQuick"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.JWT.AccessTokenExpiry = time.Hour
	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	token, err := mgr.GenerateAccessToken("Asha Rao", "9876543210")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", claims.Name)
	assert.Equal(t, "9876543210", claims.Phone)
	assert.Equal(t, "user:9876543210", claims.Subject)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager(testConfig()).GenerateAccessToken("Asha Rao", "9876543210")
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader("abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}
