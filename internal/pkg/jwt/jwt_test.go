package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateAccessToken("87654321", "Test User", "USER", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "87654321", claims.EmployeeID)
	require.Equal(t, "Test User", claims.UserName)
	require.Equal(t, "USER", claims.Role)
	require.Equal(t, "87654321", claims.Subject)
	require.NotEmpty(t, claims.ID)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("87654321", "Test User", "USER", testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidate_Expired(t *testing.T) {
	token, err := GenerateAccessToken("87654321", "Test User", "USER", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := ValidateAccessToken("not-a-token", testSecret)
	require.ErrorIs(t, err, ErrTokenInvalid)
}
