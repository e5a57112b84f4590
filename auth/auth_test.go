package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praveenkumar11901/marketplace-api/models"
)

func TestGenerateTokenCarriesIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: "user-1", Role: models.RoleShopper}
	tokenString, err := GenerateToken(user)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "SHOPPER", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))
}

func TestGenerateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: "user-1", Role: models.RoleAdmin}
	tokenString, err := GenerateToken(user)
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("some-other-secret"), nil
	})
	assert.Error(t, err)
}
