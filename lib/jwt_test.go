package lib_test

import (
	"testing"
	"time"
	"treeuniformes_server/lib"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, exp time.Time, jti uuid.UUID) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "cliente@example.mx",
		"role":  "customer",
		"iat":   time.Now().Unix(),
		"exp":   exp.Unix(),
		"jti":   jti.String(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseTokenExtractsRevocationClaims(t *testing.T) {
	jti := uuid.New()
	exp := time.Now().Add(time.Hour)

	claims, err := lib.ParseToken(signTestToken(t, "secret", exp, jti), "secret")
	require.NoError(t, err)

	// Jti and Exp drive token blacklisting on logout and rotation
	assert.Equal(t, jti, claims.Jti)
	assert.Equal(t, exp.Unix(), claims.Exp.Unix())
	assert.Equal(t, "customer", claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tokenStr := signTestToken(t, "secret", time.Now().Add(time.Hour), uuid.New())

	_, err := lib.ParseToken(tokenStr, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpiredToken(t *testing.T) {
	tokenStr := signTestToken(t, "secret", time.Now().Add(-time.Hour), uuid.New())

	_, err := lib.ParseToken(tokenStr, "secret")
	assert.Error(t, err)
}
