package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-api/pkg/jwt"
)

const (
	secret = "clave-de-prueba"
	issuer = "estoque-api-test"
)

func TestGenerateYParse_RoundTrip(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "mariana", "supervisor", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, level, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "mariana", username)
	assert.Equal(t, "supervisor", level)
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "mariana", "operador", issuer, 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro-secreto", tok)
	require.Error(t, err, "un token firmado con otro secreto no debe validar")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "mariana", "operador", issuer, -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(secret, tok)
	require.Error(t, err, "un token con expiración pasada no debe validar")
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "mariana", "operador", issuer, 60)
	require.Error(t, err)
}
