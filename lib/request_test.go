package lib_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAndValidateBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"ventas@treeuniformes.mx","password":"supersecret"}`))
	r.Header.Set("Content-Type", "application/json")

	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	require.NoError(t, err)
	assert.Equal(t, "ventas@treeuniformes.mx", body.Email)
	assert.Equal(t, "supersecret", body.Password)
}

func TestExtractAndValidateBodyRejectsInvalidEmail(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"not-an-email","password":"supersecret"}`))
	r.Header.Set("Content-Type", "application/json")

	_, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	require.Error(t, err)

	var vErr *lib.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.NotEmpty(t, vErr.Errors)
	assert.Equal(t, "email", vErr.Errors[0].Field)
}

func TestExtractAndValidateBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"a@b.mx","password":"supersecret","admin":true}`))
	r.Header.Set("Content-Type", "application/json")

	_, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	assert.Error(t, err)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "ventas@treeuniformes.mx", lib.SanitizeString("  Ventas@TreeUniformes.MX  ", true, true))
	assert.Equal(t, "Kodiak", lib.SanitizeString("  Kodiak  ", true, false))
}
