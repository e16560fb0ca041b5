package lib_test

import (
	"regexp"
	"testing"
	"treeuniformes_server/lib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCSRFToken(t *testing.T) {
	token, err := lib.GenerateCSRFToken()
	require.NoError(t, err)

	// 32 random bytes, hex encoded
	assert.Len(t, token, 64)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), token)

	other, err := lib.GenerateCSRFToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestGenerateSKU(t *testing.T) {
	sku, err := lib.GenerateSKU("Kodiak", "Camisa Industrial")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^KOD-CAMISA-[0-9A-F]{4}$`), sku)
}

func TestGenerateSKUTruncatesAndSanitizes(t *testing.T) {
	sku, err := lib.GenerateSKU("TREE Uniformes", "Playera Polo Dama 2024")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^TRE-PLAYER-[0-9A-F]{4}$`), sku)
}

func TestGenerateSKUFallsBackOnEmptyParts(t *testing.T) {
	sku, err := lib.GenerateSKU("", "¡¡¡")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^X-X-[0-9A-F]{4}$`), sku)
}
