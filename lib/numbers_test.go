package lib_test

import (
	"strings"
	"testing"
	"time"
	"treeuniformes_server/lib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The suffix alphabet excludes ambiguous characters (0, O, 1, I)
const suffixAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

func assertNumberFormat(t *testing.T, number, prefix string) {
	t.Helper()

	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)

	assert.Equal(t, prefix, parts[0])
	assert.Equal(t, time.Now().Format("20060102"), parts[1])

	require.Len(t, parts[2], 4)
	for _, c := range parts[2] {
		assert.Contains(t, suffixAlphabet, string(c))
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	number, err := lib.GenerateOrderNumber()
	require.NoError(t, err)
	assertNumberFormat(t, number, "TU")
}

func TestGenerateQuoteNumber(t *testing.T) {
	number, err := lib.GenerateQuoteNumber()
	require.NoError(t, err)
	assertNumberFormat(t, number, "COT")
}

func TestGenerateOrderNumberFormatIsStable(t *testing.T) {
	for i := 0; i < 50; i++ {
		number, err := lib.GenerateOrderNumber()
		require.NoError(t, err)
		assertNumberFormat(t, number, "TU")
	}
}
