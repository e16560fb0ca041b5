package lib_test

import (
	"testing"
	"treeuniformes_server/lib"

	"github.com/stretchr/testify/assert"
)

func TestFormatMXN(t *testing.T) {
	assert.Equal(t, "$0.00 MXN", lib.FormatMXN(0))
	assert.Equal(t, "$0.01 MXN", lib.FormatMXN(1))
	assert.Equal(t, "$1.00 MXN", lib.FormatMXN(100))
	assert.Equal(t, "$374.00 MXN", lib.FormatMXN(37400))
	assert.Equal(t, "$1250.50 MXN", lib.FormatMXN(125050))
}
