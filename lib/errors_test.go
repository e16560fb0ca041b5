package lib_test

import (
	"errors"
	"fmt"
	"testing"
	"treeuniformes_server/lib"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapDBErrorUniqueViolation(t *testing.T) {
	err := lib.MapDBError(&pgconn.PgError{Code: "23505"})

	assert.ErrorIs(t, err, lib.ErrConflict)
	assert.True(t, lib.IsConflict(err))
	assert.False(t, lib.IsNotFound(err))
}

func TestMapDBErrorForeignKeyViolation(t *testing.T) {
	err := lib.MapDBError(&pgconn.PgError{Code: "23503"})

	assert.ErrorIs(t, err, lib.ErrConflict)
}

func TestMapDBErrorPassesThroughUnknownErrors(t *testing.T) {
	boom := errors.New("connection reset")

	assert.Equal(t, boom, lib.MapDBError(boom))
	assert.NoError(t, lib.MapDBError(nil))
}

func TestIsConflictSeesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("insert variant: %w", lib.ErrConflict)

	assert.True(t, lib.IsConflict(wrapped))
	assert.False(t, lib.IsNotFound(wrapped))
}
