package lib_test

import (
	"encoding/base64"
	"fmt"
	"testing"
	"treeuniformes_server/lib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestHash(memory, time uint32, threads uint8, salt, hash []byte) string {
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory, time, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

func TestDecodeArgon2Hash(t *testing.T) {
	salt := []byte("0123456789abcdef")
	hash := []byte("0123456789abcdef0123456789abcdef")

	parts, err := lib.DecodeArgon2Hash(encodeTestHash(65536, 1, 4, salt, hash))
	require.NoError(t, err)

	assert.Equal(t, uint32(65536), parts.Memory)
	assert.Equal(t, uint32(1), parts.Time)
	assert.Equal(t, uint8(4), parts.Threads)
	assert.Equal(t, uint32(32), parts.KeyLen)
	assert.Equal(t, salt, parts.Salt)
	assert.Equal(t, hash, parts.Hash)
}

func TestDecodeArgon2HashRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA",
	}

	for _, c := range cases {
		_, err := lib.DecodeArgon2Hash(c)
		assert.Error(t, err, "input: %q", c)
	}
}

func TestDecodeArgon2HashRejectsWrongVersion(t *testing.T) {
	encoded := "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"
	_, err := lib.DecodeArgon2Hash(encoded)
	assert.ErrorIs(t, err, lib.ErrIncompatibleVersion)
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, lib.SecureCompare([]byte("secret"), []byte("secret")))
	assert.False(t, lib.SecureCompare([]byte("secret"), []byte("Secret")))
	assert.False(t, lib.SecureCompare([]byte("secret"), []byte("secrets")))
	assert.True(t, lib.SecureCompare(nil, nil))
}
