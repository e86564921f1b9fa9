package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoRoundTrip(t *testing.T) {
	c, err := NewCrypto("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	sealed, err := c.Encrypt("a secret token")
	require.NoError(t, err)
	assert.NotEqual(t, "a secret token", sealed)

	plain, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "a secret token", plain)
}

func TestCryptoRejectsBadKeySize(t *testing.T) {
	_, err := NewCrypto("too-short")
	assert.Error(t, err)
}

func TestDecryptTamperedData(t *testing.T) {
	c, err := NewCrypto("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	_, err = c.Decrypt("bm90IHJlYWwgY2lwaGVydGV4dA==")
	assert.Error(t, err)
}

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret-pass"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
