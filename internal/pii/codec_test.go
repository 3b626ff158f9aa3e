package pii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestCodecRoundTrip(t *testing.T) {
	c, err := NewCodec(testKey)
	require.NoError(t, err)

	for _, plaintext := range []string{"someone@example.org", "", "пример@example.org"} {
		enc, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, enc)

		dec, err := c.Decrypt(enc)
		require.NoError(t, err)
		assert.Equal(t, plaintext, dec)
	}
}

func TestCodecFreshNonce(t *testing.T) {
	c, err := NewCodec(testKey)
	require.NoError(t, err)

	a, err := c.Encrypt("same input")
	require.NoError(t, err)
	b, err := c.Encrypt("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "two encryptions of one value must differ")
}

func TestCodecWrongKey(t *testing.T) {
	c1, err := NewCodec(testKey)
	require.NoError(t, err)
	c2, err := NewCodec("fedcba9876543210fedcba9876543210")
	require.NoError(t, err)

	enc, err := c1.Encrypt("secret@example.org")
	require.NoError(t, err)
	_, err = c2.Decrypt(enc)
	assert.Error(t, err)
}

func TestCodecBadInput(t *testing.T) {
	c, err := NewCodec(testKey)
	require.NoError(t, err)

	_, err = c.Decrypt("not hex at all")
	assert.Error(t, err)

	_, err = c.Decrypt("abcd")
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestNewCodecKeyLength(t *testing.T) {
	for _, key := range []string{"", "short", "0123456789abcdef0"} {
		_, err := NewCodec(key)
		assert.Error(t, err, "key %q should be rejected", key)
	}
	for _, key := range []string{"0123456789abcdef", "0123456789abcdef01234567", testKey} {
		_, err := NewCodec(key)
		assert.NoError(t, err)
	}
}
