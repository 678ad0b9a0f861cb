package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/learnhub/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	t.Run("ShortKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", "short_key")
		defer os.Unsetenv("CRYPTO_KEY")

		assert.Panics(t, config.InitCrypto)
	})

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)
		defer os.Unsetenv("CRYPTO_KEY")

		assert.NotPanics(t, config.InitCrypto)
		assert.NotNil(t, config.Crypto)
	})
}

func TestEncryptDecrypt(t *testing.T) {
	codec, err := config.NewCodec(testKey)
	require.NoError(t, err)

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "secret test data"

		ciphertext, err := codec.Encrypt(plaintext)
		require.NoError(t, err)

		decrypted, err := codec.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)

		ciphertext2, err := codec.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, ciphertext, ciphertext2, "nonce must make each ciphertext unique")
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := codec.Encrypt("")
		require.NoError(t, err)

		decrypted, err := codec.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Empty(t, decrypted)
	})

	t.Run("Tampered", func(t *testing.T) {
		ciphertext, err := codec.Encrypt("CERT-1")
		require.NoError(t, err)

		tampered := []byte(ciphertext)
		mid := len(tampered) / 2
		if tampered[mid] == 'A' {
			tampered[mid] = 'B'
		} else {
			tampered[mid] = 'A'
		}

		_, err = codec.Decrypt(string(tampered))
		assert.ErrorIs(t, err, config.ErrMalformedToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := codec.Decrypt("not base64 !!")
		assert.ErrorIs(t, err, config.ErrMalformedToken)

		_, err = codec.Decrypt("abc")
		assert.ErrorIs(t, err, config.ErrMalformedToken)
	})

	t.Run("OtherKey", func(t *testing.T) {
		other, err := config.NewCodec("abcdefghijabcdefghijabcdefghij12")
		require.NoError(t, err)

		ciphertext, err := codec.Encrypt("CERT-1")
		require.NoError(t, err)

		_, err = other.Decrypt(ciphertext)
		assert.ErrorIs(t, err, config.ErrMalformedToken)
	})
}
