package bignum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	r := mustRadix(t, 1000)
	plain := "the quick brown fox  "
	require.LessOrEqual(t, len(plain), 30)

	ct, err := r.Encrypt(plain, 317)
	require.NoError(t, err)

	got := r.Decrypt(ct, 317)
	assert.Equal(t, "the quick brown fox", got)
}

func TestEncryptRejectsOverlongInput(t *testing.T) {
	r := mustRadix(t, 1000)
	long := make([]byte, 31)
	for i := range long {
		long[i] = 'x'
	}
	_, err := r.Encrypt(string(long), 317)
	require.Error(t, err)
}
