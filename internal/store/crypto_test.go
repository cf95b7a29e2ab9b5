package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceID_StableAcrossCalls(t *testing.T) {
	dir := t.TempDir()

	first, err := deviceID(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := deviceID(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	aead, err := newAEAD(t.TempDir())
	require.NoError(t, err)

	plain := []byte(`{"token":"tok","user":{"name":"Ada"}}`)
	blob, err := seal(aead, plain)
	require.NoError(t, err)
	assert.NotEqual(t, plain, blob)

	got, err := open(aead, blob)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestOpen_RejectsTamperedBlob(t *testing.T) {
	aead, err := newAEAD(t.TempDir())
	require.NoError(t, err)

	blob, err := seal(aead, []byte("payload"))
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xff

	_, err = open(aead, blob)
	assert.Error(t, err)
}

func TestOpen_RejectsShortBlob(t *testing.T) {
	aead, err := newAEAD(t.TempDir())
	require.NoError(t, err)

	_, err = open(aead, []byte("short"))
	assert.Error(t, err)
}

func TestNewAEAD_DifferentDevicesDifferentKeys(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	aeadA, err := newAEAD(dirA)
	require.NoError(t, err)
	aeadB, err := newAEAD(dirB)
	require.NoError(t, err)

	blob, err := seal(aeadA, []byte("secret"))
	require.NoError(t, err)

	_, err = open(aeadB, blob)
	assert.Error(t, err, "a credential file must not decrypt on another device")

	// Same directory re-derives the same key.
	aeadA2, err := newAEAD(dirA)
	require.NoError(t, err)
	got, err := open(aeadA2, blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), got)
}
