package store

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const deviceFile = "device.id"

// scrypt cost parameters; the derived key only protects a local file, so the
// interactive-login cost from the scrypt paper is enough.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

var keySalt = []byte("tapdeck/credentials/v1")

// deviceID returns the per-install identifier, creating and persisting one on
// first use. The identifier never leaves the device; it only keys the
// credential file.
func deviceID(dir string) (string, error) {
	path := filepath.Join(dir, deviceFile)
	if b, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(b)); id != "" {
			return id, nil
		}
	}
	id := uuid.NewString()
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write device id: %w", err)
	}
	return id, nil
}

// newAEAD derives the at-rest cipher for the credential file from the
// per-install device identifier.
func newAEAD(dir string) (cipher.AEAD, error) {
	id, err := deviceID(dir)
	if err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(id), keySalt, scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create AEAD: %w", err)
	}
	return aead, nil
}

// seal encrypts plaintext with a fresh random nonce, prepending the nonce to
// the ciphertext.
func seal(aead cipher.AEAD, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// open decrypts a nonce-prefixed ciphertext produced by seal.
func open(aead cipher.AEAD, blob []byte) ([]byte, error) {
	if len(blob) < aead.NonceSize() {
		return nil, fmt.Errorf("credential file too short")
	}
	nonce, ct := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt credentials: %w", err)
	}
	return plain, nil
}
