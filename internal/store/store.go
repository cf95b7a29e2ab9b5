// Package store persists the session credential on disk. The token and the
// serialized user travel together in a single encrypted record so a crash
// between two writes can never leave a user without a token or vice versa.
package store

import (
	"crypto/cipher"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const credentialFile = "credentials.bin"

// Credential is the persisted session record. A credential is valid only by
// token presence: an empty Token means the record is empty, whatever else it
// carries.
type Credential struct {
	// Token is the bearer token issued by the backend.
	Token string `json:"token,omitempty"`
	// User is the backend's user object, kept verbatim.
	User json.RawMessage `json:"user,omitempty"`
}

// IsZero reports whether the credential carries no session.
func (c Credential) IsZero() bool { return c.Token == "" }

// FileStore keeps the credential record in an encrypted file under a data
// directory. All methods are safe for concurrent use.
type FileStore struct {
	dir  string
	aead cipher.AEAD
	log  *zap.Logger

	mu sync.Mutex
}

// New opens (or initializes) the credential store under dir. The directory is
// created if missing, along with the per-install key material.
func New(dir string, logger *zap.Logger) (*FileStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	aead, err := newAEAD(dir)
	if err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, aead: aead, log: logger}, nil
}

func (s *FileStore) path() string { return filepath.Join(s.dir, credentialFile) }

// Credentials reads the stored record. A missing file yields a zero
// credential, never an error. An unreadable or undecryptable file is treated
// the same way, logged once, so a corrupted store degrades to an
// unauthenticated session instead of wedging the client.
func (s *FileStore) Credentials() (Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() (Credential, error) {
	blob, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return Credential{}, nil
		}
		return Credential{}, fmt.Errorf("read credentials: %w", err)
	}
	plain, err := open(s.aead, blob)
	if err != nil {
		s.log.Warn("discarding unreadable credential file", zap.Error(err))
		return Credential{}, nil
	}
	var c Credential
	if err := json.Unmarshal(plain, &c); err != nil {
		s.log.Warn("discarding malformed credential file", zap.Error(err))
		return Credential{}, nil
	}
	// No token, no session: drop a user left behind by a partial legacy write.
	if c.Token == "" {
		return Credential{}, nil
	}
	return c, nil
}

// SetCredentials overwrites the stored record atomically.
func (s *FileStore) SetCredentials(c Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(c)
}

func (s *FileStore) save(c Credential) error {
	plain, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	blob, err := seal(s.aead, plain)
	if err != nil {
		return err
	}
	// Write-then-rename keeps the record whole even if the process dies
	// mid-write.
	tmp, err := os.CreateTemp(s.dir, credentialFile+".*")
	if err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// SetUser replaces only the user half of the record, leaving the token as is.
// With no stored token the call is a no-op: a user without a token would be an
// invalid record.
func (s *FileStore) SetUser(user json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.load()
	if err != nil {
		return err
	}
	if c.Token == "" {
		return nil
	}
	c.User = append(json.RawMessage(nil), user...)
	return s.save(c)
}

// Clear removes the stored record. Removing an absent record is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// Token reads the current token straight from disk. The request gateway calls
// this immediately before every request, so a token rotated by another
// operation is always the one sent.
func (s *FileStore) Token() string {
	c, err := s.Credentials()
	if err != nil {
		s.log.Warn("reading token", zap.Error(err))
		return ""
	}
	return c.Token
}
