package tokenstore

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	folderPerm = 0o700
	filePerm   = 0o600
)

// FileStore persists the token as a single file in a profile scoped folder.
// The file survives restarts of the client.
type FileStore struct {
	mu         sync.RWMutex
	path       string
	passphrase string
}

var _ Store = (*FileStore)(nil)

type FileStoreOption func(*FileStore)

// WithPassphrase seals the stored token so it is unreadable without the passphrase
func WithPassphrase(passphrase string) FileStoreOption {
	return func(s *FileStore) {
		s.passphrase = passphrase
	}
}

// NewFileStore creates a store that keeps the token under StorageKey inside folder.
// The folder is created lazily on the first Set.
func NewFileStore(folder string, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		path: filepath.Join(folder, StorageKey),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the location of the token file
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", s.path).Msg("Token store unavailable, treating token as absent")
		}
		return "", false
	}

	if s.passphrase != "" {
		plain, ok := open(s.passphrase, content)
		if !ok {
			log.Warn().Str("path", s.path).Msg("Stored token could not be unsealed, treating token as absent")
			return "", false
		}
		content = plain
	}

	token := string(bytes.TrimSpace(content))
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *FileStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content := []byte(token)
	if s.passphrase != "" {
		sealed, err := seal(s.passphrase, content)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to seal token, not persisted")
			return
		}
		content = sealed
	}

	if err := writeFileAtomic(s.path, content); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Failed to persist token")
	}
}

func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("path", s.path).Msg("Failed to clear token")
	}
}

func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, folderPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+StorageKey+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
