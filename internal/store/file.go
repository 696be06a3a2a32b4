package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/popxauth/internal/common"
	"github.com/dmitrijs2005/popxauth/internal/logging"
)

// FileStore keeps each document as a JSON file inside a single directory.
// JSON keeps the documents self-describing: decoders ignore unknown fields
// and zero-default missing ones, so older documents survive format growth.
type FileStore struct {
	dir string
	log logging.Logger
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir. The directory must exist.
func NewFileStore(dir string, log logging.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads and decodes the named document. A missing file reads as
// absent. A file that cannot be decoded also reads as absent: the vault
// favors starting empty over refusing to start on a corrupt document.
func (s *FileStore) Load(ctx context.Context, name string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: read document %q: %v", common.ErrPersistence, name, err)
	}

	if err := json.Unmarshal(b, out); err != nil {
		s.log.Warn(ctx, "discarding undecodable document", "name", name, "error", err.Error())
		return false, nil
	}
	return true, nil
}

// Save writes the document via a temp file then rename, so a failed write
// never clobbers the previous contents.
func (s *FileStore) Save(ctx context.Context, name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode document %q: %v", common.ErrPersistence, name, err)
	}

	path := s.path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("%w: write document %q: %v", common.ErrPersistence, name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: replace document %q: %v", common.ErrPersistence, name, err)
	}
	return nil
}

// Delete removes the named document if it exists.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: delete document %q: %v", common.ErrPersistence, name, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
