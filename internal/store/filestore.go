package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"voice-catalog-go/internal/record"
)

// FileStore keeps one JSON file per session under a data directory,
// named after the session id. A single mutex serializes the
// read-modify-write cycles; per the concurrency model that is all the
// pipeline requires.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) exists(id string) bool {
	_, err := os.Stat(s.path(id))
	return err == nil
}

func (s *FileStore) write(id string, rec record.BusinessRecord) error {
	data, err := json.MarshalIndent(record.NormalizeBusiness(rec), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", id, err)
	}
	if err := os.WriteFile(s.path(id), data, 0o644); err != nil {
		return fmt.Errorf("failed to write session %s: %w", id, err)
	}
	return nil
}

func (s *FileStore) read(id string) (record.BusinessRecord, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return record.BusinessRecord{}, ErrNotFound
		}
		return record.BusinessRecord{}, fmt.Errorf("failed to read session %s: %w", id, err)
	}
	var rec record.BusinessRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return record.BusinessRecord{}, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return record.NormalizeBusiness(rec), nil
}

func (s *FileStore) Create(rec record.BusinessRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := newSessionID(time.Now(), s.exists)
	if err := s.write(id, rec); err != nil {
		return "", err
	}
	return id, nil
}

func (s *FileStore) Load(id string) (record.BusinessRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(id)
}

func (s *FileStore) AppendProducts(id string, products []record.ProductRecord) (record.BusinessRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read(id)
	if err != nil {
		return record.BusinessRecord{}, err
	}
	// Append, don't replace: phase-1 products stay in front.
	rec.Products = append(rec.Products, products...)
	if err := s.write(id, rec); err != nil {
		return record.BusinessRecord{}, err
	}
	return rec, nil
}

func (s *FileStore) Replace(id string, rec record.BusinessRecord) (record.BusinessRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists(id) {
		return record.BusinessRecord{}, ErrNotFound
	}
	normalized := record.NormalizeBusiness(rec)
	if err := s.write(id, normalized); err != nil {
		return record.BusinessRecord{}, err
	}
	return normalized, nil
}

func (s *FileStore) List() ([]Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	sessions := make([]Session, 0, len(names))
	for _, name := range names {
		id := strings.TrimSuffix(name, ".json")
		rec, err := s.read(id)
		if err != nil {
			// unreadable file, skip it rather than failing the listing
			continue
		}
		sessions = append(sessions, Session{ID: id, Record: rec})
	}
	return sessions, nil
}

func (s *FileStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists(id) {
		return false, nil
	}
	if err := os.Remove(s.path(id)); err != nil {
		return false, fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return true, nil
}
