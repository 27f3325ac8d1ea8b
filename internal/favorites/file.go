package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore keeps favorites in a JSON file that is rewritten on every toggle
type FileStore struct {
	mu        sync.Mutex
	path      string
	favorites map[string]bool
}

type fileContents struct {
	Favorites []string `json:"favorites"`
}

// OpenFileStore loads path if it exists. A missing file is an empty store.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, favorites: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading favorites file: %w", err)
	}

	var contents fileContents
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("parsing favorites file %s: %w", path, err)
	}
	for _, id := range contents.Favorites {
		s.favorites[id] = true
	}
	return s, nil
}

func (s *FileStore) IsFavorite(ctx context.Context, buildingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[buildingID]
}

// ToggleFavorite flips and saves. If the save fails the in-memory state is
// reverted so the store never reports an unsaved change.
func (s *FileStore) ToggleFavorite(ctx context.Context, buildingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	was := s.favorites[buildingID]
	s.set(buildingID, !was)

	if err := s.save(); err != nil {
		s.set(buildingID, was)
		return was, err
	}
	return !was, nil
}

func (s *FileStore) set(id string, favorite bool) {
	if favorite {
		s.favorites[id] = true
	} else {
		delete(s.favorites, id)
	}
}

func (s *FileStore) save() error {
	ids := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.MarshalIndent(fileContents{Favorites: ids}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating favorites dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".favorites-*.json")
	if err != nil {
		return fmt.Errorf("creating temp favorites file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing favorites: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing favorites: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing favorites file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
