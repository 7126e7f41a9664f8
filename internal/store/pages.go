// Package store persists pipeline artifacts on disk: raw API responses as
// JSON files and profile sets as CSV.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrei/stealth-scout/internal/types"
)

// Store writes artifacts under a single output directory.
type Store struct {
	root string
}

// NewStore returns a Store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", dir, err)
	}
	return &Store{root: dir}, nil
}

// Root returns the output directory path.
func (s *Store) Root() string {
	return s.root
}

// WritePage persists one raw search page verbatim as
// <root>/<query_type>_json/page_<n>.json.
func (s *Store) WritePage(qt types.QueryType, page int, raw []byte) error {
	dir := filepath.Join(s.root, string(qt)+"_json")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating page dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("page_%d.json", page))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing page file %s: %w", path, err)
	}
	return nil
}

// WriteDetail persists one raw profile-detail response verbatim as
// <root>/details/<profile_id>.json.
func (s *Store) WriteDetail(profileID string, raw []byte) error {
	dir := filepath.Join(s.root, "details")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating details dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, profileID+".json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing detail file %s: %w", path, err)
	}
	return nil
}
