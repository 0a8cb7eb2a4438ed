package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fadedpez/tucoblackjack/internal/types"
	"github.com/fadedpez/tucoblackjack/pkg/storage"
)

// Storage implements storage.Store on top of a JSON document on disk
type Storage struct {
	path    string
	mu      sync.RWMutex
	doc     map[string]interface{}
	options *storage.Options
}

var _ storage.Store = (*Storage)(nil)

// New loads the document at options.Path. A missing file is seeded from
// storage.DefaultDocument when options.SeedDefaults is set; otherwise it, like
// a malformed document, is returned as a *types.GameError.
func New(options *storage.Options) (*Storage, error) {
	if options == nil {
		options = storage.NewOptions()
	}

	s := &Storage{
		path:    options.Path,
		options: options,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the file backing the store
func (s *Storage) Path() string {
	return s.path
}

// Get returns the value at the path and whether it exists
func (s *Storage) Get(keys ...string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.get(keys)
}

// Int returns the value at the path as an int
func (s *Storage) Int(def int, keys ...string) int {
	value, ok := s.Get(keys...)
	if !ok {
		return def
	}
	if n, ok := toInt(value); ok {
		return n
	}
	return def
}

// Float returns the value at the path as a float64
func (s *Storage) Float(def float64, keys ...string) float64 {
	value, ok := s.Get(keys...)
	if !ok {
		return def
	}
	if f, ok := toFloat(value); ok {
		return f
	}
	return def
}

// String returns the value at the path as a string
func (s *Storage) String(def string, keys ...string) string {
	value, ok := s.Get(keys...)
	if !ok {
		return def
	}
	if str, ok := value.(string); ok {
		return str
	}
	return def
}

// Set writes value at the path, creating intermediate objects as needed
func (s *Storage) Set(value interface{}, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(value, keys)
}

// UpdateStats adds increment to stats.<name> and flushes to disk
func (s *Storage) UpdateStats(name string, increment int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := 0
	if value, ok := s.get([]string{"stats", name}); ok {
		if n, ok := toInt(value); ok {
			current = n
		}
	}

	if err := s.set(current+increment, []string{"stats", name}); err != nil {
		return err
	}
	return s.save()
}

// Save flushes the document to disk
func (s *Storage) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.save()
}

// Helper functions

func (s *Storage) get(keys []string) (interface{}, bool) {
	var current interface{} = s.doc
	for _, key := range keys {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = node[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func (s *Storage) set(value interface{}, keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("set: %w: empty path", storage.ErrKeyNotFound)
	}

	node := s.doc
	for i, key := range keys[:len(keys)-1] {
		next, exists := node[key]
		if !exists {
			child := make(map[string]interface{})
			node[key] = child
			node = child
			continue
		}
		child, ok := next.(map[string]interface{})
		if !ok {
			return fmt.Errorf("set %s: %w", strings.Join(keys[:i+1], "."), storage.ErrNotAMap)
		}
		node = child
	}
	node[keys[len(keys)-1]] = value
	return nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if !s.options.SeedDefaults {
			return types.WrapError(types.ErrConfigMissing, fmt.Sprintf("config file %s does not exist", s.path), err)
		}
		s.doc = storage.DefaultDocument()
		if err := s.save(); err != nil {
			return types.WrapError(types.ErrStorageError, "failed to seed default config", err)
		}
		return nil
	}
	if err != nil {
		return types.WrapError(types.ErrStorageError, fmt.Sprintf("failed to read %s", s.path), err)
	}

	doc := make(map[string]interface{})
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.WrapError(types.ErrConfigInvalid, fmt.Sprintf("malformed config file %s", s.path), err)
	}
	s.doc = doc
	return nil
}

func (s *Storage) save() error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Marshal and save
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0, false
			}
			return int(f), true
		}
		return int(n), true
	}
	return 0, false
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
