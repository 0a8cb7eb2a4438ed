package storage

import (
	"errors"
)

// Common storage errors
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrNotAMap     = errors.New("intermediate key is not an object")
)

// Store is a durable document of nested keys holding game parameters, presets,
// palette and cumulative statistics. Paths are given as key segments, e.g.
// Get("difficulty", "hard", "decks").
type Store interface {
	// Get returns the value at the path and whether it exists
	Get(keys ...string) (interface{}, bool)

	// Int returns the value at the path as an int, or def when missing or not numeric
	Int(def int, keys ...string) int

	// Float returns the value at the path as a float64, or def when missing or not numeric
	Float(def float64, keys ...string) float64

	// String returns the value at the path as a string, or def when missing
	String(def string, keys ...string) string

	// Set writes value at the path, creating intermediate objects as needed.
	// It does not flush; call Save.
	Set(value interface{}, keys ...string) error

	// UpdateStats adds increment to stats.<name> and flushes immediately
	UpdateStats(name string, increment int) error

	// Save flushes the document to durable storage
	Save() error
}

// Options represents storage configuration options
type Options struct {
	Path string
	// SeedDefaults writes DefaultDocument when the file does not exist yet
	SeedDefaults bool
}

// NewOptions creates a new Options with default values
func NewOptions() *Options {
	return &Options{
		Path:         "data/game_config.json",
		SeedDefaults: true,
	}
}
