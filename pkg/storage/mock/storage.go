package mock

import (
	"github.com/stretchr/testify/mock"

	"github.com/fadedpez/tucoblackjack/pkg/storage"
)

// Store is a mock implementation of storage.Store
type Store struct {
	mock.Mock
}

var _ storage.Store = (*Store)(nil)

// New creates a mock store bound to t
func New(t mock.TestingT) *Store {
	s := &Store{}
	s.Test(t)
	return s
}

func (s *Store) Get(keys ...string) (interface{}, bool) {
	args := s.Called(keys)
	return args.Get(0), args.Bool(1)
}

func (s *Store) Int(def int, keys ...string) int {
	args := s.Called(def, keys)
	return args.Int(0)
}

func (s *Store) Float(def float64, keys ...string) float64 {
	args := s.Called(def, keys)
	return args.Get(0).(float64)
}

func (s *Store) String(def string, keys ...string) string {
	args := s.Called(def, keys)
	return args.String(0)
}

func (s *Store) Set(value interface{}, keys ...string) error {
	args := s.Called(value, keys)
	return args.Error(0)
}

func (s *Store) UpdateStats(name string, increment int) error {
	args := s.Called(name, increment)
	return args.Error(0)
}

func (s *Store) Save() error {
	args := s.Called()
	return args.Error(0)
}
