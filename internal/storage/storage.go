// Package storage provides the synchronous string-keyed persistence slots
// the stores write their state to. Each slot holds one serialized JSON
// value under a fixed key; the stores are the only writers.
package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string-keyed slot facility. A slot is either present with a
// value or absent; Get on an absent key returns ErrNotFound. Implementations
// must be safe for concurrent use.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
