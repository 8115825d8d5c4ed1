package progress

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrNotFound is returned by a Backend that holds no record yet.
var ErrNotFound = errors.New("progress record not found")

// Backend stores the single serialized progress record.
type Backend interface {
	// Read returns the stored record, or ErrNotFound if nothing was saved yet.
	Read() ([]byte, error)
	// Write replaces the stored record.
	Write(data []byte) error
}

// FileBackend keeps the record in one file on disk.
type FileBackend struct {
	Path string
}

// NewFileBackend creates a backend writing to path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{Path: path}
}

// Read reads the save file.
func (b *FileBackend) Read() ([]byte, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read progress file: %w", err)
	}
	return data, nil
}

// Write atomically replaces the save file.
func (b *FileBackend) Write(data []byte) error {
	if err := AtomicWriteFile(b.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write progress file: %w", err)
	}
	return nil
}

// MemoryBackend keeps the record in memory. Used by tests and throwaway sessions.
type MemoryBackend struct {
	mu     sync.Mutex
	data   []byte
	writes int
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Read returns a copy of the stored record.
func (b *MemoryBackend) Read() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), b.data...), nil
}

// Write stores a copy of data.
func (b *MemoryBackend) Write(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	b.writes++
	return nil
}

// Set seeds the stored record, e.g. with corrupt data in tests.
func (b *MemoryBackend) Set(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
}

// Writes returns how many times the record has been written.
func (b *MemoryBackend) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}
