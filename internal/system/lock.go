// Package system holds process level helpers.
package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"flauncher/internal/logger"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning is returned by AcquireLock when another instance holds
// the lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Lock is an exclusive advisory lock on a file.
type Lock struct {
	fl *flock.Flock
}

// AcquireLock takes the lock at path without blocking.
func AcquireLock(ctx context.Context, path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}
	logger.Trace(ctx, "Acquired lock '{{_File_}}%s{{|-|}}'", path)
	return &Lock{fl: fl}, nil
}

// Release unlocks the lock. The file stays on disk so every instance locks
// the same inode. It is safe to call on nil.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
