package triage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// defaultStaleAfter is how old a leftover lock file must be before a new run
// reclaims it. Covers a worker that died without cleaning up.
const defaultStaleAfter = 300 * time.Second

// RunLock is a sentinel-file guard against two pipeline passes running at
// once, including passes from separate processes on the same host.
type RunLock struct {
	path       string
	staleAfter time.Duration
}

func NewRunLock(path string) *RunLock {
	if path == "" {
		path = filepath.Join(os.TempDir(), "inqboard_triage.lock")
	}
	return &RunLock{
		path:       path,
		staleAfter: defaultStaleAfter,
	}
}

// Acquire takes the lock. It returns false when another run holds a fresh
// lock; a lock older than staleAfter is treated as abandoned and reclaimed.
func (l *RunLock) Acquire() (bool, error) {
	if info, err := os.Stat(l.path); err == nil {
		if time.Since(info.ModTime()) <= l.staleAfter {
			return false, nil
		}
		if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
			return false, fmt.Errorf("failed to reclaim stale lock: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create lock file: %w", err)
	}
	f.Close()

	return true, nil
}

// Release removes the lock file. Safe to call when the lock was never
// acquired.
func (l *RunLock) Release() {
	_ = os.Remove(l.path)
}
