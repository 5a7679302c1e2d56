package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/paths"
)

// lockFileName sits next to the rc file in the home directory.
const lockFileName = ".cmdtreerc.lock"

var (
	lockTimeout  = 5 * time.Second
	lockStaleAge = 30 * time.Second
	lockRetry    = 50 * time.Millisecond
)

// ErrLockTimeout is returned when another process held the config lock for
// longer than the lock timeout.
var ErrLockTimeout = errors.New("config: lock timeout")

// WithLock runs fn while holding an exclusive lock file next to the config.
// A shell and a one-shot `cmdtree config set` may edit the file concurrently.
func WithLock(fn func() error) error {
	rc, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	l := fileLock{path: filepath.Join(filepath.Dir(rc), lockFileName)}
	if err := l.acquire(time.Now().Add(lockTimeout)); err != nil {
		return err
	}
	defer l.release()

	return fn()
}

type fileLock struct {
	path string
	f    *os.File
}

func (l *fileLock) acquire(deadline time.Time) error {
	for {
		l.breakIfStale()

		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			fmt.Fprintf(f, "%d", os.Getpid())
			l.f = f
			return nil
		}
		if !errors.Is(err, os.ErrExist) {
			return err
		}
		if time.Now().After(deadline) {
			return ErrLockTimeout
		}
		time.Sleep(lockRetry)
	}
}

// breakIfStale removes a lock left behind by a process that died holding it.
func (l *fileLock) breakIfStale() {
	info, err := os.Stat(l.path)
	if err != nil || time.Since(info.ModTime()) <= lockStaleAge {
		return
	}
	log.Warn("config: removing stale lock %s", l.path)
	_ = os.Remove(l.path)
}

func (l *fileLock) release() {
	if l.f != nil {
		_ = l.f.Close()
	}
	_ = os.Remove(l.path)
}
