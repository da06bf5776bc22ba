package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Oliyy/karabiner-cli/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// MemoryFS returns an in-memory filesystem seeded with files, keyed by
// absolute path, along with the filesystem.FS view of it.
func MemoryFS(t *testing.T, files map[string]string) (afero.Fs, filesystem.FS) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return mem, filesystem.NewAferoFS(mem)
}

// WriteFile writes content to a real path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// FaultyFS wraps an FS and fails reads or writes of selected paths.
type FaultyFS struct {
	filesystem.FS

	mu        sync.Mutex
	failRead  map[string]error
	failWrite map[string]error
}

// NewFaultyFS wraps fsys. Until a failure is registered it behaves exactly
// like fsys.
func NewFaultyFS(fsys filesystem.FS) *FaultyFS {
	return &FaultyFS{
		FS:        fsys,
		failRead:  map[string]error{},
		failWrite: map[string]error{},
	}
}

// FailRead makes every ReadFile of path return err.
func (f *FaultyFS) FailRead(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failRead[path] = err
}

// FailWrite makes every WriteFile of path return err.
func (f *FaultyFS) FailWrite(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrite[path] = err
}

// Heal removes all failures registered for path.
func (f *FaultyFS) Heal(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.failRead, path)
	delete(f.failWrite, path)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	f.mu.Lock()
	err, ok := f.failRead[name]
	f.mu.Unlock()
	if ok {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f.mu.Lock()
	err, ok := f.failWrite[name]
	f.mu.Unlock()
	if ok {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}
