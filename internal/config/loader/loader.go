// Package loader reads vtext configuration sources.
//
// Files are TOML and are read through a FileSystem so tests can supply an
// in-memory tree. Environment variables are collected as raw strings keyed
// by setting path; typing them is left to the config package.
package loader

import (
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// AferoFS adapts an afero file system.
type AferoFS struct {
	Fs afero.Fs
}

// ReadFile reads the entire file at path.
func (a AferoFS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.Fs, path)
}

// Stat returns file info for path.
func (a AferoFS) Stat(path string) (fs.FileInfo, error) {
	return a.Fs.Stat(path)
}

// MapFS is an in-memory FileSystem keyed by path.
type MapFS map[string]string

// ReadFile returns the contents stored at path.
func (m MapFS) ReadFile(path string) ([]byte, error) {
	return m.fs().ReadFile(path)
}

// Stat returns file info for path.
func (m MapFS) Stat(path string) (fs.FileInfo, error) {
	return m.fs().Stat(path)
}

func (m MapFS) fs() AferoFS {
	mem := afero.NewMemMapFs()
	for name, data := range m {
		// MemMapFs writes only fail on invalid paths.
		_ = afero.WriteFile(mem, name, []byte(data), 0o644)
	}
	return AferoFS{Fs: mem}
}
