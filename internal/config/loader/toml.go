package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader decodes TOML configuration files.
type TOMLLoader struct {
	fs FileSystem
}

// NewTOMLLoader creates a TOML loader on the OS file system.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{fs: DefaultFS()}
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fsys FileSystem) *TOMLLoader {
	return &TOMLLoader{fs: fsys}
}

// LoadInto decodes the file at path into v, leaving fields absent from
// the file untouched. It reports false without error when the file does
// not exist.
func (l *TOMLLoader) LoadInto(path string, v any) (bool, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return true, l.decode(path, data, v)
}

// DecodeReader decodes TOML from r into v.
func (l *TOMLLoader) DecodeReader(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return l.decode("<reader>", data, v)
}

func (l *TOMLLoader) decode(source string, data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}

		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		var sm *toml.StrictMissingError
		if errors.As(err, &sm) {
			pe.Message = "unknown setting: " + sm.String()
			if len(sm.Errors) > 0 {
				pe.Line, pe.Column = sm.Errors[0].Position()
			}
		}
		return pe
	}
	return nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
