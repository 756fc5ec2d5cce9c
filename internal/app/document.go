package app

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/dshills/vtext/internal/docfile"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/buffer"
)

// Document tracks the file behind the engine content.
type Document struct {
	// Path is the file the document saves to. Empty for a scratch document.
	Path string

	// ID identifies the document across saves of the rich format.
	ID string

	savedRevision buffer.RevisionID
	savedFlow     engine.Flow
}

// openDocument loads path into e. A path that does not exist yet opens an
// empty document that will be created on save.
func openDocument(path string, e *engine.Engine) (*Document, error) {
	doc := &Document{Path: path, ID: docfile.NewID()}
	if path != "" {
		id, err := docfile.Load(path, e)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, NewOperationError("open", path, err)
		default:
			doc.ID = id
		}
	}
	doc.markSaved(e)
	return doc, nil
}

// Name returns the base name of the path, or "" for a scratch document.
func (d *Document) Name() string {
	if d.Path == "" {
		return ""
	}
	return filepath.Base(d.Path)
}

// IsScratch reports whether the document has no file.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// IsModified reports whether e differs from the last load or save. A flow
// change counts because the rich format stores it.
func (d *Document) IsModified(e *engine.Engine) bool {
	return e.RevisionID() != d.savedRevision || e.Flow() != d.savedFlow
}

func (d *Document) markSaved(e *engine.Engine) {
	d.savedRevision = e.RevisionID()
	d.savedFlow = e.Flow()
}

// save writes e to path and makes path the document file.
func (d *Document) save(path string, e *engine.Engine) error {
	if path == "" {
		return ErrNoPath
	}
	if err := docfile.Save(path, e, d.ID); err != nil {
		return NewOperationError("save", path, err)
	}
	d.Path = path
	d.markSaved(e)
	return nil
}
