package host

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/organizer"
)

// Document is a text buffer the organizer can be run against
type Document interface {
	// Path identifies the document; it also selects the grammar
	Path() string
	// Snapshot returns the current full text
	Snapshot() (string, error)
	// ApplyEdit substitutes the edit into the snapshot it was computed from
	ApplyEdit(edit organizer.EditResult) error
}

// BufferDocument is an in-memory document
type BufferDocument struct {
	path string

	mu   sync.Mutex
	text string
}

// NewBufferDocument creates an in-memory document holding text
func NewBufferDocument(path, text string) *BufferDocument {
	return &BufferDocument{path: path, text: text}
}

func (d *BufferDocument) Path() string {
	return d.path
}

func (d *BufferDocument) Snapshot() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text, nil
}

func (d *BufferDocument) ApplyEdit(edit organizer.EditResult) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if edit.Span.End > len(d.text) {
		return fmt.Errorf("%s: span [%d, %d) outside document of %d bytes",
			errors.ErrMsgFailedToApplyEdit, edit.Span.Start, edit.Span.End, len(d.text))
	}
	d.text = edit.Apply(d.text)
	return nil
}

// Text returns the current content
func (d *BufferDocument) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// FileDocument is a document backed by a file on disk. Edits are written
// atomically and refused if the file changed after the snapshot was taken.
type FileDocument struct {
	path string

	mu       sync.Mutex
	snapshot string
	loaded   bool
}

// NewFileDocument creates a document for the file at path
func NewFileDocument(path string) *FileDocument {
	return &FileDocument{path: path}
}

func (d *FileDocument) Path() string {
	return d.path
}

func (d *FileDocument) Snapshot() (string, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.snapshot = string(data)
	d.loaded = true
	return d.snapshot, nil
}

func (d *FileDocument) ApplyEdit(edit organizer.EditResult) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.loaded {
		return fmt.Errorf("%s: no snapshot taken", errors.ErrMsgFailedToApplyEdit)
	}

	info, err := os.Stat(d.path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToApplyEdit, err)
	}
	current, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	if string(current) != d.snapshot {
		return fmt.Errorf("%s: %s", errors.ErrMsgStaleSnapshot, d.path)
	}

	updated := edit.Apply(d.snapshot)
	if err := writeFileAtomic(d.path, []byte(updated), info.Mode().Perm()); err != nil {
		return err
	}
	d.snapshot = updated
	return nil
}

// Contents returns the last text read from or written to disk
func (d *FileDocument) Contents() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot
}

// writeFileAtomic writes into a temporary file next to path and renames it over path
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmpFile, err := os.CreateTemp(dir, "."+base+".jig-*")
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	tmpName := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	return nil
}
