// File: lixenwraith/ini/io.go
package ini

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileSystem is the storage surface the engine needs: read everything, stream
// lines, and replace a file's content as one unit.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
	ReadFile(name string) ([]byte, error)
	// WriteFile must leave name holding either the old or the new content.
	WriteFile(name string, data []byte) error
}

// OSFileSystem implements FileSystem against the local disk.
type OSFileSystem struct{}

func (OSFileSystem) Open(name string) (io.ReadCloser, error) { return os.Open(name) }
func (OSFileSystem) ReadFile(name string) ([]byte, error)    { return os.ReadFile(name) }
func (OSFileSystem) WriteFile(name string, data []byte) error {
	return atomicWriteFile(name, data)
}

var _ FileSystem = OSFileSystem{}

// Serialize renders the document as INI text: a header per section, one
// key=value line per entry, then a blank separator line.
func Serialize(doc *Document) []byte {
	var buf bytes.Buffer
	_, _ = WriteTo(&buf, doc)
	return buf.Bytes()
}

// WriteTo writes the INI text of doc to w.
func WriteTo(w io.Writer, doc *Document) (int64, error) {
	var buf bytes.Buffer
	for _, name := range doc.order {
		section := doc.sections[name]
		fmt.Fprintf(&buf, "[%s]\n", name)
		for _, key := range section.keys {
			fmt.Fprintf(&buf, "%s=%s\n", key, section.values[key])
		}
		buf.WriteString("\n")
	}
	return buf.WriteTo(w)
}

// atomicWriteFile writes data to a temp file in the target directory and
// renames it over path.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in '%s': %w", dir, err)
	}

	tempPath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename '%s' to '%s': %w", tempPath, path, err)
	}
	removed = true

	return nil
}
