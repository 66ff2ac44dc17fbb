package export

import (
	"fmt"
	"path/filepath"

	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/where"
)

// Emitter delivers an exported file somewhere the user can get it.
type Emitter interface {
	Emit(data []byte, filename string) error
}

// FileEmitter writes files into Dir.
type FileEmitter struct {
	Dir string
}

// NewFileEmitter writes into the configured export directory.
func NewFileEmitter() *FileEmitter {
	return &FileEmitter{Dir: where.Exports()}
}

// Path is where filename ends up.
func (f *FileEmitter) Path(filename string) string {
	return filepath.Join(f.Dir, filename)
}

func (f *FileEmitter) Emit(data []byte, filename string) error {
	if err := filesystem.API().MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}

	if err := filesystem.API().WriteFile(f.Path(filename), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	return nil
}

// Emit marshals doc and hands it to e under the document's filename.
func Emit(e Emitter, doc Document) (filename string, err error) {
	data, err := Marshal(doc)
	if err != nil {
		return "", err
	}

	filename = doc.Filename()
	if err := e.Emit(data, filename); err != nil {
		return "", err
	}

	return filename, nil
}
