//
// Documentation Last Review: 10.02.2025
//

package loader

import (
	"io"
	"os"

	"golang.org/x/xerrors"
)

// fileLoader is a loader that is reading the key material from a file.
//
// - implements loader.Loader
type fileLoader struct {
	path string

	openFn func(path string) (*os.File, error)
}

// NewFileLoader creates a new loader that is using the file given in
// parameter.
func NewFileLoader(path string) Loader {
	return fileLoader{
		path:   path,
		openFn: os.Open,
	}
}

// Load implements loader.Loader. It reads the key material from the file if
// it exists, otherwise it returns an error.
func (l fileLoader) Load() ([]byte, error) {
	file, err := l.openFn(l.path)
	if err != nil {
		return nil, xerrors.Errorf("while opening file: %v", err)
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, xerrors.Errorf("while reading file: %v", err)
	}

	return data, nil
}
