package shader

import (
	"io/fs"
	"os"
)

// SourceReader reads the full text of a shader source.
type SourceReader interface {
	ReadSource(path string) (string, error)
}

// FileReader reads sources from the local filesystem.
type FileReader struct{}

func (FileReader) ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FSReader reads sources from an fs.FS, e.g. an embed.FS holding the
// default shaders.
type FSReader struct {
	FS fs.FS
}

func (r FSReader) ReadSource(path string) (string, error) {
	b, err := fs.ReadFile(r.FS, path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
