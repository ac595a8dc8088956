package source

import (
	"context"
	"fmt"
	"os"
)

// File reads the corpus from a path on disk each time it is asked.
type File struct {
	Path string
}

func NewFile(path string) File {
	return File{Path: path}
}

func (f File) ReadCorpus(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read corpus %s: %w", f.Path, err)
	}
	return string(data), nil
}
