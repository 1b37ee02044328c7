package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
)

// LocalFSDriver reads the dataset from a file on disk.
type LocalFSDriver struct {
	Path string
}

func NewLocalFSDriver(path string) (*LocalFSDriver, error) {
	if path == "" {
		return nil, fmt.Errorf("dataset path cannot be empty")
	}
	return &LocalFSDriver{Path: path}, nil
}

func (d *LocalFSDriver) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	return f, nil
}
