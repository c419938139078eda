package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local writes files under Dir; they are served by the static /uploads route.
type Local struct {
	Dir     string
	BaseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Put(_ context.Context, name, _ string, data []byte) (string, error) {
	name = filepath.Base(name)
	tmp, err := os.CreateTemp(l.Dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("problem with file upload: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("problem with file upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("problem with file upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(l.Dir, name)); err != nil {
		return "", fmt.Errorf("problem with file upload: %w", err)
	}
	return l.BaseURL + "/" + name, nil
}

func (l *Local) Delete(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(l.Dir, filepath.Base(name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
