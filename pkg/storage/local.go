package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forkful/forkful/config"
)

// localDisk is the local-filesystem driver.
type localDisk struct {
	root string
}

func newLocalDisk() *localDisk {
	root := config.StorageLocalRoot()
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &localDisk{root: root}
}

func (d *localDisk) abs(key string) string {
	return filepath.Join(d.root, filepath.FromSlash(key))
}

func (d *localDisk) Put(_ context.Context, key string, content []byte) error {
	full := d.abs(key)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return fmt.Errorf("storage/local: write %s: %w", key, err)
	}
	return nil
}

func (d *localDisk) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(d.abs(key))
	if err != nil {
		return nil, fmt.Errorf("storage/local: get %s: %w", key, err)
	}
	return data, nil
}

func (d *localDisk) Exists(_ context.Context, key string) bool {
	_, err := os.Stat(d.abs(key))
	return err == nil
}

func (d *localDisk) Delete(_ context.Context, key string) error {
	err := os.Remove(d.abs(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage/local: delete %s: %w", key, err)
	}
	return nil
}
