package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// diskStore keeps blobs as flat files under a root directory.
type diskStore struct {
	root string
}

func newDiskStore(root string) (*diskStore, error) {
	if root == "" {
		root = "public/"
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("storage/disk: create root: %w", err)
	}
	return &diskStore{root: root}, nil
}

// path resolves a blob name inside the root. Base strips any directory
// component so a crafted name cannot escape the storage folder.
func (d *diskStore) path(name string) string {
	return filepath.Join(d.root, filepath.Base(name))
}

func (d *diskStore) Put(_ context.Context, name string, data []byte, _ string) error {
	if err := os.WriteFile(d.path(name), data, 0644); err != nil {
		return fmt.Errorf("storage/disk: put %s: %w", name, err)
	}
	return nil
}

func (d *diskStore) Get(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(d.path(name))
	if err != nil {
		return nil, fmt.Errorf("storage/disk: get %s: %w", name, err)
	}
	return data, nil
}

func (d *diskStore) Delete(_ context.Context, name string) error {
	err := os.Remove(d.path(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage/disk: delete %s: %w", name, err)
	}
	return nil
}

func (d *diskStore) Exists(_ context.Context, name string) bool {
	_, err := os.Stat(d.path(name))
	return err == nil
}

func (d *diskStore) URL(name string) string {
	return "/images/" + filepath.Base(name)
}
