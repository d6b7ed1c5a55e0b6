package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Store is the asset-storage collaborator. Save persists the given bytes
// under the prefix and returns an opaque reference that resolves to the
// stored asset.
type Store interface {
	Save(ctx context.Context, prefix, filename string, data []byte) (string, error)
}

// DiskStore keeps assets on the local filesystem under a root directory.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create asset root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes data as <prefix>/<unixstamp>_<uuid8>_<filename> and returns
// that relative path as the asset reference. The uuid fragment keeps
// same-second uploads of equally named files from colliding.
func (s *DiskStore) Save(ctx context.Context, prefix, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create asset dir: %w", err)
	}

	name := fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.New().String()[:8], filepath.Base(filename))
	ref := filepath.Join(prefix, name)

	if err := os.WriteFile(filepath.Join(s.root, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("write asset: %w", err)
	}
	return ref, nil
}
