// Package storage abstracts where menu-item images live.
//
// Two drivers are available:
//   - "local" — local filesystem (default)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2)
//
// Boot once at startup with Connect, then:
//
//	storage.Default().Put(ctx, "menu-items/42.jpg", data)
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/forkful/forkful/config"
	"github.com/forkful/forkful/pkg/logger"
)

// Disk is the driver interface.
type Disk interface {
	// Put writes content to key, creating parents as needed.
	Put(ctx context.Context, key string, content []byte) error

	// Get returns the full content stored at key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Exists reports whether an object exists at key.
	Exists(ctx context.Context, key string) bool

	// Delete removes an object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager. The local disk is always available;
// the S3 disk is added only when S3_BUCKET is configured.
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDefault()
	disks["local"] = newLocalDisk()

	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		defaultDisk = "local"
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) (Disk, error) {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", name)
	}
	return d, nil
}

// Default returns the disk named by STORAGE_DISK.
func Default() Disk {
	managerMu.RLock()
	defer managerMu.RUnlock()
	return disks[defaultDisk]
}
