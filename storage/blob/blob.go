// Package blob stores opaque byte blobs under slash-separated keys. The
// simulator sweep keeps state checkpoints in it.
//
// Semantics mirror a minimal subset of S3 so the S3 adapter maps nearly
// 1:1 while the filesystem and memory adapters emulate them.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// Driver identifies a concrete backend.
type Driver string

const (
	DriverFilesystem Driver = "fs"
	DriverS3         Driver = "s3"
	DriverMemory     Driver = "memory"
)

var (
	// ErrNotFound indicates a missing key.
	ErrNotFound = errors.New("blob: not found")
	// ErrExists indicates Put on a key that is already stored.
	ErrExists = errors.New("blob: already exists")
	// ErrInvalidKey indicates an empty, absolute or escaping key.
	ErrInvalidKey = errors.New("blob: invalid key")
)

// Info describes a stored blob.
type Info struct {
	Key          string            `json:"key"`
	Size         int64             `json:"size_bytes"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	LastModified time.Time         `json:"last_modified"`
}

// Store is the blob backend contract.
type Store interface {
	// Put stores r at key with user metadata. It fails with ErrExists if
	// the key is taken.
	Put(ctx context.Context, key string, r io.Reader, meta map[string]string) (Info, error)
	// Get returns the blob and its metadata, or ErrNotFound.
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	// Delete removes key and reports whether it existed.
	Delete(ctx context.Context, key string) (bool, error)
	// List returns the blobs under prefix, sorted by key.
	List(ctx context.Context, prefix string) ([]Info, error)
	// Driver names the backend.
	Driver() Driver
}

// Open selects a backend by driver name. root is the directory for fs and
// is ignored otherwise; s3 reads its settings from cfg.
func Open(ctx context.Context, driver Driver, root string, cfg S3Config) (Store, error) {
	switch driver {
	case DriverFilesystem, "":
		return NewFilesystem(root)
	case DriverMemory:
		return NewMemory(), nil
	case DriverS3:
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("blob.Open: unknown driver %q", driver)
	}
}

// ReadAll fetches key into memory.
func ReadAll(ctx context.Context, s Store, key string) (Info, []byte, error) {
	info, rc, err := s.Get(ctx, key)
	if err != nil {
		return Info{}, nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return Info{}, nil, fmt.Errorf("blob.ReadAll(%s): %w", key, err)
	}

	return info, data, nil
}

// sanitizeKey rejects keys that are empty, absolute or escape the root.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty key: %w", ErrInvalidKey)
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "..") || strings.Contains(key, "\\") {
		return "", fmt.Errorf("key %q: %w", key, ErrInvalidKey)
	}

	return path.Clean(key), nil
}

func cloneMetadata(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
