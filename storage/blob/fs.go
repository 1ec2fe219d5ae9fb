package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const metaSuffix = ".meta"

// Filesystem is a Store on a local directory. Keys map to relative file
// paths under the root; a JSON sidecar (key + ".meta") holds the metadata.
// Writes go through a temporary file and a rename.
type Filesystem struct {
	root string
}

// NewFilesystem returns a store rooted at root, creating it if needed.
// An empty root means "./checkpoints".
func NewFilesystem(root string) (*Filesystem, error) {
	if root == "" {
		root = "./checkpoints"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("blob.NewFilesystem(%s): %w", root, err)
	}

	return &Filesystem{root: root}, nil
}

// Driver returns DriverFilesystem.
func (f *Filesystem) Driver() Driver { return DriverFilesystem }

type metaFile struct {
	Metadata  map[string]string `json:"metadata,omitempty"`
	Size      int64             `json:"size"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (f *Filesystem) pathFor(key string) (dataPath, metaPath string, err error) {
	k, err := sanitizeKey(key)
	if err != nil {
		return "", "", err
	}
	if strings.HasSuffix(k, metaSuffix) {
		return "", "", fmt.Errorf("key %q: reserved suffix: %w", key, ErrInvalidKey)
	}
	dataPath = filepath.Join(f.root, filepath.FromSlash(k))

	return dataPath, dataPath + metaSuffix, nil
}

// Put stores a new blob; errors if key exists.
func (f *Filesystem) Put(_ context.Context, key string, r io.Reader, meta map[string]string) (Info, error) {
	dataPath, metaPath, err := f.pathFor(key)
	if err != nil {
		return Info{}, err
	}
	if _, err := os.Stat(dataPath); err == nil {
		return Info{}, fmt.Errorf("blob.Filesystem.Put(%s): %w", key, ErrExists)
	}
	if err := os.MkdirAll(filepath.Dir(dataPath), 0o755); err != nil {
		return Info{}, fmt.Errorf("blob.Filesystem.Put(%s): %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dataPath), ".tmp-*")
	if err != nil {
		return Info{}, fmt.Errorf("blob.Filesystem.Put(%s): %w", key, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	size, err := io.Copy(tmp, r)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), dataPath)
	}
	if err != nil {
		return Info{}, fmt.Errorf("blob.Filesystem.Put(%s): %w", key, err)
	}

	mf := metaFile{Metadata: cloneMetadata(meta), Size: size, UpdatedAt: time.Now().UTC()}
	b, err := json.MarshalIndent(mf, "", "  ")
	if err == nil {
		err = os.WriteFile(metaPath, b, 0o644)
	}
	if err != nil {
		return Info{}, fmt.Errorf("blob.Filesystem.Put(%s): meta: %w", key, err)
	}

	return Info{Key: key, Size: size, Metadata: cloneMetadata(meta), LastModified: mf.UpdatedAt}, nil
}

// Get opens the blob file.
func (f *Filesystem) Get(_ context.Context, key string) (Info, io.ReadCloser, error) {
	dataPath, metaPath, err := f.pathFor(key)
	if err != nil {
		return Info{}, nil, err
	}
	file, err := os.Open(dataPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Info{}, nil, fmt.Errorf("blob.Filesystem.Get(%s): %w", key, ErrNotFound)
	}
	if err != nil {
		return Info{}, nil, fmt.Errorf("blob.Filesystem.Get(%s): %w", key, err)
	}
	mf, err := readMeta(metaPath)
	if err != nil {
		_ = file.Close()
		return Info{}, nil, fmt.Errorf("blob.Filesystem.Get(%s): %w", key, err)
	}

	return Info{Key: key, Size: mf.Size, Metadata: mf.Metadata, LastModified: mf.UpdatedAt}, file, nil
}

// Delete removes the blob and its sidecar.
func (f *Filesystem) Delete(_ context.Context, key string) (bool, error) {
	dataPath, metaPath, err := f.pathFor(key)
	if err != nil {
		return false, err
	}
	if err := os.Remove(dataPath); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("blob.Filesystem.Delete(%s): %w", key, err)
	}
	_ = os.Remove(metaPath)

	return true, nil
}

// List walks the root collecting sidecars whose key has prefix.
func (f *Filesystem) List(_ context.Context, prefix string) ([]Info, error) {
	var out []Info
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, metaSuffix) {
			return nil
		}
		rel, err := filepath.Rel(f.root, strings.TrimSuffix(p, metaSuffix))
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		mf, err := readMeta(p)
		if err != nil {
			return err
		}
		out = append(out, Info{Key: key, Size: mf.Size, Metadata: mf.Metadata, LastModified: mf.UpdatedAt})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("blob.Filesystem.List(%s): %w", prefix, err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out, nil
}

func readMeta(p string) (metaFile, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return metaFile{}, err
	}
	var mf metaFile
	if err := json.Unmarshal(b, &mf); err != nil {
		return metaFile{}, err
	}

	return mf, nil
}
