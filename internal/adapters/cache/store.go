// Package cache implements the modification-time cache used by the quantizer.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/spritekit/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Store implements ports.MtimeCacheStore using a protobuf snapshot on disk.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the snapshot at path.
func (s *Store) Load(path string) (ports.MtimeCache, error) {
	return Open(path)
}

// MtimeCache is an in-memory path to mtime mapping backed by a single snapshot file.
// It is owned by one pipeline invocation and is not safe for concurrent use.
type MtimeCache struct {
	path    string
	entries map[string]float64
}

// Open reads the snapshot at path. A missing file yields an empty cache.
func Open(path string) (*MtimeCache, error) {
	c := &MtimeCache{
		path:    path,
		entries: make(map[string]float64),
	}

	//nolint:gosec // Path comes from the project configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	var snapshot structpb.Struct
	if err := proto.Unmarshal(data, &snapshot); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error()), "path", path)
	}

	for key, value := range snapshot.GetFields() {
		number, ok := value.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, zerr.With(zerr.With(domain.ErrCacheDecodeFailed, "path", path), "entry", key)
		}
		c.entries[key] = number.NumberValue
	}

	return c, nil
}

// Path returns the location of the snapshot file.
func (c *MtimeCache) Path() string {
	return c.path
}

// IsStale reports whether mtime differs from the recorded value for path.
func (c *MtimeCache) IsStale(path string, mtime float64) bool {
	return c.entries[path] != mtime
}

// Record stores mtime for path.
func (c *MtimeCache) Record(path string, mtime float64) {
	c.entries[path] = mtime
}

// Len returns the number of entries.
func (c *MtimeCache) Len() int {
	return len(c.entries)
}

// Save writes the snapshot to a temporary file next to the canonical path and
// renames it into place. Readers see either the previous snapshot or the new one.
func (c *MtimeCache) Save() error {
	snapshot := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(c.entries))}
	for key, mtime := range c.entries {
		snapshot.Fields[key] = structpb.NewNumberValue(mtime)
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(snapshot)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error())
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", c.path)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", tmpName)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", tmpName)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", c.path)
	}

	committed = true
	return nil
}
