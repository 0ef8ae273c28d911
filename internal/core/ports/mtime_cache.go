package ports

// MtimeCache tracks the last modification time seen for each processed file.
//
//go:generate mockgen -source=mtime_cache.go -destination=mocks/mock_mtime_cache.go -package=mocks
type MtimeCache interface {
	// IsStale reports whether mtime differs from the recorded value for path.
	// Paths without an entry compare against zero.
	IsStale(path string, mtime float64) bool

	// Record stores mtime as the current value for path.
	Record(path string, mtime float64)

	// Save atomically replaces the persisted snapshot with the in-memory state.
	Save() error

	// Len returns the number of entries.
	Len() int
}

// MtimeCacheStore opens mtime caches.
type MtimeCacheStore interface {
	// Load reads the snapshot at path. A missing snapshot yields an empty cache.
	Load(path string) (MtimeCache, error)
}
