// Package snapshot persists parsed mod databases as JSON files so process
// restarts skip the masterlist download and parse.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/loadstone/loadstone/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.SnapshotStore on a directory of JSON files, one per
// (game, version) pair.
type Store struct {
	dir string
	mu  sync.Mutex
}

// envelope wraps the snapshot payload with an integrity checksum. A
// checksum mismatch is treated as a cache miss, not an error; the snapshot
// is a best-effort optimization.
type envelope struct {
	Game     string          `json:"game"`
	Version  string          `json:"version"`
	Checksum string          `json:"checksum"`
	Records  json.RawMessage `json:"records"`
}

// NewStore creates a snapshot store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create snapshot directory")
	}
	return &Store{dir: filepath.Clean(dir)}, nil
}

func (s *Store) path(game domain.Game, version string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", game, version))
}

// Load reads the snapshot for a (game, version) pair. Missing files,
// malformed JSON and checksum mismatches all report a miss.
func (s *Store) Load(game domain.Game, version string) (*domain.Database, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is derived from validated game and version tokens
	data, err := os.ReadFile(s.path(game, version))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.Wrap(err, "failed to read snapshot")
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false, nil
	}
	if env.Checksum != checksum(env.Records) {
		return nil, false, nil
	}

	var flat map[string]*domain.ModRecord
	if err := json.Unmarshal(env.Records, &flat); err != nil {
		return nil, false, nil
	}

	db, err := restore(game, version, flat)
	if err != nil {
		return nil, false, err
	}
	return db, true, nil
}

// Store writes the database as a flat clean_name -> record object. Alias
// keys serialize the same record under a second name; on load they are
// recognized by key != record.clean_name and rebuilt as aliases, so
// aliasing groups survive the round trip.
func (s *Store) Store(db *domain.Database) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(flatten(db))
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot")
	}

	env := envelope{
		Game:     db.Game().String(),
		Version:  db.Version(),
		Checksum: checksum(payload),
		Records:  payload,
	}
	// The checksum covers the payload bytes exactly as they are read back,
	// so the envelope must embed them verbatim; an indenting encoder would
	// rewrite the raw message and invalidate every snapshot on load.
	data, err := json.Marshal(env)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot envelope")
	}

	//nolint:gosec // Path is derived from validated game and version tokens
	if err := os.WriteFile(s.path(db.Game(), db.Version()), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write snapshot")
	}
	return nil
}

// Delete removes the snapshot for a (game, version) pair, if present.
func (s *Store) Delete(game domain.Game, version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(game, version)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to delete snapshot")
	}
	return nil
}

func flatten(db *domain.Database) map[string]*domain.ModRecord {
	flat := make(map[string]*domain.ModRecord, db.Len())
	for _, key := range db.CanonicalKeys() {
		rec, _ := db.Get(key)
		flat[key] = rec
	}
	for alias, canonical := range db.Aliases() {
		rec, _ := db.Get(canonical)
		flat[alias] = rec
	}
	return flat
}

func restore(game domain.Game, version string, flat map[string]*domain.ModRecord) (*domain.Database, error) {
	db := domain.NewDatabase(game, version)
	for key, rec := range flat {
		if key == rec.CleanName {
			db.Upsert(rec)
		}
	}
	for key, rec := range flat {
		if key != rec.CleanName {
			if err := db.AddAlias(key, rec.CleanName); err != nil {
				return nil, err
			}
		}
	}
	return db, nil
}

// checksum fingerprints the payload bytes. encoding/json emits map keys in
// sorted order, so equal databases produce equal checksums.
func checksum(payload []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(payload))
}

var _ ports.SnapshotStore = (*Store)(nil)
