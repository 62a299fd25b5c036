package domain

import (
	"sort"
	"sync"

	"go.trai.ch/zerr"
)

// Database is the queryable mod database built from one masterlist
// (game, version) pair. Records are stored once under their canonical clean
// name; additional lookup names are kept in a separate alias index pointing
// at the canonical key, so a record is never reachable through two
// independently mutable map entries.
//
// A Database is mutable only while the parser assembles it. After that it is
// read-only; the lazily built compact index is guarded by a sync.Once.
type Database struct {
	game    Game
	version string

	records map[string]*ModRecord // canonical clean name -> record
	aliases map[string]string     // alias clean name -> canonical clean name

	compactOnce sync.Once
	compact     map[string]string // compact form -> lookup key
	lookupKeys  []string          // all keys (canonical + alias), sorted
}

// NewDatabase creates an empty Database for one (game, version) pair.
func NewDatabase(game Game, version string) *Database {
	return &Database{
		game:    game,
		version: version,
		records: make(map[string]*ModRecord),
		aliases: make(map[string]string),
	}
}

// Game returns the title this database describes.
func (d *Database) Game() Game { return d.game }

// Version returns the masterlist version this database was built from.
func (d *Database) Version() string { return d.version }

// Len returns the number of canonical records.
func (d *Database) Len() int { return len(d.records) }

// Upsert adds a record under its clean name, merging list fields and ORing
// the dirty flag when the key already exists.
func (d *Database) Upsert(rec *ModRecord) *ModRecord {
	if existing, ok := d.records[rec.CleanName]; ok {
		existing.merge(rec)
		return existing
	}
	d.records[rec.CleanName] = rec
	return rec
}

// AddAlias registers an additional lookup name for a canonical key. Aliases
// that would shadow a canonical record are ignored; the canonical entry wins.
func (d *Database) AddAlias(alias, canonical string) error {
	if _, ok := d.records[canonical]; !ok {
		err := zerr.With(zerr.Wrap(ErrUnknownAliasTarget, "failed to add alias"), "alias", alias)
		return zerr.With(err, "canonical", canonical)
	}
	if alias == "" || alias == canonical {
		return nil
	}
	if _, ok := d.records[alias]; ok {
		return nil
	}
	d.aliases[alias] = canonical
	return nil
}

// Get returns the record behind a clean-name key, following the alias index.
func (d *Database) Get(key string) (*ModRecord, bool) {
	if rec, ok := d.records[key]; ok {
		return rec, true
	}
	if canonical, ok := d.aliases[key]; ok {
		return d.records[canonical], true
	}
	return nil, false
}

// CanonicalKeys returns the canonical clean names in sorted order.
func (d *Database) CanonicalKeys() []string {
	keys := make([]string, 0, len(d.records))
	for k := range d.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Aliases returns a copy of the alias index.
func (d *Database) Aliases() map[string]string {
	out := make(map[string]string, len(d.aliases))
	for k, v := range d.aliases {
		out[k] = v
	}
	return out
}

// buildCompactIndex materializes the second-stage lookup structures: a map
// from compact form to lookup key and the sorted list of all lookup keys
// used for fuzzy matching. Built once, on first resolve.
func (d *Database) buildCompactIndex() {
	d.compactOnce.Do(func() {
		d.compact = make(map[string]string, len(d.records)+len(d.aliases))
		d.lookupKeys = make([]string, 0, len(d.records)+len(d.aliases))
		for k := range d.records {
			d.lookupKeys = append(d.lookupKeys, k)
		}
		for k := range d.aliases {
			d.lookupKeys = append(d.lookupKeys, k)
		}
		sort.Strings(d.lookupKeys)
		// Sorted insertion keeps the compact index deterministic when two
		// keys collapse to the same compact form.
		for _, k := range d.lookupKeys {
			c := CompactName(k)
			if c == "" {
				continue
			}
			if _, ok := d.compact[c]; !ok {
				d.compact[c] = k
			}
		}
	})
}
