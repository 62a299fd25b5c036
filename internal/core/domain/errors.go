package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownGame is returned when a game identifier is not one of the
	// supported titles.
	ErrUnknownGame = zerr.New("unknown game")

	// ErrMasterlistUnavailable is returned when a masterlist can neither be
	// loaded from the snapshot cache nor fetched upstream. Callers are
	// expected to fall back to a default game/version or surface
	// unavailability; a partial database is never returned.
	ErrMasterlistUnavailable = zerr.New("masterlist unavailable")

	// ErrNoVersions is returned when the upstream repository exposes no
	// parseable masterlist versions for a game.
	ErrNoVersions = zerr.New("no masterlist versions found")

	// ErrUnknownAliasTarget is returned when an alias is registered for a
	// canonical key that does not exist in the database.
	ErrUnknownAliasTarget = zerr.New("alias target not in database")

	// ErrEmptyLoadOrder is returned when an analysis request contains no
	// usable plugin entries.
	ErrEmptyLoadOrder = zerr.New("load order is empty")
)
