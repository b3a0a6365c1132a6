// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConflict signals that an insert collides with existing
// state (a duplicate table label or username), while the per-entity
// not-found sentinels map to HTTP 404 responses.
package repository

import "errors"

// ErrConflict is returned when an insert or update cannot be performed
// because of conflicting state, such as creating a table whose label is
// already taken. Handlers should translate this into an HTTP 409
// response.
var ErrConflict = errors.New("conflict")
