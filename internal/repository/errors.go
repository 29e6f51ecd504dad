package repository

import "errors"

// ErrNotFound is returned by Load when the collection has never been
// persisted.
var ErrNotFound = errors.New("collection not persisted")
