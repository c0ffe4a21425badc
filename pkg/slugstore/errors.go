package slugstore

import "errors"

var (
	ErrInvalidConnectionURL = errors.New("slugstore: invalid connection url")
	ErrNotReady             = errors.New("slugstore: storage did not become ready in time")
	ErrInvalidIdentifier    = errors.New("slugstore: empty table or column name")
	ErrEmptyKey             = errors.New("slugstore: empty redis key")
	ErrLookupFailed         = errors.New("slugstore: slug lookup failed")
	ErrInvalidConfig        = errors.New("slugstore: failed to parse config")
)
