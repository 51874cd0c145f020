package datastore

import "errors"

var (
	// ErrReadFailure means the document is missing or is not valid JSON.
	ErrReadFailure = errors.New("read failure")
	// ErrWriteFailure means the backup or the rewrite of a document failed.
	// The live document is left untouched when the backup step fails.
	ErrWriteFailure    = errors.New("write failure")
	ErrUnknownDocument = errors.New("unknown document")
)
