package index

import "errors"

var (
	// ErrFileNotInProject reports a path that is not part of the project
	// file set. Indexer.Index has no error result and does not return it.
	ErrFileNotInProject = errors.New("index: file not in project set")
)
