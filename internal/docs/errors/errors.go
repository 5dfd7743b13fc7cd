// Package errors provides sentinel errors for content discovery.
package errors

import "errors"

var (
	// ErrDocsRootMissing indicates the docs root does not exist or is not a directory.
	ErrDocsRootMissing = errors.New("docs root not found")

	// ErrContentDirEmpty indicates the content folder exists but has no entries.
	ErrContentDirEmpty = errors.New("content folder is empty")

	// ErrDocsDirWalkFailed indicates filesystem traversal of the docs root failed.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrInvalidPattern indicates an exclusion pattern is not a valid glob.
	ErrInvalidPattern = errors.New("invalid exclusion pattern")
)
