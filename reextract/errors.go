package reextract

import "errors"

var (
	// ErrRepositoryRequired is returned when no repository is supplied.
	ErrRepositoryRequired = errors.New("reextract: repository is required")

	// ErrExtractorRequired is returned when no extractor is supplied.
	ErrExtractorRequired = errors.New("reextract: extractor is required")
)
