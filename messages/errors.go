package messages

import "errors"

var (
	// ErrFailedToParseYAML is returned when catalog YAML does not decode.
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")

	// ErrInvalidCatalogStructure is returned when a top-level YAML entry is
	// not a language keyed over a mapping.
	ErrInvalidCatalogStructure = errors.New("invalid catalog structure")

	// ErrNoCatalogs is returned when parsing yields no languages at all.
	ErrNoCatalogs = errors.New("no catalogs found")

	// ErrFailedToReadFile is returned when a catalog file cannot be read.
	ErrFailedToReadFile = errors.New("failed to read catalog file")
)
