package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrSchemaNotFound indicates the requested schema does not exist.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrThemeNotFound indicates the requested theme does not exist.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrInvalidAssetName indicates the asset name contains invalid
	// characters such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")
)
