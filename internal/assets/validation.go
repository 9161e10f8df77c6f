package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a file
// or directory name inside the embedded tree. Returns ErrInvalidAssetName
// if the name is empty or contains path separators or traversal
// sequences. Dots are allowed so names may carry extensions
// ("jsonresume.yaml").
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
