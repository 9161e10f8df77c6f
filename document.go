package resumy

import (
	"fmt"
	"os"

	"github.com/resumy/go-resumy/internal/yamlutil"
)

// Document is a parsed resume description: an unordered mapping from
// string keys to heterogeneous YAML values. Two shapes occur in practice,
// the legacy resumy dialect and the JSON Resume dialect; both flow through
// the pipeline as the same generic type.
type Document map[string]any

// legacyVersion is the version marker the legacy dialect carries.
const legacyVersion = "0.0.1"

// LoadDocument reads and parses a YAML document from path.
// Returns ErrDocumentNotFound if the path does not exist and
// ErrDocumentParse if the content is not valid YAML.
// Each call re-reads from disk; there is no caching.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- document path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", ErrDocumentNotFound, err)
		}
		return nil, fmt.Errorf("reading document: %w", err)
	}

	var doc Document
	if err := yamlutil.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}

	return doc, nil
}

// IsLegacy reports whether doc declares the legacy resumy dialect.
// Detection keys off the version marker the legacy format carries;
// documents without it are assumed to already be JSON Resume shaped.
func IsLegacy(doc Document) bool {
	v, ok := doc["version"].(string)
	return ok && v == legacyVersion
}
