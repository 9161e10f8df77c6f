package resumy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/resumy/go-resumy/internal/assets"
	"github.com/resumy/go-resumy/internal/yamlutil"
)

// Default schema names bundled with the tool.
const (
	// SchemaJSONResume validates JSON Resume shaped documents.
	SchemaJSONResume = "jsonresume.yaml"
	// SchemaLegacy validates legacy resumy shaped documents.
	SchemaLegacy = "resumy.yaml"
)

// LoadSchema resolves a schema reference to a parsed YAML-encoded JSON
// Schema document. Absolute paths are read verbatim from disk; bare names
// resolve against the embedded schemas directory. The schema is loaded
// fresh on every call.
func LoadSchema(ref string) (map[string]any, error) {
	var data []byte
	var err error

	if filepath.IsAbs(ref) {
		data, err = os.ReadFile(ref) // #nosec G304 -- schema path is user-provided
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %w", assets.ErrSchemaNotFound, err)
			}
			return nil, fmt.Errorf("reading schema: %w", err)
		}
	} else {
		data, err = assets.LoadSchema(ref)
		if err != nil {
			return nil, err
		}
	}

	var schemaDoc map[string]any
	if err := yamlutil.Unmarshal(data, &schemaDoc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	return schemaDoc, nil
}
