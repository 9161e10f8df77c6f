package resumy

import (
	"fmt"
	"os"
	"time"

	"github.com/resumy/go-resumy/internal/dateutil"
)

// Metadata holds the document metadata embedded into the generated PDF.
// Empty string fields are unset; dates use the YYYY-MM-DD format.
type Metadata struct {
	Title    string
	Author   string
	Keywords []string
	Created  string
	Modified string
}

// NormalizeMetadata fills unset metadata fields with computed defaults.
// Defaulting only activates when auto is set; otherwise meta passes
// through unchanged.
//
// Active defaults: Title falls back to the output file name, Created to
// the existing output file's modification time (or now when the file does
// not exist yet), Modified to now, Author to the document profile's
// "firstname lastname", and Keywords to ["resume"] when empty.
func NormalizeMetadata(meta Metadata, auto bool, outputPath string, doc Document, now time.Time) Metadata {
	if !auto {
		return meta
	}

	today := now.Format(dateutil.ISODate)

	if meta.Title == "" {
		meta.Title = outputPath
	}
	if meta.Created == "" {
		if info, err := os.Stat(outputPath); err == nil {
			meta.Created = info.ModTime().Format(dateutil.ISODate)
		} else {
			meta.Created = today
		}
	}
	if meta.Modified == "" {
		meta.Modified = today
	}
	if meta.Author == "" {
		if profile, ok := doc["profile"].(map[string]any); ok {
			meta.Author = fmt.Sprintf("%s %s", stringAt(profile, "firstname"), stringAt(profile, "lastname"))
		}
	}
	if len(meta.Keywords) == 0 {
		meta.Keywords = []string{"resume"}
	}

	return meta
}
