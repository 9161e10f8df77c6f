// Package dateutil holds the date conventions shared across the resume
// pipeline.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ISODate is the textual format used for every metadata and resume date.
const ISODate = "2006-01-02"

// ErrUnknownMonth indicates a month abbreviation that is not one of the
// twelve three-letter English forms.
var ErrUnknownMonth = errors.New("unknown month abbreviation")

// MonthNumber converts a three-letter month abbreviation ("Jan".."Dec")
// to its zero-padded calendar position ("01".."12").
func MonthNumber(abbr string) (string, error) {
	t, err := time.Parse("Jan", abbr)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownMonth, abbr)
	}
	return fmt.Sprintf("%02d", int(t.Month())), nil
}
