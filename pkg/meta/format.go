/*
Package meta implements the launcher's own metadata format: per-version
files, shared package descriptors and the version / package indexes.

All files carry a formatVersion marker. Files written by a newer, unknown
format revision are rejected on decode instead of being half-interpreted.
*/
package meta

import (
	"encoding/json"
	"fmt"

	"github.com/mcmeta/mcmeta/pkg/jsonobject"
)

// CurrentFormatVersion is the newest meta format revision this library
// understands and the default for files that carry no formatVersion
const CurrentFormatVersion = 1

// UnsupportedFormatError is returned when a file declares a formatVersion
// above CurrentFormatVersion
type UnsupportedFormatError struct {
	Version int
	Max     int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported meta format version: %d. Max supported is: %d", e.Version, e.Max)
}

// ValidateFormatVersion rejects format versions above CurrentFormatVersion
func ValidateFormatVersion(version int) error {
	if version > CurrentFormatVersion {
		return &UnsupportedFormatError{Version: version, Max: CurrentFormatVersion}
	}
	return nil
}

// formatVersionField is the shared formatVersion gate of all versioned
// meta objects
var formatVersionField = jsonobject.Field{
	Name: "formatVersion",
	Validate: func(raw json.RawMessage) error {
		var version int
		if err := json.Unmarshal(raw, &version); err != nil {
			return fmt.Errorf("formatVersion: %w", err)
		}
		return ValidateFormatVersion(version)
	},
}
