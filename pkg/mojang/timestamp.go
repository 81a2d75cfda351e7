package mojang

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayouts are the ISO-8601 shapes found in the wild. Mojang
// emits RFC 3339, very old files use an offset without the colon
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// InvalidTimestampError is returned when a timestamp string can not be
// parsed as ISO-8601
type InvalidTimestampError struct {
	// Value is the offending literal
	Value string
	// Err is the underlying parser error
	Err error
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid ISO date/time %q [%v]", e.Value, e.Err)
}

func (e *InvalidTimestampError) Unwrap() error {
	return e.Err
}

// Timestamp is an ISO-8601 timestamp as used in the releaseTime and time
// fields of version manifests
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses an ISO-8601 timestamp string
func ParseTimestamp(s string) (Timestamp, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return Timestamp{Time: parsed}, nil
		}
		lastErr = err
	}
	return Timestamp{}, &InvalidTimestampError{Value: s, Err: lastErr}
}

// MarshalJSON encodes the timestamp as an RFC 3339 string. Fractional
// seconds are kept, so decoding and re-encoding a file never loses
// precision
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// UnmarshalJSON decodes an ISO-8601 timestamp string
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
