/*
Package jsonobject decodes and encodes JSON objects against a declarative
field schema.

Every schema object type declares a table of its wire fields: whether they
are required, which values they accept and how nested objects are shaped.
Decode checks the raw JSON against that table before encoding/json fills
the target struct, so a structurally invalid document never produces a
half-populated object.
*/
package jsonobject

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field describes a single wire field of a JSON object type
type Field struct {
	// Name is the wire name of the field (the JSON key)
	Name string
	// Required fields fail the decode when absent or null
	Required bool
	// Choices restricts a string field to an enumerated set of values
	Choices []string
	// Object is the schema of a nested object field
	Object *Schema
	// Elem is the schema of the elements of a list field
	Elem *Schema
	// Value is the schema of the values of a string-keyed mapping field
	Value *Schema
	// Validate runs against the raw value after the structural checks.
	// Used for gates that need to inspect the decoded value, like
	// format version ceilings
	Validate func(raw json.RawMessage) error
}

// Schema is the ordered field table of a JSON object type
type Schema struct {
	// Name of the object type, used in error messages
	Name   string
	Fields []Field
}

// MissingFieldError is returned when a required field is absent
type MissingFieldError struct {
	Object string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Object, e.Field)
}

// InvalidChoiceError is returned when a field value is outside its
// enumerated choice set
type InvalidChoiceError struct {
	Object  string
	Field   string
	Value   string
	Choices []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("%s: field %q has invalid value %q (allowed: %v)", e.Object, e.Field, e.Value, e.Choices)
}

// Decode checks data against the schema and unmarshals it into v.
// v is left untouched when the check fails
func Decode(data []byte, schema *Schema, v interface{}) error {
	if err := schema.Check(data); err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Check validates a raw JSON object against the schema without decoding
// it into a struct
func (s *Schema) Check(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}

	for _, field := range s.Fields {
		value, ok := raw[field.Name]
		if !ok || isNull(value) {
			if field.Required {
				return &MissingFieldError{Object: s.Name, Field: field.Name}
			}
			continue
		}

		if len(field.Choices) > 0 {
			if err := s.checkChoice(field, value); err != nil {
				return err
			}
		}

		if field.Object != nil {
			if err := field.Object.Check(value); err != nil {
				return err
			}
		}

		if field.Elem != nil {
			var items []json.RawMessage
			if err := json.Unmarshal(value, &items); err != nil {
				return fmt.Errorf("%s: field %q: %w", s.Name, field.Name, err)
			}
			for _, item := range items {
				if err := field.Elem.Check(item); err != nil {
					return err
				}
			}
		}

		if field.Value != nil {
			var entries map[string]json.RawMessage
			if err := json.Unmarshal(value, &entries); err != nil {
				return fmt.Errorf("%s: field %q: %w", s.Name, field.Name, err)
			}
			for _, entry := range entries {
				if err := field.Value.Check(entry); err != nil {
					return err
				}
			}
		}

		if field.Validate != nil {
			if err := field.Validate(value); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Schema) checkChoice(field Field, value json.RawMessage) error {
	var str string
	if err := json.Unmarshal(value, &str); err != nil {
		return fmt.Errorf("%s: field %q: %w", s.Name, field.Name, err)
	}
	for _, choice := range field.Choices {
		if str == choice {
			return nil
		}
	}
	return &InvalidChoiceError{Object: s.Name, Field: field.Name, Value: str, Choices: field.Choices}
}

// Encode marshals v to compact JSON
func Encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// EncodeIndent marshals v pretty-printed with the given indent and all
// object keys sorted alphabetically. Used for files that should diff
// cleanly, like the on-disk package descriptors
func EncodeIndent(v interface{}, indent string) ([]byte, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	// round-trip through an untyped map so encoding/json sorts the keys
	var generic interface{}
	if err := json.Unmarshal(compact, &generic); err != nil {
		return nil, err
	}
	return json.MarshalIndent(generic, "", indent)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
