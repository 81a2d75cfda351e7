/*
Package gradle implements maven / gradle artifact specifiers.

A specifier identifies a single artifact in a maven repository. Like one of these:

	"org.lwjgl.lwjgl:lwjgl:2.9.0"
	"net.java.jinput:jinput:2.0.5"
	"net.minecraft:launchwrapper:1.5"
*/
package gradle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultExtension is assumed when a specifier carries no "@extension" suffix
const DefaultExtension = "jar"

// InvalidSpecifierError is returned when a specifier string can not be parsed
type InvalidSpecifierError struct {
	// Value is the offending input string
	Value string
}

func (e *InvalidSpecifierError) Error() string {
	return fmt.Sprintf("invalid artifact specifier %q (expected group:artifact:version[:classifier][@extension])", e.Value)
}

// Specifier is a parsed maven coordinate
type Specifier struct {
	Group    string
	Artifact string
	Version  string
	// Classifier is empty for artifacts without one
	Classifier string
	// Extension defaults to "jar"
	Extension string
}

// Parse parses a specifier string like "net.minecraft:launchwrapper:1.5"
func Parse(s string) (Specifier, error) {
	spec := Specifier{Extension: DefaultExtension}

	atSplit := strings.SplitN(s, "@", 2)
	if len(atSplit) == 2 {
		spec.Extension = atSplit[1]
	}

	components := strings.Split(atSplit[0], ":")
	if len(components) < 3 {
		return Specifier{}, &InvalidSpecifierError{Value: s}
	}

	spec.Group = components[0]
	spec.Artifact = components[1]
	spec.Version = components[2]
	if len(components) >= 4 {
		spec.Classifier = components[3]
	}

	if spec.Group == "" || spec.Artifact == "" || spec.Version == "" {
		return Specifier{}, &InvalidSpecifierError{Value: s}
	}

	return spec, nil
}

// MustParse is like Parse but panics on invalid input. Useful for tests
// and hardcoded specifiers
func MustParse(s string) Specifier {
	spec, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return spec
}

// String returns the canonical string form. The "@extension" suffix is
// omitted for plain jar artifacts
func (s Specifier) String() string {
	str := s.Group + ":" + s.Artifact + ":" + s.Version
	if s.Classifier != "" {
		str += ":" + s.Classifier
	}
	if s.Extension != "" && s.Extension != DefaultExtension {
		str += "@" + s.Extension
	}
	return str
}

// Filename returns the artifact filename, eg. "lwjgl-2.9.0.jar"
func (s Specifier) Filename() string {
	if s.Classifier != "" {
		return fmt.Sprintf("%s-%s-%s.%s", s.Artifact, s.Version, s.Classifier, s.ext())
	}
	return fmt.Sprintf("%s-%s.%s", s.Artifact, s.Version, s.ext())
}

// Base returns the maven directory path of this artifact relative to the
// repository root, with a trailing slash. eg. "org/lwjgl/lwjgl/2.9.0/"
func (s Specifier) Base() string {
	return strings.ReplaceAll(s.Group, ".", "/") + "/" + s.Artifact + "/" + s.Version + "/"
}

// Path returns the full file path relative to the repository root
func (s Specifier) Path() string {
	return s.Base() + s.Filename()
}

// Equal reports whether both specifiers point to the same artifact.
// The extension is not part of the identity
func (s Specifier) Equal(other Specifier) bool {
	return s.Group == other.Group &&
		s.Artifact == other.Artifact &&
		s.Version == other.Version &&
		s.Classifier == other.Classifier
}

// Less orders specifiers by their canonical string form
func (s Specifier) Less(other Specifier) bool {
	return s.String() < other.String()
}

// Key returns a string identifying this artifact, usable as a map key.
// Unlike String it never includes the extension, so specifiers that are
// Equal always share a key
func (s Specifier) Key() string {
	str := s.Group + ":" + s.Artifact + ":" + s.Version
	if s.Classifier != "" {
		str += ":" + s.Classifier
	}
	return str
}

// IsLwjgl reports whether this artifact belongs to the lwjgl stack
func (s Specifier) IsLwjgl() bool {
	switch s.Group {
	case "org.lwjgl", "org.lwjgl.lwjgl", "net.java.jinput", "net.java.jutils":
		return true
	}
	return false
}

// IsLog4j reports whether this artifact is part of log4j
func (s Specifier) IsLog4j() bool {
	return s.Group == "org.apache.logging.log4j"
}

// MarshalJSON encodes the specifier as its canonical string form
func (s Specifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a specifier from a JSON string
func (s *Specifier) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Specifier) ext() string {
	if s.Extension == "" {
		return DefaultExtension
	}
	return s.Extension
}
