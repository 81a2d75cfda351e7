/*
Package mojang implements the version manifest format distributed by
Mojang's launcher metadata service.

Decoding runs every manifest through a declarative field schema
(see pkg/jsonobject) before it is considered usable, so missing required
fields, out-of-range enum values and unsupported format revisions all
fail the whole decode.
*/
package mojang

import (
	"encoding/json"
	"fmt"

	"github.com/mcmeta/mcmeta/pkg/jsonobject"
)

// MaxLauncherVersion is the newest minimumLauncherVersion this library
// understands. Manifests asking for more are rejected
const MaxLauncherVersion = 21

// LoggingTypeLog4j is the only logging config type Mojang ships
const LoggingTypeLog4j = "log4j2-xml"

// Java version component defaults used when a manifest names no explicit
// java requirement
const (
	DefaultJavaComponent = "jre-legacy"
	DefaultJavaMajor     = 8
)

// UnsupportedVersionError is returned when a manifest declares a
// minimumLauncherVersion above MaxLauncherVersion
type UnsupportedVersionError struct {
	Version int
	Max     int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported mojang format version: %d. Max supported is: %d", e.Version, e.Max)
}

// Arguments holds the game and jvm argument lists introduced with 1.13.
// Entries are either plain strings or rule-gated objects, both are kept
// raw for the launcher to interpret
type Arguments struct {
	Game []json.RawMessage `json:"game,omitempty"`
	JVM  []json.RawMessage `json:"jvm,omitempty"`
}

// LoggingArtifact is the downloadable log4j configuration file
type LoggingArtifact struct {
	Artifact
	ID string `json:"id,omitempty"`
}

// Logging is the log configuration of one side (client or server)
type Logging struct {
	File LoggingArtifact `json:"file"`
	// Argument is the JVM argument referencing the config file
	Argument string `json:"argument"`
	// Type is always "log4j2-xml"
	Type string `json:"type"`
}

// JavaVersion is the java runtime requirement of a version
type JavaVersion struct {
	Component    string `json:"component"`
	MajorVersion int    `json:"majorVersion"`
}

// VersionFile is a full version manifest as served by Mojang
type VersionFile struct {
	Arguments  *Arguments  `json:"arguments,omitempty"`
	AssetIndex *AssetIndex `json:"assetIndex,omitempty"`
	// Assets is the id of the asset group, eg. "1.19"
	Assets          string `json:"assets,omitempty"`
	ComplianceLevel int    `json:"complianceLevel,omitempty"`
	// Downloads maps a role ("client", "server", ...) to its artifact
	Downloads   map[string]Artifact `json:"downloads,omitempty"`
	ID          string              `json:"id,omitempty"`
	JavaVersion *JavaVersion        `json:"javaVersion,omitempty"`
	Libraries   []Library           `json:"libraries,omitempty"`
	// Logging maps a side ("client") to its log configuration
	Logging   map[string]Logging `json:"logging,omitempty"`
	MainClass string             `json:"mainClass,omitempty"`
	// MinecraftArguments is the legacy single argument string used
	// before 1.13
	MinecraftArguments string `json:"minecraftArguments,omitempty"`
	// ProcessArguments is an even older argument hint ("legacy", ...)
	ProcessArguments       string     `json:"processArguments,omitempty"`
	MinimumLauncherVersion int        `json:"minimumLauncherVersion,omitempty"`
	ReleaseTime            *Timestamp `json:"releaseTime,omitempty"`
	Time                   *Timestamp `json:"time,omitempty"`
	Type                   string     `json:"type,omitempty"`
	InheritsFrom           string     `json:"inheritsFrom,omitempty"`
}

// ValidateLauncherVersion rejects minimumLauncherVersion values above
// MaxLauncherVersion
func ValidateLauncherVersion(version int) error {
	if version > MaxLauncherVersion {
		return &UnsupportedVersionError{Version: version, Max: MaxLauncherVersion}
	}
	return nil
}

var loggingSchema = &jsonobject.Schema{
	Name: "logging",
	Fields: []jsonobject.Field{
		{Name: "file", Required: true, Object: artifactSchema},
		{Name: "argument", Required: true},
		{Name: "type", Required: true, Choices: []string{LoggingTypeLog4j}},
	},
}

var versionFileSchema = &jsonobject.Schema{
	Name: "mojang version file",
	Fields: []jsonobject.Field{
		{Name: "assetIndex", Object: artifactSchema},
		{Name: "downloads", Value: artifactSchema},
		{Name: "libraries", Elem: LibrarySchema},
		{Name: "logging", Value: loggingSchema},
		{Name: "minimumLauncherVersion", Validate: func(raw json.RawMessage) error {
			var version int
			if err := json.Unmarshal(raw, &version); err != nil {
				return fmt.Errorf("mojang version file: field %q: %w", "minimumLauncherVersion", err)
			}
			return ValidateLauncherVersion(version)
		}},
	},
}

// ParseVersionFile decodes a version manifest, validating it against the
// schema. Files declaring a newer format than MaxLauncherVersion are
// rejected with an UnsupportedVersionError
func ParseVersionFile(data []byte) (*VersionFile, error) {
	var v VersionFile
	if err := jsonobject.Decode(data, versionFileSchema, &v); err != nil {
		return nil, err
	}
	if v.JavaVersion != nil {
		if v.JavaVersion.Component == "" {
			v.JavaVersion.Component = DefaultJavaComponent
		}
		if v.JavaVersion.MajorVersion == 0 {
			v.JavaVersion.MajorVersion = DefaultJavaMajor
		}
	}
	return &v, nil
}

// Encode serializes the version file back to JSON
func (v *VersionFile) Encode() ([]byte, error) {
	return jsonobject.Encode(v)
}
