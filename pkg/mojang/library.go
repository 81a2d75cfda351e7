package mojang

import (
	"github.com/mcmeta/mcmeta/pkg/gradle"
	"github.com/mcmeta/mcmeta/pkg/jsonobject"
)

// OSNames are the platform names used in library rules
var OSNames = []string{"osx", "linux", "windows"}

// Rule actions
const (
	ActionAllow    = "allow"
	ActionDisallow = "disallow"
)

// OSRule matches an operating system by name and optionally by version
type OSRule struct {
	// Name is one of OSNames
	Name string `json:"name"`
	// Version is a regex matched against the OS version by the consumer
	Version string `json:"version,omitempty"`
}

// Rule gates whether a library applies on the current platform
type Rule struct {
	// Action is "allow" or "disallow"
	Action string  `json:"action"`
	OS     *OSRule `json:"os,omitempty"`
}

// ExtractRules lists paths to skip when extracting a native library
type ExtractRules struct {
	Exclude []string `json:"exclude"`
}

// LibraryDownloads holds the download descriptors of a library
type LibraryDownloads struct {
	Artifact *LibraryArtifact `json:"artifact,omitempty"`
	// Classifiers maps classifier names to additional artifacts,
	// used for the per-platform native jars
	Classifiers map[string]*LibraryArtifact `json:"classifiers,omitempty"`
}

// Library is a single library entry of a version manifest
type Library struct {
	Extract   *ExtractRules     `json:"extract,omitempty"`
	Name      gradle.Specifier  `json:"name"`
	Downloads *LibraryDownloads `json:"downloads,omitempty"`
	// Natives maps platform names to the classifier of the native jar
	Natives map[string]string `json:"natives,omitempty"`
	Rules   []Rule            `json:"rules,omitempty"`
}

var osRuleSchema = &jsonobject.Schema{
	Name: "os rule",
	Fields: []jsonobject.Field{
		{Name: "name", Required: true, Choices: OSNames},
	},
}

var ruleSchema = &jsonobject.Schema{
	Name: "rule",
	Fields: []jsonobject.Field{
		{Name: "action", Required: true, Choices: []string{ActionAllow, ActionDisallow}},
		{Name: "os", Object: osRuleSchema},
	},
}

var libraryDownloadsSchema = &jsonobject.Schema{
	Name: "library downloads",
	Fields: []jsonobject.Field{
		{Name: "artifact", Object: artifactSchema},
		{Name: "classifiers", Value: artifactSchema},
	},
}

// LibrarySchema is the field table of a library entry. The meta format
// reuses it for its own library type
var LibrarySchema = &jsonobject.Schema{
	Name: "library",
	Fields: []jsonobject.Field{
		{Name: "name", Required: true},
		{Name: "downloads", Object: libraryDownloadsSchema},
		{Name: "rules", Elem: ruleSchema},
	},
}
