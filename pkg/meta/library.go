package meta

import (
	"github.com/mcmeta/mcmeta/pkg/jsonobject"
	"github.com/mcmeta/mcmeta/pkg/mojang"
)

// Library is a mojang library with launcher specific extras
type Library struct {
	mojang.Library
	// URL overrides the maven repository the artifact is fetched from
	URL string `json:"url,omitempty"`
	// MMCHint tells the launcher to treat this library specially
	// ("local", "always-stale", ...). The wire key really is "MMC-hint"
	MMCHint string `json:"MMC-hint,omitempty"`
}

// librarySchema piggybacks on the mojang library field table, the two
// extra fields are optional free-form strings
var librarySchema = mojang.LibrarySchema

// Dependency declares a relation to another package. It is a reference
// only, resolving it is up to the consumer
type Dependency struct {
	// UID of the referenced package
	UID string `json:"uid"`
	// Equals pins the referenced package to an exact version
	Equals string `json:"equals,omitempty"`
	// Suggests names the version picked when nothing else constrains it
	Suggests string `json:"suggests,omitempty"`
}

var dependencySchema = &jsonobject.Schema{
	Name: "dependency",
	Fields: []jsonobject.Field{
		{Name: "uid", Required: true},
	},
}
