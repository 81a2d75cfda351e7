package mojang

import "github.com/mcmeta/mcmeta/pkg/jsonobject"

// Artifact is an object describing a "thing" that can be downloaded.
// It is used for libraries, log configs and the minecraft client itself
type Artifact struct {
	Sha1 string `json:"sha1,omitempty"`
	// Size in bytes
	Size int `json:"size,omitempty"`
	// URL to download the file from
	URL string `json:"url"`
}

// LibraryArtifact is an artifact that knows its place in a maven tree
type LibraryArtifact struct {
	Artifact
	// Path of the file relative to the libraries folder
	Path string `json:"path,omitempty"`
}

// AssetIndex points to the asset index file of a version
type AssetIndex struct {
	Artifact
	ID        string `json:"id,omitempty"`
	TotalSize int    `json:"totalSize,omitempty"`
}

var artifactSchema = &jsonobject.Schema{
	Name: "artifact",
	Fields: []jsonobject.Field{
		{Name: "url", Required: true},
	},
}
