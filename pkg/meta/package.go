package meta

import "github.com/mcmeta/mcmeta/pkg/jsonobject"

// Package is the shared, version independent descriptor of a component:
// who made it, what it is and which versions are recommended
type Package struct {
	FormatVersion int    `json:"formatVersion"`
	Name          string `json:"name"`
	UID           string `json:"uid"`
	// Recommended lists the versions the launcher should prefer
	Recommended []string `json:"recommended,omitempty"`
	Authors     []string `json:"authors,omitempty"`
	Description string   `json:"description,omitempty"`
	ProjectURL  string   `json:"projectUrl,omitempty"`
}

var packageSchema = &jsonobject.Schema{
	Name: "package",
	Fields: []jsonobject.Field{
		formatVersionField,
		{Name: "name", Required: true},
		{Name: "uid", Required: true},
	},
}

// ParsePackage decodes a shared package descriptor
func ParsePackage(data []byte) (*Package, error) {
	var p Package
	if err := jsonobject.Decode(data, packageSchema, &p); err != nil {
		return nil, err
	}
	if p.FormatVersion == 0 {
		p.FormatVersion = CurrentFormatVersion
	}
	return &p, nil
}

// Encode serializes the package descriptor back to JSON
func (p *Package) Encode() ([]byte, error) {
	return jsonobject.Encode(p)
}

// EncodeIndent serializes the package descriptor pretty-printed with
// 4-space indentation and alphabetically sorted keys, the on-disk shape
// of package.json
func (p *Package) EncodeIndent() ([]byte, error) {
	return jsonobject.EncodeIndent(p, "    ")
}
