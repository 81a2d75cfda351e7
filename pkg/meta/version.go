package meta

import (
	"github.com/mcmeta/mcmeta/pkg/gradle"
	"github.com/mcmeta/mcmeta/pkg/jsonobject"
	"github.com/mcmeta/mcmeta/pkg/mojang"
)

// VersionFile is one installable component version, eg. "net.minecraft
// 1.19.2" or "net.fabricmc.fabric-loader 0.14.9"
type VersionFile struct {
	FormatVersion int    `json:"formatVersion"`
	Name          string `json:"name"`
	Version       string `json:"version"`
	UID           string `json:"uid"`
	// Requires and Conflicts are declarative references, see Dependency
	Requires  []Dependency `json:"requires,omitempty"`
	Conflicts []Dependency `json:"conflicts,omitempty"`
	// Volatile components may be swapped out without user interaction
	Volatile   *bool              `json:"volatile,omitempty"`
	AssetIndex *mojang.AssetIndex `json:"assetIndex,omitempty"`
	Libraries  []Library          `json:"libraries,omitempty"`
	// MavenFiles are downloaded into the maven tree but not put on the
	// classpath
	MavenFiles []Library `json:"mavenFiles,omitempty"`
	MainJar    *Library  `json:"mainJar,omitempty"`
	JarMods    []Library `json:"jarMods,omitempty"`
	MainClass  string    `json:"mainClass,omitempty"`
	// AppletClass is used by the ancient applet-based versions
	AppletClass        string            `json:"appletClass,omitempty"`
	MinecraftArguments string            `json:"minecraftArguments,omitempty"`
	ReleaseTime        *mojang.Timestamp `json:"releaseTime,omitempty"`
	Type               string            `json:"type,omitempty"`
	// AddTraits and AddTweakers are additive, hence the "+" wire prefix
	AddTraits   []string `json:"+traits,omitempty"`
	AddTweakers []string `json:"+tweakers,omitempty"`
	// Order is a load order hint for jar mod style components
	Order *int `json:"order,omitempty"`
}

var versionFileSchema = &jsonobject.Schema{
	Name: "version file",
	Fields: []jsonobject.Field{
		formatVersionField,
		{Name: "name", Required: true},
		{Name: "version", Required: true},
		{Name: "uid", Required: true},
		{Name: "requires", Elem: dependencySchema},
		{Name: "conflicts", Elem: dependencySchema},
		{Name: "assetIndex", Object: assetIndexSchema},
		{Name: "libraries", Elem: librarySchema},
		{Name: "mavenFiles", Elem: librarySchema},
		{Name: "mainJar", Object: librarySchema},
		{Name: "jarMods", Elem: librarySchema},
	},
}

var assetIndexSchema = &jsonobject.Schema{
	Name: "asset index",
	Fields: []jsonobject.Field{
		{Name: "url", Required: true},
	},
}

// ParseVersionFile decodes a version file. Files with a formatVersion
// above CurrentFormatVersion fail with an UnsupportedFormatError; files
// without one get CurrentFormatVersion
func ParseVersionFile(data []byte) (*VersionFile, error) {
	var v VersionFile
	if err := jsonobject.Decode(data, versionFileSchema, &v); err != nil {
		return nil, err
	}
	if v.FormatVersion == 0 {
		v.FormatVersion = CurrentFormatVersion
	}
	return &v, nil
}

// Encode serializes the version file back to JSON
func (v *VersionFile) Encode() ([]byte, error) {
	return jsonobject.Encode(v)
}

// LibrarySpecifiers returns the specifiers of all classpath libraries
func (v *VersionFile) LibrarySpecifiers() []gradle.Specifier {
	specs := make([]gradle.Specifier, len(v.Libraries))
	for i, lib := range v.Libraries {
		specs[i] = lib.Name
	}
	return specs
}
