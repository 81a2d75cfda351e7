package meta

import (
	"github.com/Masterminds/semver/v3"
	"github.com/mcmeta/mcmeta/pkg/jsonobject"
	"github.com/mcmeta/mcmeta/pkg/mojang"
)

// VersionIndexEntry is the per-version summary inside a version index
type VersionIndexEntry struct {
	Version     string            `json:"version"`
	Type        string            `json:"type,omitempty"`
	ReleaseTime *mojang.Timestamp `json:"releaseTime,omitempty"`
	Requires    []Dependency      `json:"requires,omitempty"`
	Conflicts   []Dependency      `json:"conflicts,omitempty"`
	Recommended *bool             `json:"recommended,omitempty"`
	Volatile    *bool             `json:"volatile,omitempty"`
	// SHA256 of the version file this entry summarizes
	SHA256 string `json:"sha256,omitempty"`
}

// VersionIndex lists all known versions of one package
type VersionIndex struct {
	FormatVersion int                 `json:"formatVersion"`
	Name          string              `json:"name"`
	UID           string              `json:"uid"`
	Versions      []VersionIndexEntry `json:"versions"`
}

// PackageIndexEntry is the per-package summary inside the package index
type PackageIndexEntry struct {
	Name string `json:"name"`
	UID  string `json:"uid"`
	// SHA256 of the package's version index
	SHA256 string `json:"sha256,omitempty"`
}

// PackageIndex lists all known packages
type PackageIndex struct {
	FormatVersion int                 `json:"formatVersion"`
	Packages      []PackageIndexEntry `json:"packages"`
}

var versionIndexEntrySchema = &jsonobject.Schema{
	Name: "version index entry",
	Fields: []jsonobject.Field{
		{Name: "version", Required: true},
		{Name: "requires", Elem: dependencySchema},
		{Name: "conflicts", Elem: dependencySchema},
	},
}

var versionIndexSchema = &jsonobject.Schema{
	Name: "version index",
	Fields: []jsonobject.Field{
		formatVersionField,
		{Name: "versions", Elem: versionIndexEntrySchema},
	},
}

var packageIndexSchema = &jsonobject.Schema{
	Name: "package index",
	Fields: []jsonobject.Field{
		formatVersionField,
	},
}

// ParseVersionIndex decodes a version index
func ParseVersionIndex(data []byte) (*VersionIndex, error) {
	var i VersionIndex
	if err := jsonobject.Decode(data, versionIndexSchema, &i); err != nil {
		return nil, err
	}
	if i.FormatVersion == 0 {
		i.FormatVersion = CurrentFormatVersion
	}
	return &i, nil
}

// ParsePackageIndex decodes the package index
func ParsePackageIndex(data []byte) (*PackageIndex, error) {
	var i PackageIndex
	if err := jsonobject.Decode(data, packageIndexSchema, &i); err != nil {
		return nil, err
	}
	if i.FormatVersion == 0 {
		i.FormatVersion = CurrentFormatVersion
	}
	return &i, nil
}

// Recommended returns the first entry flagged as recommended, or nil
func (i *VersionIndex) Recommended() *VersionIndexEntry {
	for n := range i.Versions {
		entry := &i.Versions[n]
		if entry.Recommended != nil && *entry.Recommended {
			return entry
		}
	}
	return nil
}

// Get returns the entry for an exact version string, or nil
func (i *VersionIndex) Get(version string) *VersionIndexEntry {
	for n := range i.Versions {
		if i.Versions[n].Version == version {
			return &i.Versions[n]
		}
	}
	return nil
}

// Latest returns the newest entry. Versions that parse as semver are
// compared semantically, everything else falls back to the release time
func (i *VersionIndex) Latest() *VersionIndexEntry {
	if len(i.Versions) == 0 {
		return nil
	}

	latest := &i.Versions[0]
	latestVersion, err := semver.NewVersion(latest.Version)
	if err != nil {
		latestVersion = nil
	}

	for n := 1; n < len(i.Versions); n++ {
		entry := &i.Versions[n]
		entryVersion, err := semver.NewVersion(entry.Version)
		if err != nil {
			entryVersion = nil
		}

		newer := false
		if entryVersion != nil && latestVersion != nil {
			newer = entryVersion.GreaterThan(latestVersion)
		} else {
			newer = releasedAfter(entry, latest)
		}

		if newer {
			latest = entry
			latestVersion = entryVersion
		}
	}

	return latest
}

func releasedAfter(a, b *VersionIndexEntry) bool {
	if a.ReleaseTime == nil || b.ReleaseTime == nil {
		return false
	}
	return a.ReleaseTime.After(b.ReleaseTime.Time)
}
