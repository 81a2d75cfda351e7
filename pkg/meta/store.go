package meta

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Store reads and writes meta files below a data root directory.
// The layout is one directory per package uid:
//
//	<root>/<uid>/package.json
//	<root>/<uid>/index.json
//	<root>/index.json
//
// The store does no locking. Concurrent writers to the same path race
// and the last one wins
type Store struct {
	// Root is the data directory
	Root string
}

// NewStore returns a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{Root: dir}
}

// PackagePath returns the path of the shared package descriptor for uid
func (s *Store) PackagePath(uid string) string {
	return filepath.Join(s.Root, uid, "package.json")
}

// VersionIndexPath returns the path of the version index for uid
func (s *Store) VersionIndexPath(uid string) string {
	return filepath.Join(s.Root, uid, "index.json")
}

// PackageIndexPath returns the path of the global package index
func (s *Store) PackageIndexPath() string {
	return filepath.Join(s.Root, "index.json")
}

// LoadPackage reads and decodes the shared package descriptor for uid
func (s *Store) LoadPackage(uid string) (*Package, error) {
	data, err := os.ReadFile(s.PackagePath(uid))
	if err != nil {
		return nil, err
	}
	pkg, err := ParsePackage(data)
	if err != nil {
		return nil, errors.Wrapf(err, "reading shared package data for %s", uid)
	}
	return pkg, nil
}

// SavePackage writes the shared package descriptor to its fixed path,
// pretty-printed with sorted keys so the output diffs cleanly
func (s *Store) SavePackage(pkg *Package) error {
	data, err := pkg.EncodeIndent()
	if err != nil {
		return errors.Wrapf(err, "encoding shared package data for %s", pkg.UID)
	}

	path := s.PackagePath(pkg.UID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "saving shared package data for %s", pkg.UID)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.Wrapf(err, "saving shared package data for %s", pkg.UID)
	}
	return nil
}

// LoadVersionIndex reads and decodes the version index for uid
func (s *Store) LoadVersionIndex(uid string) (*VersionIndex, error) {
	data, err := os.ReadFile(s.VersionIndexPath(uid))
	if err != nil {
		return nil, err
	}
	index, err := ParseVersionIndex(data)
	if err != nil {
		return nil, errors.Wrapf(err, "reading version index for %s", uid)
	}
	return index, nil
}

// LoadPackageIndex reads and decodes the global package index
func (s *Store) LoadPackageIndex() (*PackageIndex, error) {
	data, err := os.ReadFile(s.PackageIndexPath())
	if err != nil {
		return nil, err
	}
	index, err := ParsePackageIndex(data)
	if err != nil {
		return nil, errors.Wrap(err, "reading package index")
	}
	return index, nil
}
