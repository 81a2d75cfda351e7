package meta

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

const (
	ErrorLevelWarn = iota
	ErrorLevelFatal
)

// ValidationError is a single problem found while validating a meta file.
// Structural problems (missing fields, bad enum values) are caught at
// decode time already; these are the semantic checks on top
type ValidationError struct {
	message string
	Path    string
	Level   int
}

func (e ValidationError) Error() string {
	return e.message
}

var (
	// ErrUIDInvalid is returned when a package uid contains characters
	// outside the reverse-domain charset
	ErrUIDInvalid = ValidationError{
		message: "uid is invalid",
		Path:    "uid",
		Level:   ErrorLevelFatal,
	}
	// ErrDependencyOverConstrained is returned when a dependency pins an
	// exact version and suggests another one at the same time
	ErrDependencyOverConstrained = ValidationError{
		message: "dependency declares both equals and suggests",
		Path:    "requires",
		Level:   ErrorLevelWarn,
	}
)

var validUID = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-_.]*$`)

// Problems is a list of validation errors
type Problems []ValidationError

// Fatal returns the first fatal problem, or nil if all problems are
// only warnings
func (p Problems) Fatal() error {
	for _, problem := range p {
		if problem.Level == ErrorLevelFatal {
			return problem
		}
	}
	return nil
}

func validateUID(path string, uid string) Problems {
	problems := Problems{}
	if !validUID.MatchString(uid) {
		problem := ErrUIDInvalid
		problem.Path = path
		problems = append(problems, problem)
	}
	return problems
}

func validateDependencies(path string, deps []Dependency) Problems {
	problems := Problems{}

	for _, dep := range deps {
		problems = append(problems, validateUID(path+".uid", dep.UID)...)

		if dep.Equals != "" && dep.Suggests != "" {
			problem := ErrDependencyOverConstrained
			problem.Path = path
			problems = append(problems, problem)
		}

		// version constraints should at least parse as semver ranges.
		// a lot of legacy versions don't, so this only warns
		for _, constraint := range []string{dep.Equals, dep.Suggests} {
			if constraint == "" {
				continue
			}
			if _, err := semver.NewConstraint(constraint); err != nil {
				problems = append(problems, ValidationError{
					message: "dependency version " + constraint + " is not a semver constraint",
					Path:    path,
					Level:   ErrorLevelWarn,
				})
			}
		}
	}

	return problems
}

// Validate checks the version file for semantic problems
func (v *VersionFile) Validate() Problems {
	problems := Problems{}

	problems = append(problems, validateUID("uid", v.UID)...)
	problems = append(problems, validateDependencies("requires", v.Requires)...)
	problems = append(problems, validateDependencies("conflicts", v.Conflicts)...)

	return problems
}

// Validate checks the package descriptor for semantic problems
func (p *Package) Validate() Problems {
	problems := Problems{}

	problems = append(problems, validateUID("uid", p.UID)...)

	for _, version := range p.Recommended {
		if _, err := semver.NewVersion(version); err != nil {
			problems = append(problems, ValidationError{
				message: "recommended version " + version + " is not semver",
				Path:    "recommended",
				Level:   ErrorLevelWarn,
			})
		}
	}

	return problems
}
