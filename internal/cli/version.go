package cli

import (
	semver "github.com/Masterminds/semver/v3"

	stellarerrors "github.com/stellar-lang/stellar/internal/errors"
)

// LanguageVersion returns the version of the Stellar language accepted by
// this front end.
func LanguageVersion() *semver.Version {
	return semver.MustParse(Version)
}

// CheckRequirement verifies that the language version satisfies
// constraint, e.g. ">= 0.2, < 1.0". An empty constraint always passes.
func CheckRequirement(constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return stellarerrors.InvalidConstraint(constraint, err)
	}

	if !c.Check(LanguageVersion()) {
		return stellarerrors.VersionMismatch(Version, constraint)
	}

	return nil
}
