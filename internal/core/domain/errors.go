// Package domain contains the version model and the roll-forward algebra shared by
// the framework and SDK resolvers.
package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVersionString is returned when a version cannot be parsed.
	ErrInvalidVersionString = zerr.New("invalid version string")

	// ErrUnsupportedRollForwardValue is returned for an unrecognized roll-forward token.
	ErrUnsupportedRollForwardValue = zerr.New("unsupported roll forward value")

	// ErrFrameworkCompatFailure is returned when two references to the same
	// framework cannot be reconciled under their roll-forward settings.
	ErrFrameworkCompatFailure = zerr.New("incompatible framework references")

	// ErrFrameworkMissing is returned when no installed directory satisfies a reference.
	ErrFrameworkMissing = zerr.New("framework not found")

	// ErrResolutionDidNotConverge is returned when the retry or depth bound is exceeded.
	ErrResolutionDidNotConverge = zerr.New("framework resolution did not converge")

	// ErrInvalidRuntimeConfig is returned when a runtime config file is malformed.
	ErrInvalidRuntimeConfig = zerr.New("invalid runtime config")

	// ErrConflictingRollForwardSettings is returned when both the rollForward and
	// the legacy rollForwardOnNoCandidateFx settings appear at the same level.
	ErrConflictingRollForwardSettings = zerr.New("rollForward cannot be combined with rollForwardOnNoCandidateFx")

	// ErrAmbiguousFxVersionOverride is returned when an unqualified version
	// override is given for an application with several frameworks.
	ErrAmbiguousFxVersionOverride = zerr.New("fx version override must name a framework")

	// ErrInvalidGlobalJSON is returned when a global.json file is malformed.
	ErrInvalidGlobalJSON = zerr.New("invalid global.json")

	// ErrSdkNotFound is returned when no installed SDK matches the policy.
	ErrSdkNotFound = zerr.New("compatible sdk not found")
)
