package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidEnvironmentTable is returned when a variable scope is built from a value that is not a mapping.
	ErrInvalidEnvironmentTable = zerr.New("environment table is not a mapping")

	// ErrInvalidEnvironmentParent is returned when a variable scope is given a parent that is not an Environment.
	ErrInvalidEnvironmentParent = zerr.New("environment parent is neither nil nor an Environment")

	// ErrTargetAlreadyExists is returned when attempting to register a target with a name that already exists.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrTargetNotFound is returned when a requested target is not declared in the build file.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrCycleDetected is returned when a target transitively depends on itself.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrCommandFailed is returned in strict mode when a dispatched command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildFailed is returned by the application layer when a build does not complete.
	ErrBuildFailed = zerr.New("build failed")

	// ErrCommandBeforeTarget is returned when a build file declares a command before any rule.
	ErrCommandBeforeTarget = zerr.New("found command before target")

	// ErrInvalidAssignment is returned when a variable assignment has no name.
	ErrInvalidAssignment = zerr.New("invalid variable assignment")

	// ErrInvalidRule is returned when a rule line has no target name.
	ErrInvalidRule = zerr.New("invalid rule")

	// ErrBuildFileNotFound is returned when no build file can be discovered.
	ErrBuildFileNotFound = zerr.New("could not find RMakefile or rmake.yaml")

	// ErrBuildFileReadFailed is returned when the build file cannot be read.
	ErrBuildFileReadFailed = zerr.New("failed to read build file")

	// ErrBuildFileParseFailed is returned when the build file cannot be parsed.
	ErrBuildFileParseFailed = zerr.New("failed to parse build file")

	// ErrInvalidPattern is returned when a target listing pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid target pattern")

	// ErrStoreReadFailed is returned when the build journal cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build journal")

	// ErrStoreWriteFailed is returned when the build journal cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build journal")
)
