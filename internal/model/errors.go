package model

import "errors"

var (
	// ErrCancelled is returned when the user aborts an interactive prompt.
	ErrCancelled = errors.New("operation cancelled")
	// ErrNotFound is returned when a target file or directory cannot be located.
	ErrNotFound = errors.New("not found")
	// ErrIO wraps read and write failures on project files.
	ErrIO = errors.New("i/o failure")
	// ErrMalformedJSON is returned when a manifest cannot be parsed as a JSON object.
	ErrMalformedJSON = errors.New("malformed JSON document")
	// ErrMissingObject is returned when the target object field is missing or is not an object.
	ErrMissingObject = errors.New("target object field missing or wrong type")
	// ErrRegistry wraps package registry lookup failures.
	ErrRegistry = errors.New("registry lookup failed")
	// ErrScaffoldFailed is returned when the scaffolding command exits non-zero.
	ErrScaffoldFailed = errors.New("scaffolding failed")
	// ErrUnknownFramework is returned for unsupported framework identifiers.
	ErrUnknownFramework = errors.New("unknown framework")
	// ErrUnknownFeature is returned for unsupported feature identifiers.
	ErrUnknownFeature = errors.New("unknown feature")
)
