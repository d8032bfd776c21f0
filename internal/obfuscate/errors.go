package obfuscate

import "errors"

var (
	// ErrParse is returned when one or more project files fail to parse
	// before the transform begins. Fatal for the whole run.
	ErrParse = errors.New("obfuscate: parse error")

	// ErrValidation is returned when a rewritten file fails to re-parse.
	// Fatal for the whole run; already-written files are not reverted.
	ErrValidation = errors.New("obfuscate: rewritten output failed validation")

	// ErrIO is returned when reading or writing a project file fails.
	ErrIO = errors.New("obfuscate: i/o error")
)
