// Package errors provides the classified error type used across autotoc.
//
// Every failure that leaves the pipeline carries a category (config, validation,
// filesystem, internal) and a severity, so the CLI can pick an exit code and the
// caller of the library entry point can tell a fatal configuration problem apart
// from everything else.
//
// Example usage:
//
//	err := errors.ConfigError("content folder is empty").
//		WithContext("path", contentDir).
//		Build()
//
//	if errors.IsConfigError(err) {
//		// halt the documentation build
//	}
package errors
