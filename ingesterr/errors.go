/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package ingesterr provides the error taxonomy shared by every importer,
// grounded on the teacher's schema/errors.go sentinel-error idiom: three
// categories (§7) - structural/configuration, transport/load, and soft
// per-token failures (which never become Go errors; see importer.Result).
package ingesterr

import "errors"

// Sentinel errors of the pipeline. The importers wrap the two locator
// errors in a ConfigError; ErrCircularReference and ErrUnresolvedReference
// are not returned by any function in this module.
var (
	// ErrCircularReference indicates the cross-token validator (C9) found a
	// cycle in the alias graph.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrUnresolvedReference indicates an alias pointed at a name the
	// normalizer's own flattened/ingested token table doesn't contain.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrBothLocatorsSupplied indicates a DTCG source configuration error:
	// exactly one of path/url must be set (§4.8).
	ErrBothLocatorsSupplied = errors.New("exactly one of path or url must be supplied")

	// ErrNoLocatorSupplied is the complementary case: neither was set.
	ErrNoLocatorSupplied = errors.New("one of path or url must be supplied")
)

// ConfigError is a structural/configuration failure (§7 category 1,
// exit-class Validation). An importer raises it before any retrieval is
// attempted.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// NewConfigError wraps cause (which may be nil) in a ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{Message: message, Cause: cause}
}

// FatalError is a transport/load failure (§7 category 2, exit-class
// Fatal). Its Error() string carries the "DTCG import failed: " /
// "Figma import failed: " prefix the external interface (§6) requires.
type FatalError struct {
	Prefix string
	Cause  error
}

func (e *FatalError) Error() string {
	return e.Prefix + ": " + e.Cause.Error()
}

func (e *FatalError) Unwrap() error { return e.Cause }

// NewFatalError constructs a FatalError with the given source-specific
// prefix (e.g. "DTCG import failed" or "Figma import failed").
func NewFatalError(prefix string, cause error) *FatalError {
	return &FatalError{Prefix: prefix, Cause: cause}
}
