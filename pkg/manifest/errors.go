// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrNoManifest is returned by Resolver.Resolve when no manifest file
	// of any registered format exists under the root. It is a valid empty
	// outcome, not a failure.
	ErrNoManifest = errors.New("no manifest found")

	// ErrMalformedManifest is the sentinel error wrapped by
	// MalformedManifestError.
	ErrMalformedManifest = errors.New("malformed manifest")
)

// MalformedManifestError is returned when a manifest file exists but its
// content is not valid structured data for the expected format. It wraps
// ErrMalformedManifest for errors.Is() compatibility.
type MalformedManifestError struct {
	// Path is the manifest file that failed to parse.
	Path string

	// Format is the format id that attempted the parse.
	Format string

	// Cause is the underlying decode error.
	Cause error
}

// Error implements the error interface.
func (e *MalformedManifestError) Error() string {
	return fmt.Sprintf("malformed %s manifest %s: %v", e.Format, e.Path, e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause so callers can
// match either with errors.Is.
func (e *MalformedManifestError) Unwrap() []error {
	return []error{ErrMalformedManifest, e.Cause}
}
