// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"log/slog"
	"os"
)

// Resolver composes the scanner with one or more manifest formats to
// produce the full set of dependency names declared under a root.
type Resolver struct {
	formats []Format
	logger  *slog.Logger
}

// NewResolver creates a Resolver over the given formats. A nil logger
// falls back to slog.Default(); empty formats fall back to
// DefaultFormats().
func NewResolver(logger *slog.Logger, formats ...Format) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if len(formats) == 0 {
		formats = DefaultFormats()
	}
	return &Resolver{formats: formats, logger: logger}
}

// Resolve scans root for every registered format and returns the union of
// all extracted dependency sets.
//
// Outcomes are three-way and each emits a distinct log line: no manifest
// anywhere under root returns ErrNoManifest (a valid empty outcome);
// a manifest that fails to parse aborts the whole resolution for this
// root with a MalformedManifestError; otherwise the merged set is
// returned. Callers that only care about "are there dependencies here"
// treat any error as an empty result.
func (r *Resolver) Resolve(root string) (DependencySet, error) {
	deps := make(DependencySet)
	found := 0

	for _, format := range r.formats {
		for _, path := range Scan(root, format.Filename, format.IgnoreDirs) {
			data, err := os.ReadFile(path)
			if err != nil {
				// Raced against deletion; treat as not found.
				continue
			}
			found++

			parsed, err := format.Parse(data)
			if err != nil {
				malformed := &MalformedManifestError{Path: path, Format: format.ID, Cause: err}
				r.logger.Warn("manifest parse error", "root", root, "path", path, "format", format.ID, "error", err)
				return nil, malformed
			}
			deps.Merge(parsed)
		}
	}

	if found == 0 {
		r.logger.Info("no manifest found", "root", root)
		return nil, ErrNoManifest
	}

	r.logger.Info("manifest dependencies resolved", "root", root, "manifests", found, "dependencies", len(deps))
	return deps, nil
}
