// SPDX-License-Identifier: MPL-2.0

// Package cueutil wraps the CUE evaluation steps used for configuration
// validation: compile the embedded schema, compile the user's file, unify
// the two, validate, and decode. Error messages carry the offending file
// and a JSON-style path to the invalid field.
package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// DefaultMaxFileSize bounds the size of files accepted for CUE parsing.
// Configuration files are tiny; anything near this limit is garbage.
const DefaultMaxFileSize = 1 << 20

// CheckFileSize rejects data larger than maxSize.
func CheckFileSize(data []byte, maxSize int, filename string) error {
	if len(data) > maxSize {
		return fmt.Errorf("%s: file size %d exceeds maximum %d bytes", filename, len(data), maxSize)
	}
	return nil
}

// ValidateToMap validates data against the definition at schemaPath in
// schema (e.g. "#Config") and decodes the unified value into a plain map.
// Validation is non-concrete so optional fields may stay absent.
func ValidateToMap(schema string, data []byte, schemaPath, filename string) (map[string]any, error) {
	if err := CheckFileSize(data, DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, root.Err())
	}

	unified := root.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return nil, FormatError(err, filename)
	}

	var out map[string]any
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, filename)
	}
	return out, nil
}

// FormatError rewrites a CUE error as "<file>: <path>: <message>" lines,
// one per underlying error.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}

	var lines []string
	for _, e := range cueErrors {
		pathStr := strings.Join(errors.Path(e), ".")
		msg := e.Error()
		// CUE sometimes repeats the path inside the message; strip it.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}
		if pathStr != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", pathStr, msg))
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filename, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filename, strings.Join(lines, "\n  "))
}
