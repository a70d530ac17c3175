// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and guidance pages.
//
// ActionableError carries what operation failed, which resource was
// involved, and suggestions for fixing it; ErrorContext is its fluent
// builder. Issue values are markdown guidance pages for recurring
// situations (no manifest found, nothing activated, malformed manifest,
// config load failure), rendered with glamour for terminal display.
package issue
