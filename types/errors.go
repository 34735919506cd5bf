// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound marks a query whose target does not exist. It is caller
	// data, never fatal.
	ErrNotFound = errors.New("not found")

	// ErrEmptySearchTerm marks a transcript search with an empty term.
	// Transcripts are long, so returning everything is not useful.
	ErrEmptySearchTerm = errors.New("search term must not be empty")
)

// DataLoadError means a source document is missing, unreadable, or not valid
// JSON. Fatal at startup: the server must not serve with partial data.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load data from %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// SchemaError means a source document parsed cleanly but does not have the
// required shape. Distinct from DataLoadError so callers can tell "file
// corrupt" from "file well-formed but wrong". Also fatal at startup.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid schema in %s: %s", e.Path, e.Reason)
}
