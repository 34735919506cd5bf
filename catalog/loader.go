// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

// Package catalog loads the two static leadership-principle documents and
// answers lookup and substring-search queries against them. A Catalog is
// immutable after construction and safe for concurrent use.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"amazon-lp-mcp/types"
)

// principleDoc mirrors one entry of the principles document. Pointer fields
// distinguish an absent field from an empty one.
type principleDoc struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type principlesDoc struct {
	Introduction *string        `json:"introduction"`
	Principles   []principleDoc `json:"principles"`
}

// Load constructs a Catalog from the raw bytes of the principles and
// transcripts documents. Loading is all-or-nothing: any error means the
// caller must not serve requests.
func Load(principlesJSON, transcriptsJSON []byte) (*Catalog, error) {
	return load(principlesJSON, transcriptsJSON, "principles document", "transcripts document")
}

// LoadFiles constructs a Catalog from the two documents at the given paths.
// A missing or unreadable file yields a *types.DataLoadError.
func LoadFiles(principlesPath, transcriptsPath string) (*Catalog, error) {
	principlesJSON, err := os.ReadFile(principlesPath)
	if err != nil {
		return nil, &types.DataLoadError{Path: principlesPath, Err: err}
	}

	transcriptsJSON, err := os.ReadFile(transcriptsPath)
	if err != nil {
		return nil, &types.DataLoadError{Path: transcriptsPath, Err: err}
	}

	return load(principlesJSON, transcriptsJSON, principlesPath, transcriptsPath)
}

func load(principlesJSON, transcriptsJSON []byte, principlesPath, transcriptsPath string) (*Catalog, error) {
	set, err := parsePrinciples(principlesJSON, principlesPath)
	if err != nil {
		return nil, err
	}

	transcripts, err := parseTranscripts(transcriptsJSON, transcriptsPath)
	if err != nil {
		return nil, err
	}

	if err := validateTranscriptKeys(set, transcripts, transcriptsPath); err != nil {
		return nil, err
	}

	return newCatalog(set, transcripts), nil
}

func parsePrinciples(data []byte, path string) (types.PrincipleSet, error) {
	var doc principlesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.PrincipleSet{}, classifyUnmarshalError(err, path)
	}

	if doc.Introduction == nil {
		return types.PrincipleSet{}, &types.SchemaError{Path: path, Reason: `missing required field "introduction"`}
	}
	if doc.Principles == nil {
		return types.PrincipleSet{}, &types.SchemaError{Path: path, Reason: `missing required field "principles"`}
	}
	if len(doc.Principles) == 0 {
		return types.PrincipleSet{}, &types.SchemaError{Path: path, Reason: `"principles" must not be empty`}
	}

	set := types.PrincipleSet{
		Introduction: *doc.Introduction,
		Principles:   make([]types.Principle, 0, len(doc.Principles)),
	}

	seen := make(map[string]struct{}, len(doc.Principles))
	for i, p := range doc.Principles {
		if p.Name == nil || *p.Name == "" {
			return types.PrincipleSet{}, &types.SchemaError{Path: path, Reason: fmt.Sprintf("principle %d is missing required field %q", i, "name")}
		}
		if p.Description == nil {
			return types.PrincipleSet{}, &types.SchemaError{Path: path, Reason: fmt.Sprintf("principle %q is missing required field %q", *p.Name, "description")}
		}

		key := strings.ToLower(*p.Name)
		if _, dup := seen[key]; dup {
			return types.PrincipleSet{}, &types.SchemaError{Path: path, Reason: fmt.Sprintf("duplicate principle name %q", *p.Name)}
		}
		seen[key] = struct{}{}

		set.Principles = append(set.Principles, types.Principle{Name: *p.Name, Description: *p.Description})
	}

	return set, nil
}

func parseTranscripts(data []byte, path string) (map[string]string, error) {
	var transcripts map[string]string
	if err := json.Unmarshal(data, &transcripts); err != nil {
		return nil, classifyUnmarshalError(err, path)
	}
	// A literal null decodes to a nil map; a truncated file must not pass as
	// an empty transcript set.
	if transcripts == nil {
		return nil, &types.SchemaError{Path: path, Reason: "document is null, expected a mapping from principle name to transcript content"}
	}
	return transcripts, nil
}

// validateTranscriptKeys rejects transcript keys that do not match any loaded
// principle name. An orphan key would be retrievable by direct lookup yet
// invisible to the principle-ordered listing and search operations.
func validateTranscriptKeys(set types.PrincipleSet, transcripts map[string]string, path string) error {
	known := make(map[string]struct{}, len(set.Principles))
	for _, p := range set.Principles {
		known[strings.ToLower(p.Name)] = struct{}{}
	}

	for name := range transcripts {
		if _, ok := known[strings.ToLower(name)]; !ok {
			return &types.SchemaError{Path: path, Reason: fmt.Sprintf("transcript key %q does not match any principle name", name)}
		}
	}
	return nil
}

// classifyUnmarshalError separates "file corrupt" from "file well-formed but
// wrong shape": syntax errors become DataLoadError, type mismatches become
// SchemaError.
func classifyUnmarshalError(err error, path string) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &types.SchemaError{Path: path, Reason: err.Error()}
	}
	return &types.DataLoadError{Path: path, Err: err}
}
