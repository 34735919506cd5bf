// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"strings"

	"github.com/pkg/errors"

	"amazon-lp-mcp/types"
)

// Catalog holds the loaded principle set and transcripts. All fields are
// fixed at construction, so any number of concurrent readers is safe.
type Catalog struct {
	set types.PrincipleSet

	// byName maps lowercased principle name to its index in set.Principles.
	byName map[string]int

	// transcripts maps lowercased principle name to the entry, keeping the
	// document's original key as TranscriptEntry.Principle.
	transcripts map[string]types.TranscriptEntry
}

func newCatalog(set types.PrincipleSet, transcripts map[string]string) *Catalog {
	c := &Catalog{
		set:         set,
		byName:      make(map[string]int, len(set.Principles)),
		transcripts: make(map[string]types.TranscriptEntry, len(transcripts)),
	}

	for i, p := range set.Principles {
		c.byName[strings.ToLower(p.Name)] = i
	}
	for name, content := range transcripts {
		c.transcripts[strings.ToLower(name)] = types.TranscriptEntry{Principle: name, Content: content}
	}

	return c
}

// Principles returns the full ordered principle set with its introduction.
func (c *Catalog) Principles() types.PrincipleSet {
	return c.set
}

// SearchPrinciples returns every principle whose name or description contains
// term, case-insensitively, in presentation order. An empty term matches
// everything; no match yields an empty slice, not an error.
func (c *Catalog) SearchPrinciples(term string) []types.Principle {
	term = strings.ToLower(term)

	matches := make([]types.Principle, 0)
	for _, p := range c.set.Principles {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Principle looks up a principle by name, case-insensitively.
func (c *Catalog) Principle(name string) (*types.Principle, error) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(types.ErrNotFound, "no principle named %q", name)
	}
	p := c.set.Principles[i]
	return &p, nil
}

// Introduction returns the prefatory text for the principle set.
func (c *Catalog) Introduction() string {
	return c.set.Introduction
}

// Transcript looks up the transcript for a principle by name. The two
// negative outcomes both wrap ErrNotFound but carry distinct messages, so
// callers can tell "no such principle" from "principle has no transcript".
func (c *Catalog) Transcript(name string) (*types.TranscriptEntry, error) {
	entry, ok := c.transcripts[strings.ToLower(name)]
	if ok {
		return &entry, nil
	}

	if _, exists := c.byName[strings.ToLower(name)]; exists {
		return nil, errors.Wrapf(types.ErrNotFound, "principle %q has no transcript", name)
	}
	return nil, errors.Wrapf(types.ErrNotFound, "no principle named %q", name)
}

// PrinciplesWithTranscripts returns the names of principles that have a
// transcript, in principle-list order rather than transcript-storage order.
func (c *Catalog) PrinciplesWithTranscripts() []string {
	names := make([]string, 0, len(c.transcripts))
	for _, p := range c.set.Principles {
		if _, ok := c.transcripts[strings.ToLower(p.Name)]; ok {
			names = append(names, p.Name)
		}
	}
	return names
}

// SearchTranscripts returns an excerpt match for every transcript whose
// content contains term, case-insensitively, in principle-list order. The
// excerpt covers up to 120 characters either side of the first occurrence,
// cut at word boundaries, with "..." marking truncated ends. An empty term
// is rejected with ErrEmptySearchTerm.
func (c *Catalog) SearchTranscripts(term string) ([]types.TranscriptMatch, error) {
	if term == "" {
		return nil, types.ErrEmptySearchTerm
	}

	lowered := strings.ToLower(term)

	matches := make([]types.TranscriptMatch, 0)
	for _, p := range c.set.Principles {
		entry, ok := c.transcripts[strings.ToLower(p.Name)]
		if !ok {
			continue
		}

		idx := strings.Index(strings.ToLower(entry.Content), lowered)
		if idx < 0 {
			continue
		}

		matches = append(matches, types.TranscriptMatch{
			Principle: p.Name,
			Excerpt:   excerptAround(entry.Content, idx, len(lowered)),
		})
	}
	return matches, nil
}

var _ types.Catalog = (*Catalog)(nil)
