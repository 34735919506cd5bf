// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package types

// Principle is a single Amazon Leadership Principle. Name doubles as the
// display title and the unique identifier within a loaded set.
type Principle struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PrincipleSet is the full ordered principle list plus the introduction that
// accompanies it. Order is the canonical presentation order from the source
// document and is preserved by every operation that returns principles.
type PrincipleSet struct {
	Introduction string      `json:"introduction"`
	Principles   []Principle `json:"principles"`
}

// TranscriptEntry is the transcript content associated with one principle.
type TranscriptEntry struct {
	Principle string `json:"principle"`
	Content   string `json:"content"`
}

// TranscriptMatch is a single transcript-search hit: the owning principle
// plus an excerpt around the matched term.
type TranscriptMatch struct {
	Principle string `json:"principle"`
	Excerpt   string `json:"excerpt"`
}
