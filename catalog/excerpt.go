// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package catalog

import "strings"

// excerptRadius is how many bytes of context to keep on each side of a
// transcript match before snapping to word boundaries.
const excerptRadius = 120

// excerptAround cuts a window out of content around the match at [idx,
// idx+matchLen). The window extends excerptRadius bytes each side, then
// grows outward to the enclosing word boundaries so no word is split.
// Truncated ends are marked with "...".
func excerptAround(content string, idx, matchLen int) string {
	start := idx - excerptRadius
	if start <= 0 {
		start = 0
	} else if sp := strings.LastIndexByte(content[:start], ' '); sp >= 0 {
		start = sp + 1
	} else {
		start = 0
	}

	end := idx + matchLen + excerptRadius
	if end >= len(content) {
		end = len(content)
	} else if sp := strings.IndexByte(content[end:], ' '); sp >= 0 {
		end += sp
	} else {
		end = len(content)
	}

	excerpt := strings.TrimSpace(content[start:end])
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(content) {
		excerpt += "..."
	}
	return excerpt
}
