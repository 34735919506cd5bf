// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExcerptShortContentReturnedWhole(t *testing.T) {
	t.Parallel()

	content := "Trust is earned in drops and lost in buckets."
	idx := strings.Index(strings.ToLower(content), "drops")

	excerpt := excerptAround(content, idx, len("drops"))
	require.Equal(t, content, excerpt)
}

func TestExcerptTruncatesLongContent(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("leading filler words before the interesting part ")
	}
	b.WriteString("the needle sits here")
	for i := 0; i < 50; i++ {
		b.WriteString(" trailing filler words after the interesting part")
	}
	content := b.String()

	idx := strings.Index(content, "needle")
	excerpt := excerptAround(content, idx, len("needle"))

	require.Contains(t, excerpt, "needle")
	require.True(t, strings.HasPrefix(excerpt, "..."))
	require.True(t, strings.HasSuffix(excerpt, "..."))
	// Window plus boundary slack stays well under the full content.
	require.Less(t, len(excerpt), 400)

	// Cuts land on word boundaries: the inner text carries no half words
	// from the filler sentences.
	inner := strings.TrimSuffix(strings.TrimPrefix(excerpt, "..."), "...")
	for _, word := range strings.Fields(inner) {
		require.True(t,
			strings.Contains(content, word),
			"excerpt word %q not present in content", word)
	}
}

func TestExcerptAtContentEdges(t *testing.T) {
	t.Parallel()

	content := "needle " + strings.Repeat("filler words all the way down ", 20)

	excerpt := excerptAround(content, 0, len("needle"))
	require.True(t, strings.HasPrefix(excerpt, "needle"))
	require.False(t, strings.HasPrefix(excerpt, "..."))
	require.True(t, strings.HasSuffix(excerpt, "..."))
}
