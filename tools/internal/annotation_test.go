// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package internal

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestQueryAnnotations(t *testing.T) {
	got := QueryAnnotations("Get principle")

	want := mcp.ToolAnnotation{
		Title:           "Get principle",
		ReadOnlyHint:    mcp.ToBoolPtr(true),
		DestructiveHint: mcp.ToBoolPtr(false),
		IdempotentHint:  mcp.ToBoolPtr(true),
		OpenWorldHint:   mcp.ToBoolPtr(false),
	}

	if got.Title != want.Title {
		t.Errorf("Expected title %q, got %q", want.Title, got.Title)
	}
	if *got.ReadOnlyHint != *want.ReadOnlyHint {
		t.Errorf("Expected ReadOnlyHint %v, got %v", *want.ReadOnlyHint, *got.ReadOnlyHint)
	}
	if *got.DestructiveHint != *want.DestructiveHint {
		t.Errorf("Expected DestructiveHint %v, got %v", *want.DestructiveHint, *got.DestructiveHint)
	}
	if *got.IdempotentHint != *want.IdempotentHint {
		t.Errorf("Expected IdempotentHint %v, got %v", *want.IdempotentHint, *got.IdempotentHint)
	}
	if *got.OpenWorldHint != *want.OpenWorldHint {
		t.Errorf("Expected OpenWorldHint %v, got %v", *want.OpenWorldHint, *got.OpenWorldHint)
	}
}
