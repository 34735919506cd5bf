// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

// Package instructions provides embedded agent-instructions.md content for
// MCP server integration, containing guidance for AI agents using the
// leadership-principles tools.
package instructions

import (
	_ "embed"
)

//go:embed agent-instructions.md
var instructions string

func Get() string {
	return instructions
}
