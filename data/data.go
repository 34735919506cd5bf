// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

// Package data embeds the default leadership-principles and transcripts
// documents so the server binary is self-contained when no data directory
// override is given.
package data

import (
	_ "embed"
)

//go:embed amazon-lp.json
var Principles []byte

//go:embed transcripts.json
var Transcripts []byte
