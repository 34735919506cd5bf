// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"amazon-lp-mcp/types"
)

func writeDataDir(t *testing.T, principlesJSON, transcriptsJSON string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	principlesPath := filepath.Join(dir, "amazon-lp.json")
	transcriptsPath := filepath.Join(dir, "transcripts.json")
	require.NoError(t, os.WriteFile(principlesPath, []byte(principlesJSON), 0o644))
	require.NoError(t, os.WriteFile(transcriptsPath, []byte(transcriptsJSON), 0o644))
	return principlesPath, transcriptsPath
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	principlesPath, transcriptsPath := writeDataDir(t, fixturePrinciples, fixtureTranscripts)

	c, err := LoadFiles(principlesPath, transcriptsPath)
	require.NoError(t, err)
	require.Len(t, c.Principles().Principles, 4)
}

func TestLoadFilesMissingFile(t *testing.T) {
	t.Parallel()

	principlesPath, transcriptsPath := writeDataDir(t, fixturePrinciples, fixtureTranscripts)

	var loadErr *types.DataLoadError

	_, err := LoadFiles(filepath.Join(t.TempDir(), "nope.json"), transcriptsPath)
	require.True(t, errors.As(err, &loadErr))

	_, err = LoadFiles(principlesPath, filepath.Join(t.TempDir(), "nope.json"))
	require.True(t, errors.As(err, &loadErr))
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		principles  string
		transcripts string
		wantLoadErr bool
		wantReason  string
	}{
		{
			name:        "principles not valid JSON",
			principles:  `{"introduction": "x", "principles": [`,
			transcripts: `{}`,
			wantLoadErr: true,
		},
		{
			name:        "transcripts not valid JSON",
			principles:  fixturePrinciples,
			transcripts: `{"Customer Obsession": `,
			wantLoadErr: true,
		},
		{
			name:        "principles wrong shape",
			principles:  `{"introduction": "x", "principles": "not a list"}`,
			transcripts: `{}`,
			wantReason:  "",
		},
		{
			name:        "missing introduction",
			principles:  `{"principles": []}`,
			transcripts: `{}`,
			wantReason:  `missing required field "introduction"`,
		},
		{
			name:        "missing principles",
			principles:  `{"introduction": "x"}`,
			transcripts: `{}`,
			wantReason:  `missing required field "principles"`,
		},
		{
			name:        "empty principle list",
			principles:  `{"introduction": "x", "principles": []}`,
			transcripts: `{}`,
			wantReason:  `"principles" must not be empty`,
		},
		{
			name:        "principle missing name",
			principles:  `{"introduction": "x", "principles": [{"description": "d"}]}`,
			transcripts: `{}`,
			wantReason:  `principle 0 is missing required field "name"`,
		},
		{
			name:        "principle missing description",
			principles:  `{"introduction": "x", "principles": [{"name": "Think Big"}]}`,
			transcripts: `{}`,
			wantReason:  `principle "Think Big" is missing required field "description"`,
		},
		{
			name:        "duplicate principle names differing only by case",
			principles:  `{"introduction": "x", "principles": [{"name": "Think Big", "description": "d"}, {"name": "THINK BIG", "description": "d"}]}`,
			transcripts: `{}`,
			wantReason:  `duplicate principle name "THINK BIG"`,
		},
		{
			name:        "transcripts with non-string content",
			principles:  fixturePrinciples,
			transcripts: `{"Customer Obsession": 42}`,
			wantReason:  "",
		},
		{
			name:        "transcripts document is null",
			principles:  fixturePrinciples,
			transcripts: `null`,
			wantReason:  "document is null, expected a mapping from principle name to transcript content",
		},
		{
			name:        "transcript key matching no principle",
			principles:  fixturePrinciples,
			transcripts: `{"Frugality": "An orphan transcript."}`,
			wantReason:  `transcript key "Frugality" does not match any principle name`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load([]byte(tc.principles), []byte(tc.transcripts))
			require.Error(t, err)

			if tc.wantLoadErr {
				var loadErr *types.DataLoadError
				require.True(t, errors.As(err, &loadErr), "expected DataLoadError, got %v", err)
				return
			}

			var schemaErr *types.SchemaError
			require.True(t, errors.As(err, &schemaErr), "expected SchemaError, got %v", err)
			if tc.wantReason != "" {
				require.Equal(t, tc.wantReason, schemaErr.Reason)
			}
		})
	}
}
