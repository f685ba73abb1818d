// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/formula.go/internal/exc"
)

func TestDecode(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		input     string
		expected  *Config
		errorCode string
	}{
		{
			name:     "empty",
			input:    "",
			expected: &Config{},
		},
		{
			name: "all",
			input: `roots: [sheets, /shared]
format: json
max_depth: 64
encoding: windows-1252
refs: true
verbose: true
`,
			expected: &Config{
				Roots:    []string{"sheets", "/shared"},
				Format:   "json",
				MaxDepth: 64,
				Encoding: "windows-1252",
				Refs:     true,
				Verbose:  true,
			},
		},
		{
			name:      "unknown key",
			input:     "depth: 3\n",
			errorCode: exc.CodeUnsupportedFileFormat,
		},
		{
			name:      "wrong type",
			input:     "max_depth: deep\n",
			errorCode: exc.CodeUnsupportedFileFormat,
		},
		{
			name:      "negative depth",
			input:     "max_depth: -1\n",
			errorCode: exc.CodeUnsupportedFileFormat,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			c, err := Decode("/formulac.yaml", strings.NewReader(testCase.input))
			if testCase.errorCode != "" {
				require.Error(t, err)
				require.Equal(t, testCase.errorCode, err.(exc.Exception).Code())
				require.Equal(t, "/formulac.yaml", err.(exc.Exception).Location().URI)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testCase.expected, c)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "formulac.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: tree\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "tree", c.Format)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	require.Equal(t, exc.CodeFileNotFound, err.(exc.Exception).Code())
}
