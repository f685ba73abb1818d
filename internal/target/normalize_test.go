// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package target

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		target   string
		expected string
	}{
		{name: "relative path", target: "sheets/a.formula", expected: "/sheets/a.formula"},
		{name: "absolute path", target: "/sheets/a.formula", expected: "/sheets/a.formula"},
		{name: "file uri", target: "file:///sheets/b.csv", expected: "/sheets/b.csv"},
		{name: "other uri", target: "https://example.com/a.formula", expected: "https://example.com/a.formula"},
		{name: "inline formula", target: "=SUM(A1:A3)", expected: "=SUM(A1:A3)"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, Normalize(testCase.target))
		})
	}
}

func TestIsFormula(t *testing.T) {
	t.Parallel()
	require.True(t, IsFormula("=A1"))
	require.True(t, IsFormula("  =A1"))
	require.False(t, IsFormula("a.formula"))
	require.False(t, IsFormula(""))
}
