// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

const (
	CodeUnknownFatal                  = "F0000"
	CodeFileNotFound                  = "F0001"
	CodeUnsuportedFileSystemOperation = "F0002"
	CodePermissionDenied              = "F0003"
	CodeUnsupportedFileFormat         = "F0004"
	CodeUnexpectedEOF                 = "F0005"
	CodeSyntaxError                   = "F0101"
	CodeMissingEquals                 = "F0102"
	CodeNestingTooDeep                = "F0103"
	CodeTrailingInput                 = "F0104"
	CodeInvariantViolation            = "F0201"
	CodeExportFailure                 = "F0301"
)

const (
	CodeEOF = "_EOF_"
)

// Parse failures are reported per formula and do not stop a batch.
var (
	defaultNonFatal = map[string]bool{
		CodeSyntaxError:    true,
		CodeMissingEquals:  true,
		CodeNestingTooDeep: true,
		CodeTrailingInput:  true,
		CodeUnexpectedEOF:  true,
	}
)
