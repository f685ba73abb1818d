// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package target

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Normalize processes a given compile target and converts it into a standard
// form.
//
// Targets may be any valid URI or file path. When the target is a file path or
// a file URI then we convert the paths to an absolute form. All non-file URIs
// are left as-is with the expectation that they will be handled by some other
// implementation. Inline formulas are returned unchanged.
func Normalize(target string) string {
	if IsFormula(target) {
		return target
	}
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "" && u.Scheme != "file") {
		return target
	}
	if u.Scheme == "file" {
		target = u.Path
	}
	if !filepath.IsAbs(target) {
		return filepath.Join("/", target)
	}
	return target
}

// IsFormula reports whether target is an inline formula rather than a path.
func IsFormula(target string) bool {
	return strings.HasPrefix(strings.TrimSpace(target), "=")
}
