// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decoderFor resolves an encoding label. An empty label selects UTF-8. A
// leading byte order mark always wins over the label.
func decoderFor(name string) (transform.Transformer, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, err
	}
	return unicode.BOMOverride(enc.NewDecoder()), nil
}

type decodedReadCloser struct {
	io.Reader
	io.Closer
}

// decode wraps rc so that reads return UTF-8 text.
func decode(rc io.ReadCloser, name string) (io.ReadCloser, error) {
	t, err := decoderFor(name)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return &decodedReadCloser{
		Reader: transform.NewReader(rc, t),
		Closer: rc,
	}, nil
}
