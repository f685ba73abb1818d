// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"gopkg.microglot.org/formula.go/internal/exc"
)

// Config holds the settings that may be given in a YAML file instead of on
// the command line. Zero values mean "not set".
type Config struct {
	Roots    []string `yaml:"roots"`
	Format   string   `yaml:"format"`
	MaxDepth int      `yaml:"max_depth"`
	Encoding string   `yaml:"encoding"`
	Refs     bool     `yaml:"refs"`
	Verbose  bool     `yaml:"verbose"`
}

// Load reads a configuration from path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, exc.Wrap(exc.Location{URI: path}, exc.CodeFileNotFound, err)
		}
		return nil, exc.WrapUnknown(exc.Location{URI: path}, err)
	}
	defer f.Close()
	return Decode(path, f)
}

// Decode reads a configuration from r. Unknown keys are an error. An empty
// document yields the zero Config.
func Decode(uri string, r io.Reader) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		loc := exc.Location{URI: uri}
		var terr *yaml.TypeError
		if errors.As(err, &terr) {
			return nil, exc.New(loc, exc.CodeUnsupportedFileFormat, fmt.Sprintf("invalid configuration: %v", terr.Errors))
		}
		return nil, exc.Wrap(loc, exc.CodeUnsupportedFileFormat, err)
	}
	if c.MaxDepth < 0 {
		return nil, exc.New(exc.Location{URI: uri}, exc.CodeUnsupportedFileFormat, fmt.Sprintf("max_depth must be positive, got %d", c.MaxDepth))
	}
	return c, nil
}
