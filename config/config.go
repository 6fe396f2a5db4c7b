/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the token ingest
// pipeline: a list of sources, each either a DTCG file/URL or a Figma
// variables-service file key.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// SourceKind is the closed set of ingest source types a SourceSpec may name.
type SourceKind string

const (
	KindDTCG  SourceKind = "dtcg"
	KindFigma SourceKind = "figma"
)

// Config is the top-level ingest configuration: an ordered list of sources,
// each ingested independently.
type Config struct {
	// Sources lists the token sources to ingest, in order.
	Sources []SourceSpec `yaml:"sources" json:"sources"`
}

// SourceSpec describes one ingest source. Exactly one of Path/URL is set
// for a dtcg source; FileKey is required for a figma source.
type SourceSpec struct {
	// Type selects the importer: "dtcg" or "figma". Defaults to "dtcg" when
	// unmarshaled from a bare string (shorthand for a local file path).
	Type SourceKind `yaml:"type" json:"type"`

	// Name overrides the token set's display name.
	Name string `yaml:"name" json:"name"`

	// DTCG fields. Exactly one of Path, URL must be set.
	Path string `yaml:"path" json:"path"`
	URL  string `yaml:"url" json:"url"`

	// Figma fields.
	FileKey   string `yaml:"fileKey" json:"fileKey"`
	APIKeyEnv string `yaml:"apiKeyEnv" json:"apiKeyEnv"`
	BaseURL   string `yaml:"baseURL" json:"baseURL"`
}

// UnmarshalYAML handles both string and object forms for SourceSpec: a bare
// scalar is shorthand for a local DTCG file path.
func (s *SourceSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Type = KindDTCG
		s.Path = node.Value
		return nil
	}

	type rawSourceSpec SourceSpec
	if err := node.Decode((*rawSourceSpec)(s)); err != nil {
		return err
	}
	if s.Type == "" {
		s.Type = KindDTCG
	}
	return nil
}

// UnmarshalJSON handles both string and object forms for SourceSpec.
func (s *SourceSpec) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Type = KindDTCG
		s.Path = str
		return nil
	}

	type rawSourceSpec SourceSpec
	if err := json.Unmarshal(data, (*rawSourceSpec)(s)); err != nil {
		return err
	}
	if s.Type == "" {
		s.Type = KindDTCG
	}
	return nil
}

// Default returns an empty configuration.
func Default() *Config {
	return &Config{}
}

// DTCGSources returns the sources of type dtcg, in declared order.
func (c *Config) DTCGSources() []SourceSpec {
	var out []SourceSpec
	for _, s := range c.Sources {
		if s.Type == KindDTCG {
			out = append(out, s)
		}
	}
	return out
}

// FigmaSources returns the sources of type figma, in declared order.
func (c *Config) FigmaSources() []SourceSpec {
	var out []SourceSpec
	for _, s := range c.Sources {
		if s.Type == KindFigma {
			out = append(out, s)
		}
	}
	return out
}
