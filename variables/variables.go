/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package variables implements the remote variables-service pipeline (C7):
// the wire types for Figma-style variables and collections, and the
// normalizer that maps each variable to the shared model, keyed by its
// collection's default mode and indexed by mode name.
package variables

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Mode is one entry of a Collection's mode list.
type Mode struct {
	ModeID string `json:"mode_id"`
	Name   string `json:"name"`
}

// Collection groups variables under a set of named modes, one of which is
// the default.
type Collection struct {
	ID            string `json:"id"`
	Modes         []Mode `json:"modes"`
	DefaultModeID string `json:"default_mode_id"`
}

// ModeValue is one entry of a variable's values_by_mode: either a literal
// value or an alias to another variable by ID.
type ModeValue struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// modeEntry pairs a mode ID with its value, preserving the JSON object's
// original key order — §3 invariant 6's "first entry in insertion order"
// fallback depends on this, and Go's map type cannot provide it.
type modeEntry struct {
	ModeID string
	Value  ModeValue
}

// OrderedModeValues decodes a values_by_mode JSON object while preserving
// insertion order, since plain map[string]ModeValue would lose it.
type OrderedModeValues struct {
	entries []modeEntry
	index   map[string]int
}

// UnmarshalJSON decodes an object token-by-token to preserve key order.
func (o *OrderedModeValues) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("values_by_mode: expected object")
	}

	o.entries = nil
	o.index = make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("values_by_mode: expected string key")
		}

		var mv ModeValue
		if err := dec.Decode(&mv); err != nil {
			return err
		}

		o.index[key] = len(o.entries)
		o.entries = append(o.entries, modeEntry{ModeID: key, Value: mv})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Get returns the value for a given mode ID.
func (o *OrderedModeValues) Get(modeID string) (ModeValue, bool) {
	if o == nil {
		return ModeValue{}, false
	}
	idx, ok := o.index[modeID]
	if !ok {
		return ModeValue{}, false
	}
	return o.entries[idx].Value, true
}

// First returns the first mode entry in insertion order.
func (o *OrderedModeValues) First() (string, ModeValue, bool) {
	if o == nil || len(o.entries) == 0 {
		return "", ModeValue{}, false
	}
	return o.entries[0].ModeID, o.entries[0].Value, true
}

// Entries returns every (modeID, value) pair in insertion order.
func (o *OrderedModeValues) Entries() []modeEntry {
	if o == nil {
		return nil
	}
	return o.entries
}

// FigmaVariable is one variable as returned by the variables-service's
// /variables/local endpoint.
type FigmaVariable struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	VariableCollectionID string             `json:"variable_collection_id"`
	ResolvedType         string             `json:"resolved_type"`
	Description          string             `json:"description"`
	ValuesByMode         *OrderedModeValues `json:"values_by_mode"`
}

// VariablesResponse is the top-level shape of the /variables/local endpoint.
type VariablesResponse struct {
	Meta struct {
		Variables map[string]FigmaVariable `json:"variables"`
	} `json:"meta"`
}

// CollectionsResponse is the top-level shape of the /variable-collections
// endpoint.
type CollectionsResponse struct {
	Meta struct {
		VariableCollections map[string]Collection `json:"variableCollections"`
	} `json:"meta"`
}
