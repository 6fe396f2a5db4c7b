/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package variables_test

import (
	"testing"

	"bennypowers.dev/tokenpipe/model"
	"bennypowers.dev/tokenpipe/variables"
)

func TestNormalize_DefaultModeFromCollection(t *testing.T) {
	v := decodeVariable(t, `{
		"id": "VariableID:1",
		"name": "color/brand",
		"resolved_type": "COLOR",
		"values_by_mode": {
			"mode-b": {"type": "VALUE", "value": "#000000"},
			"mode-a": {"type": "VALUE", "value": "#FFFFFF"}
		}
	}`)
	collection := &variables.Collection{ID: "coll-1", DefaultModeID: "mode-a"}
	modeNames := map[string]string{"mode-a": "Light", "mode-b": "Dark"}

	tok, warnings := variables.Normalize(v, collection, map[string]string{}, modeNames)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if tok.Value.Color == nil {
		t.Fatalf("expected a concrete default color value")
	}
	if tok.Value.Color.R != 1 {
		t.Errorf("expected default mode's value (#FFFFFF) to be chosen, got %+v", tok.Value.Color)
	}

	dark, ok := tok.Modes["Dark"]
	if !ok {
		t.Fatalf("expected a %q mode keyed by display name, got %v", "Dark", tok.Modes)
	}
	if dark.Color == nil || dark.Color.R != 0 {
		t.Errorf("expected Dark mode to carry #000000, got %+v", dark.Color)
	}
}

func TestNormalize_DefaultModeFallsBackToInsertionOrderWithoutCollection(t *testing.T) {
	v := decodeVariable(t, `{
		"id": "VariableID:1",
		"name": "color/brand",
		"resolved_type": "COLOR",
		"values_by_mode": {
			"mode-b": {"type": "VALUE", "value": "#000000"},
			"mode-a": {"type": "VALUE", "value": "#FFFFFF"}
		}
	}`)

	tok, _ := variables.Normalize(v, nil, map[string]string{}, map[string]string{})
	if tok.Value.Color == nil || tok.Value.Color.R != 0 {
		t.Errorf("expected the first-in-insertion-order mode (#000000) when no collection is available, got %+v", tok.Value.Color)
	}
}

func TestNormalize_Alias(t *testing.T) {
	v := decodeVariable(t, `{
		"id": "VariableID:2",
		"name": "color/accent",
		"resolved_type": "COLOR",
		"values_by_mode": {
			"mode-a": {"type": "ALIAS", "value": "VariableID:1"}
		}
	}`)
	idToName := map[string]string{"VariableID:1": "color.brand"}

	tok, warnings := variables.Normalize(v, nil, idToName, map[string]string{})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if !tok.Value.IsAlias() {
		t.Fatalf("expected an alias value")
	}
	if tok.Value.Reference != "color.brand" {
		t.Errorf("Reference = %q, want color.brand", tok.Value.Reference)
	}
}

func TestNormalize_AliasToUnknownIDWarns(t *testing.T) {
	v := decodeVariable(t, `{
		"id": "VariableID:2",
		"name": "color/accent",
		"resolved_type": "COLOR",
		"values_by_mode": {
			"mode-a": {"type": "ALIAS", "value": "VariableID:999"}
		}
	}`)

	tok, warnings := variables.Normalize(v, nil, map[string]string{}, map[string]string{})
	if tok != nil {
		t.Errorf("expected the variable to be skipped")
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
}

func TestNormalize_UnsupportedResolvedTypeWarns(t *testing.T) {
	v := decodeVariable(t, `{
		"id": "VariableID:3",
		"name": "effect/weird",
		"resolved_type": "EFFECT",
		"values_by_mode": {
			"mode-a": {"type": "VALUE", "value": "x"}
		}
	}`)

	tok, warnings := variables.Normalize(v, nil, map[string]string{}, map[string]string{})
	if tok != nil {
		t.Errorf("expected the variable to be skipped")
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
}

func TestNormalize_NumberAndBooleanAndString(t *testing.T) {
	tests := []struct {
		name         string
		resolvedType string
		rawValue     string
		wantType     model.TokenType
	}{
		{name: "float", resolvedType: "FLOAT", rawValue: `8`, wantType: model.TypeNumber},
		{name: "string", resolvedType: "STRING", rawValue: `"hello"`, wantType: model.TypeString},
		{name: "boolean", resolvedType: "BOOLEAN", rawValue: `true`, wantType: model.TypeBoolean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `{
				"id": "VariableID:1",
				"name": "misc/value",
				"resolved_type": "` + tt.resolvedType + `",
				"values_by_mode": {
					"mode-a": {"type": "VALUE", "value": ` + tt.rawValue + `}
				}
			}`
			v := decodeVariable(t, raw)
			tok, warnings := variables.Normalize(v, nil, map[string]string{}, map[string]string{})
			if len(warnings) != 0 {
				t.Fatalf("unexpected warnings: %v", warnings)
			}
			if tok.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", tok.Type, tt.wantType)
			}
		})
	}
}
