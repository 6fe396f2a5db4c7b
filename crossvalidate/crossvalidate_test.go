/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package crossvalidate_test

import (
	"testing"

	"bennypowers.dev/tokenpipe/crossvalidate"
	"bennypowers.dev/tokenpipe/model"
)

func newSet(tokens ...*model.NormalizedToken) *model.TokenSet {
	ts := model.NewTokenSet(model.TokenSetMetadata{Source: model.SourceDTCG})
	for _, tok := range tokens {
		ts.Put(tok)
	}
	return ts
}

func valueToken(name string, typ model.TokenType, value model.TokenValueOrAlias) *model.NormalizedToken {
	return &model.NormalizedToken{ID: model.NameToID(name), Name: name, Type: typ, Value: value}
}

func colorToken(name string) *model.NormalizedToken {
	return valueToken(name, model.TypeColor, model.NewColorValue(model.ColorValue{R: 1}))
}

func fullCoverageSet() []*model.NormalizedToken {
	return []*model.NormalizedToken{
		colorToken("color.brand"),
		valueToken("spacing.small", model.TypeSpacing, model.NewDimensionValue(model.DimensionValue{Value: 4, Unit: model.UnitPx})),
		valueToken("typography.heading", model.TypeTypography, model.NewTypographyValue(model.TypographyValue{FontFamily: "Inter"})),
		valueToken("border.radius.sm", model.TypeBorderRadius, model.NewBorderRadiusValue(model.BorderRadiusValue{Value: 4, Unit: model.RadiusUnitPx})),
		valueToken("shadow.card", model.TypeShadow, model.NewShadowValue(model.ShadowValue{})),
	}
}

func TestValidate_AllRequiredTypesPresent(t *testing.T) {
	ts := newSet(fullCoverageSet()...)
	result := crossvalidate.Validate(ts)
	if !result.Valid() {
		t.Fatalf("expected valid, got %+v", result)
	}
}

func TestValidate_MissingRequiredType(t *testing.T) {
	ts := newSet(colorToken("color.brand"))
	result := crossvalidate.Validate(ts)
	if result.Valid() {
		t.Fatalf("expected invalid when only color is present")
	}
	if len(result.MissingTypes) != len(model.RequiredTypes)-1 {
		t.Errorf("expected all-but-color missing, got %v", result.MissingTypes)
	}
}

func TestValidate_AliasTargetExists(t *testing.T) {
	tokens := fullCoverageSet()
	tokens = append(tokens, valueToken("color.accent", model.TypeColor, model.NewAlias("color.brand")))
	ts := newSet(tokens...)
	result := crossvalidate.Validate(ts)
	if len(result.AliasErrors) != 0 {
		t.Errorf("expected no alias errors, got %v", result.AliasErrors)
	}
}

func TestValidate_AliasTargetMissing(t *testing.T) {
	tokens := fullCoverageSet()
	tokens = append(tokens, valueToken("color.accent", model.TypeColor, model.NewAlias("color.nonexistent")))
	ts := newSet(tokens...)
	result := crossvalidate.Validate(ts)
	if len(result.AliasErrors) != 1 {
		t.Fatalf("expected 1 alias error, got %v", result.AliasErrors)
	}
	if result.AliasErrors[0].Reference != "color.nonexistent" {
		t.Errorf("Reference = %q, want color.nonexistent", result.AliasErrors[0].Reference)
	}
}

func TestValidate_AliasTargetMissingInMode(t *testing.T) {
	tokens := fullCoverageSet()
	withMode := colorToken("color.surface")
	withMode.Modes = map[string]model.TokenValueOrAlias{
		"dark": model.NewAlias("color.nonexistent"),
	}
	tokens = append(tokens, withMode)
	ts := newSet(tokens...)
	result := crossvalidate.Validate(ts)
	if len(result.AliasErrors) != 1 {
		t.Fatalf("expected 1 alias error, got %v", result.AliasErrors)
	}
	if result.AliasErrors[0].TokenName != "color.surface (mode: dark)" {
		t.Errorf("TokenName = %q, want the mode-qualified name", result.AliasErrors[0].TokenName)
	}
}

func TestValidate_NoCycleAmongAliases(t *testing.T) {
	tokens := fullCoverageSet()
	tokens = append(tokens,
		valueToken("color.a", model.TypeColor, model.NewAlias("color.brand")),
		valueToken("color.b", model.TypeColor, model.NewAlias("color.a")),
	)
	ts := newSet(tokens...)
	result := crossvalidate.Validate(ts)
	if len(result.Cycles) != 0 {
		t.Errorf("expected no cycles, got %v", result.Cycles)
	}
}

func TestValidate_DirectCycle(t *testing.T) {
	tokens := fullCoverageSet()
	tokens = append(tokens,
		valueToken("color.a", model.TypeColor, model.NewAlias("color.b")),
		valueToken("color.b", model.TypeColor, model.NewAlias("color.a")),
	)
	ts := newSet(tokens...)
	result := crossvalidate.Validate(ts)
	if len(result.Cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %v", result.Cycles)
	}
	cycle := result.Cycles[0]
	if len(cycle) != 3 || cycle[0] != cycle[len(cycle)-1] {
		t.Errorf("expected a closed cycle [X, Y, X], got %v", cycle)
	}
}

func TestValidate_SelfReferenceIsACycle(t *testing.T) {
	tokens := fullCoverageSet()
	tokens = append(tokens, valueToken("color.a", model.TypeColor, model.NewAlias("color.a")))
	ts := newSet(tokens...)
	result := crossvalidate.Validate(ts)
	if len(result.Cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %v", result.Cycles)
	}
}
