/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package model defines the normalized design-token data model that every
// importer (DTCG, variables-service) converges on. It is the interchange
// format: parsers and normalizers produce it, the cross-token validator
// consumes it, and nothing downstream of an ingest invocation mutates it.
package model

import (
	"fmt"
	"strings"
)

// TokenType is the closed set of normalized token kinds.
type TokenType string

const (
	TypeColor        TokenType = "color"
	TypeSpacing      TokenType = "spacing"
	TypeTypography   TokenType = "typography"
	TypeBorderRadius TokenType = "borderRadius"
	TypeShadow       TokenType = "shadow"
	TypeDimension    TokenType = "dimension"
	TypeNumber       TokenType = "number"
	TypeString       TokenType = "string"
	TypeBoolean      TokenType = "boolean"
)

// RequiredTypes are the token types the cross-token validator (C9) requires
// at least one representative of.
var RequiredTypes = []TokenType{
	TypeColor, TypeSpacing, TypeTypography, TypeBorderRadius, TypeShadow,
}

// ColorValue is a normalized RGBA color. All channels are floats in [0,1];
// integers are never stored (design note "Color RGBA normalization").
type ColorValue struct {
	R, G, B float64
	A       *float64 // nil means fully opaque (1.0); retained for optional emission.
}

// Alpha returns the effective alpha channel, defaulting to 1.0 when absent.
func (c ColorValue) Alpha() float64 {
	if c.A == nil {
		return 1.0
	}
	return *c.A
}

// DimensionUnit is the closed unit set for DimensionValue.
type DimensionUnit string

const (
	UnitPx  DimensionUnit = "px"
	UnitRem DimensionUnit = "rem"
	UnitEm  DimensionUnit = "em"
	UnitPt  DimensionUnit = "pt"
)

// DimensionValue is a normalized <number><unit> literal.
type DimensionValue struct {
	Value float64
	Unit  DimensionUnit
}

// BorderRadiusUnit is the closed unit set for BorderRadiusValue, which
// additionally permits "%" (see DESIGN.md Open Questions).
type BorderRadiusUnit string

const (
	RadiusUnitPx      BorderRadiusUnit = "px"
	RadiusUnitRem     BorderRadiusUnit = "rem"
	RadiusUnitEm      BorderRadiusUnit = "em"
	RadiusUnitPercent BorderRadiusUnit = "%"
)

// BorderRadiusCorners holds optional per-corner overrides.
type BorderRadiusCorners struct {
	TopLeft     *BorderRadiusValue
	TopRight    *BorderRadiusValue
	BottomRight *BorderRadiusValue
	BottomLeft  *BorderRadiusValue
}

// BorderRadiusValue is a normalized border-radius literal, optionally with
// per-corner overrides.
type BorderRadiusValue struct {
	Value   float64
	Unit    BorderRadiusUnit
	Corners *BorderRadiusCorners
}

// ShadowValue is a normalized shadow record.
type ShadowValue struct {
	Color            ColorValue
	OffsetX, OffsetY float64
	Blur             float64
	Spread           *float64
	Inset            *bool
}

// TypographyValue is a normalized composite typography record. FontFamily
// and FontSize are required to compose one; absence disqualifies the group
// from synthesis in the DTCG flattener (§4.5).
type TypographyValue struct {
	FontFamily string
	FontSize   DimensionValue

	// FontWeight carries either a numeric weight (int) or a named string
	// ("bold", "normal", ...). At most one of FontWeightNumber /
	// FontWeightName is populated; both are nil when no weight is given.
	FontWeightNumber *int
	FontWeightName   *string

	// LineHeight is either a unitless multiplier (LineHeightNumber) or a
	// dimensioned value (LineHeightDimension), matching §3's
	// `float | DimensionValue` union.
	LineHeightNumber    *float64
	LineHeightDimension *DimensionValue

	LetterSpacing  *DimensionValue
	TextCase       *string
	TextDecoration *string
}

// ValueKind distinguishes a concrete Value from a symbolic Alias.
type ValueKind int

const (
	KindValue ValueKind = iota
	KindAlias
)

// TokenValueOrAlias is the tagged sum described in §3/§9: either a concrete,
// type-correspondent payload, or a symbolic (unresolved) alias reference.
type TokenValueOrAlias struct {
	Kind ValueKind

	// Populated when Kind == KindValue. Exactly one field matching the
	// owning token's TokenType is set; the rest are zero.
	Bool       *bool
	Number     *float64
	Str        *string
	Color      *ColorValue
	Dimension  *DimensionValue
	Typography *TypographyValue
	Radius     *BorderRadiusValue
	Shadow     *ShadowValue

	// Populated when Kind == KindAlias: a syntactically valid, dot-separated
	// token name. Not required to exist in the token map at construction
	// time (invariant 4) — existence is a cross-validator (C9) concern.
	Reference string
}

// NewAlias constructs an alias reference. The reference is expected to
// already be a normalized dot-separated name; callers are responsible for
// that normalization (see dtcg.Normalize / variables.Normalize).
func NewAlias(reference string) TokenValueOrAlias {
	return TokenValueOrAlias{Kind: KindAlias, Reference: reference}
}

// NewBoolValue, NewNumberValue, ... are the single-place constructors design
// note "Two-model unification" calls for: each enforces the payload/type
// correspondence (invariant 3) so no call site has to get it right itself.

func NewBoolValue(b bool) TokenValueOrAlias {
	return TokenValueOrAlias{Kind: KindValue, Bool: &b}
}

func NewNumberValue(n float64) TokenValueOrAlias {
	return TokenValueOrAlias{Kind: KindValue, Number: &n}
}

func NewStringValue(s string) TokenValueOrAlias {
	return TokenValueOrAlias{Kind: KindValue, Str: &s}
}

func NewColorValue(c ColorValue) TokenValueOrAlias {
	return TokenValueOrAlias{Kind: KindValue, Color: &c}
}

func NewDimensionValue(d DimensionValue) TokenValueOrAlias {
	return TokenValueOrAlias{Kind: KindValue, Dimension: &d}
}

func NewTypographyValue(t TypographyValue) TokenValueOrAlias {
	return TokenValueOrAlias{Kind: KindValue, Typography: &t}
}

func NewBorderRadiusValue(r BorderRadiusValue) TokenValueOrAlias {
	return TokenValueOrAlias{Kind: KindValue, Radius: &r}
}

func NewShadowValue(s ShadowValue) TokenValueOrAlias {
	return TokenValueOrAlias{Kind: KindValue, Shadow: &s}
}

// IsAlias reports whether this is a symbolic alias rather than a value.
func (v TokenValueOrAlias) IsAlias() bool {
	return v.Kind == KindAlias
}

// NormalizedToken is a single entry in a TokenSet (§3).
type NormalizedToken struct {
	ID    string
	Name  string
	Type  TokenType
	Value TokenValueOrAlias

	// Modes maps a mode name to an alternate value. Per invariant 5, a
	// present Modes map always has at least one entry; an empty map must
	// be represented as nil.
	Modes map[string]TokenValueOrAlias

	Description string
	Metadata    map[string]any
}

// SourceKind identifies which importer produced a TokenSet.
type SourceKind string

const (
	SourceFigma SourceKind = "figma"
	SourceDTCG  SourceKind = "dtcg"
)

// TokenSetMetadata describes provenance of a TokenSet.
type TokenSetMetadata struct {
	Source      SourceKind
	Name        string
	Version     string
	Description string
}

// TokenSet is the aggregate result of a single ingest invocation.
type TokenSet struct {
	Tokens   map[string]*NormalizedToken
	Metadata TokenSetMetadata
}

// NewTokenSet creates an empty TokenSet with the given metadata.
func NewTokenSet(meta TokenSetMetadata) *TokenSet {
	return &TokenSet{
		Tokens:   make(map[string]*NormalizedToken),
		Metadata: meta,
	}
}

// NormalizeName lowercases a raw path and replaces slashes with dots and
// whitespace runs with a single hyphen, per the GLOSSARY's "Normalized
// name" definition. It is the single shared implementation both the DTCG
// and variables normalizers call (§4.6.1, §4.7.2).
func NormalizeName(raw string) string {
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, "/", ".")
	s = collapseWhitespace(s)
	return s
}

// collapseWhitespace replaces every run of whitespace with a single hyphen.
func collapseWhitespace(s string) string {
	var b strings.Builder
	inRun := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !inRun {
				b.WriteByte('-')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// NameToID converts a normalized dot-separated name to its id form
// (invariant 2: dots become hyphens).
func NameToID(name string) string {
	return strings.ReplaceAll(name, ".", "-")
}

// Put inserts or overwrites tok in the set, keyed by tok.Name. Returns true
// if a token with the same name already existed (a name collision).
func (ts *TokenSet) Put(tok *NormalizedToken) bool {
	_, existed := ts.Tokens[tok.Name]
	ts.Tokens[tok.Name] = tok
	return existed
}

// String renders a TokenType for diagnostics.
func (t TokenType) String() string {
	return string(t)
}

// ValidateModes enforces invariant 5 at construction boundaries: collapses
// an empty, non-nil map to nil.
func ValidateModes(modes map[string]TokenValueOrAlias) map[string]TokenValueOrAlias {
	if len(modes) == 0 {
		return nil
	}
	return modes
}

// Describe returns a short human-readable description of a value's payload
// kind, used in diagnostics (§7).
func (v TokenValueOrAlias) Describe() string {
	if v.IsAlias() {
		return fmt.Sprintf("alias(%s)", v.Reference)
	}
	switch {
	case v.Bool != nil:
		return "bool"
	case v.Number != nil:
		return "number"
	case v.Str != nil:
		return "string"
	case v.Color != nil:
		return "color"
	case v.Dimension != nil:
		return "dimension"
	case v.Typography != nil:
		return "typography"
	case v.Radius != nil:
		return "borderRadius"
	case v.Shadow != nil:
		return "shadow"
	default:
		return "empty"
	}
}
