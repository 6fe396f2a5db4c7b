/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dtcg

import (
	"sort"
	"strings"

	"bennypowers.dev/tokenpipe/dimensionvalue"
	"bennypowers.dev/tokenpipe/model"
)

// typographyPropertyKeys is the set of DTCG keys that, when they are the
// only non-metadata children of a group, make that group a candidate for
// typography composition (§4.5).
var typographyPropertyKeys = map[string]bool{
	"fontFamily":    true,
	"fontSize":      true,
	"fontWeight":    true,
	"lineHeight":    true,
	"letterSpacing": true,
}

// typographyMemberTypes is the set of $type values a typography-group
// member may carry.
var typographyMemberTypes = map[string]bool{
	"fontFamily":    true,
	"fontSize":      true,
	"fontWeight":    true,
	"lineHeight":    true,
	"letterSpacing": true,
	"dimension":     true,
}

// FlatToken is one entry of the flattener's path-keyed output: either a
// plain DTCG token (Type is its $type, RawValue is its raw $value) or a
// synthetic typography token (Type == "typography", Value already
// composed).
type FlatToken struct {
	Path        string
	Type        string
	RawValue    any
	Value       *model.TypographyValue // set only when Type == "typography"
	Description string
	RawNode     map[string]any // the token's own map, for mode-sibling detection (C6)
}

// Flatten walks a validated DTCG document and produces a path-keyed
// mapping of tokens, composing typography groups along the way (§4.5).
func Flatten(root map[string]any) map[string]*FlatToken {
	result := make(map[string]*FlatToken)
	walk(root, nil, result)
	return result
}

func walk(node map[string]any, path []string, result map[string]*FlatToken) {
	if isTypographyGroup(node) {
		composeTypography(node, path, result)
		return
	}

	for _, key := range sortedNonMetaKeys(node) {
		child, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		childPath := append(append([]string{}, path...), key)

		if typeRaw, has := child["$type"]; has {
			if typeStr, ok := typeRaw.(string); ok {
				result[strings.Join(childPath, ".")] = &FlatToken{
					Path:        strings.Join(childPath, "."),
					Type:        typeStr,
					RawValue:    child["$value"],
					Description: descriptionOf(child),
					RawNode:     child,
				}
				continue
			}
		}

		walk(child, childPath, result)
	}
}

// isTypographyGroup implements §4.5's structural predicate: every
// non-metadata child key must be a typography-property key, each such
// child must itself be a $type-bearing token with a permitted type, and
// the group must contain at least fontFamily and fontSize.
func isTypographyGroup(node map[string]any) bool {
	keys := nonMetaKeys(node)
	if len(keys) == 0 {
		return false
	}

	hasFamily, hasSize := false, false
	for _, key := range keys {
		if !typographyPropertyKeys[key] {
			return false
		}
		child, ok := node[key].(map[string]any)
		if !ok {
			return false
		}
		typeRaw, has := child["$type"]
		typeStr, isStr := typeRaw.(string)
		if !has || !isStr || !typographyMemberTypes[typeStr] {
			return false
		}
		switch key {
		case "fontFamily":
			hasFamily = true
		case "fontSize":
			hasSize = true
		}
	}

	return hasFamily && hasSize
}

// composeTypography builds the synthetic typography token described in
// §4.5. If fontFamily or fontSize cannot be composed to a valid form, the
// synthetic token is skipped entirely — no diagnostic at this layer.
func composeTypography(node map[string]any, path []string, result map[string]*FlatToken) {
	familyNode, _ := node["fontFamily"].(map[string]any)
	familyValue, ok := familyNode["$value"].(string)
	if !ok || familyValue == "" {
		return
	}

	sizeNode, _ := node["fontSize"].(map[string]any)
	sizeStr, ok := sizeNode["$value"].(string)
	if !ok {
		return
	}
	fontSize, ok := dimensionvalue.Parse(sizeStr)
	if !ok {
		return
	}

	tv := &model.TypographyValue{
		FontFamily: familyValue,
		FontSize:   fontSize,
	}

	if weightNode, ok := node["fontWeight"].(map[string]any); ok {
		applyFontWeight(weightNode["$value"], tv)
	}
	if lineHeightNode, ok := node["lineHeight"].(map[string]any); ok {
		applyLineHeight(lineHeightNode["$value"], tv)
	}
	if letterSpacingNode, ok := node["letterSpacing"].(map[string]any); ok {
		if s, ok := letterSpacingNode["$value"].(string); ok {
			if parsed, ok := dimensionvalue.Parse(s); ok {
				tv.LetterSpacing = &parsed
			}
		}
	}

	p := strings.Join(path, ".")
	result[p] = &FlatToken{
		Path:  p,
		Type:  "typography",
		Value: tv,
	}
}

// applyFontWeight prefers a numeric value; a numeric string is parsed to
// an int, and any other string is kept verbatim (§4.5).
func applyFontWeight(raw any, tv *model.TypographyValue) {
	switch v := raw.(type) {
	case float64:
		n := int(v)
		tv.FontWeightNumber = &n
	case string:
		if n, ok := parseIntStrict(v); ok {
			tv.FontWeightNumber = &n
			return
		}
		tv.FontWeightName = &v
	}
}

// applyLineHeight preserves a unitless number as a number; otherwise it is
// parsed as a dimension via C2 (§4.5).
func applyLineHeight(raw any, tv *model.TypographyValue) {
	switch v := raw.(type) {
	case float64:
		tv.LineHeightNumber = &v
	case string:
		if parsed, ok := dimensionvalue.Parse(v); ok {
			tv.LineHeightDimension = &parsed
		}
	}
}

func parseIntStrict(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func descriptionOf(node map[string]any) string {
	if d, ok := node["$description"].(string); ok {
		return d
	}
	return ""
}

func nonMetaKeys(node map[string]any) []string {
	keys := make([]string, 0, len(node))
	for k := range node {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedNonMetaKeys(node map[string]any) []string {
	return nonMetaKeys(node)
}
