/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dtcg

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"bennypowers.dev/tokenpipe/borderradiusvalue"
	"bennypowers.dev/tokenpipe/colorvalue"
	"bennypowers.dev/tokenpipe/dimensionvalue"
	"bennypowers.dev/tokenpipe/model"
	"bennypowers.dev/tokenpipe/shadowvalue"
)

// aliasPattern recognizes DTCG's curly-brace alias syntax (§4.6 rule 3).
var aliasPattern = regexp.MustCompile(`^\{([^}]+)\}$`)

// Normalize maps every flattened DTCG token to the shared model (C6),
// accumulating warnings rather than stopping at the first problem.
// Iteration order is the sorted path, so emitted warnings are deterministic.
func Normalize(flat map[string]*FlatToken) ([]*model.NormalizedToken, []string) {
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var tokens []*model.NormalizedToken
	var warnings []string
	for _, path := range paths {
		nt, warns := normalizeOne(path, flat[path], flat)
		warnings = append(warnings, warns...)
		if nt != nil {
			tokens = append(tokens, nt)
		}
	}
	return tokens, warnings
}

func normalizeOne(path string, tok *FlatToken, flat map[string]*FlatToken) (*model.NormalizedToken, []string) {
	var warnings []string

	tokenType, ok := mapType(path, tok.Type)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("%s: unsupported $type %q, skipping", path, tok.Type))
		return nil, warnings
	}

	var value model.TokenValueOrAlias
	if tok.Type == "typography" {
		value = model.NewTypographyValue(*tok.Value)
	} else {
		v, ok, warn := parseValue(tokenType, tok.RawValue, path, flat)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		if !ok {
			return nil, warnings
		}
		value = v
	}

	modes := buildModes(tok, tokenType, path, flat, &warnings)

	name := model.NormalizeName(path)
	nt := &model.NormalizedToken{
		ID:          model.NameToID(name),
		Name:        name,
		Type:        tokenType,
		Value:       value,
		Modes:       model.ValidateModes(modes),
		Description: tok.Description,
		Metadata:    map[string]any{"source": string(model.SourceDTCG)},
	}
	return nt, warnings
}

// mapType implements §4.6 rule 2, including the path-substring heuristic
// that distinguishes spacing dimensions from plain dimensions.
func mapType(path, dtcgType string) (model.TokenType, bool) {
	switch dtcgType {
	case "color":
		return model.TypeColor, true
	case "dimension":
		if strings.Contains(strings.ToLower(path), "spacing") {
			return model.TypeSpacing, true
		}
		return model.TypeDimension, true
	case "borderRadius":
		return model.TypeBorderRadius, true
	case "shadow":
		return model.TypeShadow, true
	case "typography":
		return model.TypeTypography, true
	default:
		return "", false
	}
}

// parseValue implements §4.6 rule 3: alias detection first, then
// type-appropriate parsing via C1–C3.
func parseValue(t model.TokenType, raw any, path string, flat map[string]*FlatToken) (model.TokenValueOrAlias, bool, string) {
	if s, ok := raw.(string); ok {
		if m := aliasPattern.FindStringSubmatch(s); m != nil {
			inner := m[1]
			if _, known := flat[inner]; !known {
				return model.TokenValueOrAlias{}, false, fmt.Sprintf("%s: alias target %q is not a known token, skipping", path, inner)
			}
			return model.NewAlias(model.NormalizeName(inner)), true, ""
		}
	}

	switch t {
	case model.TypeColor:
		s, ok := raw.(string)
		if !ok {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf("%s: color value is not a string, skipping", path)
		}
		c, ok, diag := colorvalue.Parse(s)
		if !ok {
			if diag != nil {
				return model.TokenValueOrAlias{}, false, fmt.Sprintf("%s: %s", path, diag.Message)
			}
			return model.TokenValueOrAlias{}, false, fmt.Sprintf("%s: color value %q did not parse, skipping", path, s)
		}
		return model.NewColorValue(c), true, ""

	case model.TypeDimension, model.TypeSpacing:
		s, ok := raw.(string)
		if !ok {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf("%s: dimension value is not a string, skipping", path)
		}
		d, ok := dimensionvalue.Parse(s)
		if !ok {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf("%s: dimension value %q did not parse, skipping", path, s)
		}
		return model.NewDimensionValue(d), true, ""

	case model.TypeBorderRadius:
		s, ok := raw.(string)
		if !ok {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf("%s: borderRadius value is not a string, skipping", path)
		}
		r, ok := borderradiusvalue.Parse(s)
		if !ok {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf("%s: borderRadius value %q did not parse, skipping", path, s)
		}
		return model.NewBorderRadiusValue(r), true, ""

	case model.TypeShadow:
		sv, ok, diag := shadowvalue.Parse(raw)
		if !ok {
			msg := fmt.Sprintf("%s: shadow value did not parse", path)
			if diag != nil {
				msg = fmt.Sprintf("%s: %s", path, diag.Message)
			}
			return model.TokenValueOrAlias{}, false, msg
		}
		return model.NewShadowValue(sv), true, ""

	default:
		return model.TokenValueOrAlias{}, false, fmt.Sprintf("%s: no parser registered for type %s", path, t)
	}
}

// buildModes implements §4.6 rule 4: sibling objects on the token's own
// raw node that carry a $value and are not themselves a typography-property
// key are reparsed under the same TokenType and indexed by sibling key.
func buildModes(tok *FlatToken, tokenType model.TokenType, path string, flat map[string]*FlatToken, warnings *[]string) map[string]model.TokenValueOrAlias {
	if tok.RawNode == nil {
		return nil
	}

	keys := make([]string, 0, len(tok.RawNode))
	for k := range tok.RawNode {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	modes := map[string]model.TokenValueOrAlias{}
	for _, key := range keys {
		if strings.HasPrefix(key, "$") || typographyPropertyKeys[key] {
			continue
		}
		child, ok := tok.RawNode[key].(map[string]any)
		if !ok {
			continue
		}
		val, has := child["$value"]
		if !has {
			continue
		}
		v, ok, warn := parseValue(tokenType, val, path+"."+key, flat)
		if warn != "" {
			*warnings = append(*warnings, warn)
		}
		if !ok {
			continue
		}
		modes[key] = v
	}

	if len(modes) == 0 {
		return nil
	}
	return modes
}
