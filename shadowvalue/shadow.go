/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package shadowvalue implements the shadow literal parser (C3). Grounded
// on the teacher's token/token.go formatShadow/formatSingleShadow, which
// already describes this exact structured-object-with-optional-fields
// shape (offsetX/offsetY/blur/spread/color) — this package parses instead
// of formats it.
package shadowvalue

import (
	"bennypowers.dev/tokenpipe/colorvalue"
	"bennypowers.dev/tokenpipe/model"
)

// Diagnostic describes a soft parse outcome (string input, empty array).
type Diagnostic struct {
	Message string
}

// Parse decodes a shadow literal per §4.3. Accepts a structured object
// (map[string]any) or an array (only the first element is processed; the
// remainder is silently truncated per §9's documented limitation). A plain
// string is explicitly unsupported and yields no-value with a diagnostic.
func Parse(input any) (model.ShadowValue, bool, *Diagnostic) {
	switch v := input.(type) {
	case string:
		return model.ShadowValue{}, false, &Diagnostic{
			Message: "shadow value must be a structured object, not a string",
		}
	case []any:
		if len(v) == 0 {
			return model.ShadowValue{}, false, &Diagnostic{
				Message: "shadow array is empty",
			}
		}
		return parseObject(v[0])
	case map[string]any:
		return parseObject(v)
	default:
		return model.ShadowValue{}, false, &Diagnostic{
			Message: "unsupported shadow value shape",
		}
	}
}

func parseObject(input any) (model.ShadowValue, bool, *Diagnostic) {
	obj, ok := input.(map[string]any)
	if !ok {
		return model.ShadowValue{}, false, &Diagnostic{
			Message: "shadow element is not an object",
		}
	}

	colorRaw, hasColor := obj["color"]
	if !hasColor {
		return model.ShadowValue{}, false, &Diagnostic{Message: "shadow missing color"}
	}
	colorStr, ok := colorRaw.(string)
	if !ok {
		return model.ShadowValue{}, false, &Diagnostic{Message: "shadow color is not a string"}
	}
	color, ok, _ := colorvalue.Parse(colorStr)
	if !ok {
		return model.ShadowValue{}, false, &Diagnostic{Message: "shadow color did not parse: " + colorStr}
	}

	sv := model.ShadowValue{
		Color:   color,
		OffsetX: numberOrZero(obj["offsetX"]),
		OffsetY: numberOrZero(obj["offsetY"]),
		Blur:    numberOrZero(obj["blur"]),
	}

	if spreadRaw, ok := obj["spread"]; ok {
		if spread, ok := spreadRaw.(float64); ok {
			sv.Spread = &spread
		}
	}
	if insetRaw, ok := obj["inset"]; ok {
		if inset, ok := insetRaw.(bool); ok {
			sv.Inset = &inset
		}
	}

	return sv, true, nil
}

// numberOrZero defaults an absent or non-numeric field to 0, per §4.3.
func numberOrZero(v any) float64 {
	n, ok := v.(float64)
	if !ok {
		return 0
	}
	return n
}
