/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package borderradiusvalue parses border-radius literals. §9's Open
// Questions flag that BorderRadiusValue's unit set includes "%" while
// DimensionValue's does not, and that the reference implementation never
// exercises a dimension parser against border-radius paths. DESIGN.md
// resolves this by giving border-radius its own permissive unit set
// (px, rem, em, %) built on the same regexp shape as dimensionvalue.
package borderradiusvalue

import (
	"regexp"
	"strconv"
	"strings"

	"bennypowers.dev/tokenpipe/model"
)

var pattern = regexp.MustCompile(`(?i)^(-?\d+(?:\.\d+)?)(px|rem|em|%)$`)

// Parse decodes a border-radius literal with its permissive unit set.
func Parse(input string) (model.BorderRadiusValue, bool) {
	trimmed := strings.TrimSpace(input)
	m := pattern.FindStringSubmatch(trimmed)
	if m == nil {
		return model.BorderRadiusValue{}, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.BorderRadiusValue{}, false
	}

	unit := model.BorderRadiusUnit(strings.ToLower(m[2]))
	return model.BorderRadiusValue{Value: value, Unit: unit}, true
}

// ParseCorners decodes optional per-corner overrides from a map keyed by
// "topLeft", "topRight", "bottomRight", "bottomLeft". Unknown or unparsable
// entries are skipped rather than failing the whole group.
func ParseCorners(raw map[string]any) *model.BorderRadiusCorners {
	if len(raw) == 0 {
		return nil
	}

	corners := &model.BorderRadiusCorners{}
	any := false

	assign := func(key string, dst **model.BorderRadiusValue) {
		v, ok := raw[key]
		if !ok {
			return
		}
		s, ok := v.(string)
		if !ok {
			return
		}
		parsed, ok := Parse(s)
		if !ok {
			return
		}
		*dst = &parsed
		any = true
	}

	assign("topLeft", &corners.TopLeft)
	assign("topRight", &corners.TopRight)
	assign("bottomRight", &corners.BottomRight)
	assign("bottomLeft", &corners.BottomLeft)

	if !any {
		return nil
	}
	return corners
}
