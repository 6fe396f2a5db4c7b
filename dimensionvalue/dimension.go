/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dimensionvalue implements the dimension literal parser (C2):
// <number><unit> with unit in {px, rem, em, pt}. Grounded on the teacher's
// token/token.go formatDimension (structured {value,unit} round-trip) and
// parser/common/patterns.go's one-pinned-regexp-per-shape idiom.
package dimensionvalue

import (
	"regexp"
	"strconv"
	"strings"

	"bennypowers.dev/tokenpipe/model"
)

// pattern matches §4.2's grammar exactly: optional leading minus, a single
// fractional part, and a case-insensitive unit from the closed set.
var pattern = regexp.MustCompile(`(?i)^(-?\d+(?:\.\d+)?)(px|rem|em|pt)$`)

// Parse decodes a dimension literal. Non-string callers should not call
// this directly — §4.2 specifies non-string input yields no-value, which in
// Go simply means: don't call Parse with a non-string value in the first
// place. Surrounding whitespace is trimmed before matching.
func Parse(input string) (model.DimensionValue, bool) {
	trimmed := strings.TrimSpace(input)
	m := pattern.FindStringSubmatch(trimmed)
	if m == nil {
		return model.DimensionValue{}, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.DimensionValue{}, false
	}

	unit := model.DimensionUnit(strings.ToLower(m[2]))
	return model.DimensionValue{Value: value, Unit: unit}, true
}

// Format renders a DimensionValue back to its canonical <number><unit> form.
func Format(d model.DimensionValue) string {
	return strconv.FormatFloat(d.Value, 'g', -1, 64) + string(d.Unit)
}
