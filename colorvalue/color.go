/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package colorvalue implements the color literal parser (C1): hex 3/6/8,
// rgb(...), and rgba(...), decoded into a normalized model.ColorValue with
// every channel in [0,1].
//
// Dispatch is fixed by leading character, per §4.1. The structural shape
// (hex length, comma-separated numeric grammar) is validated here; the
// actual channel math is delegated to github.com/mazznoer/csscolorparser,
// the same library the teacher uses for CSS color parsing (cmd/render,
// convert/convert.go) — this package supplies the spec's dispatch and
// validation rules around it rather than reimplementing channel math.
package colorvalue

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokenpipe/model"
)

// numberPattern matches an integer or single-fractional-part decimal, used
// to validate the rgb()/rgba() comma-separated grammar before delegating
// to csscolorparser.
const numberPattern = `\s*(-?\d+(?:\.\d+)?)\s*`

var (
	rgbPattern  = regexp.MustCompile(`^rgb\(` + numberPattern + `,` + numberPattern + `,` + numberPattern + `\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(` + numberPattern + `,` + numberPattern + `,` + numberPattern + `(?:,` + numberPattern + `)?\)$`)
	hexCharsRe  = regexp.MustCompile(`^[0-9a-fA-F]+$`)
)

// Diagnostic describes a soft (non-fatal) parse outcome, per §4.1's "no-value
// with a soft diagnostic" for unknown leading sequences.
type Diagnostic struct {
	Message string
}

// Parse decodes a color literal per §4.1. ok is false when the input yields
// no value (empty input, malformed shape, non-finite channel, or unknown
// leading sequence); diag is non-nil only for the soft "unknown leading
// sequence" case.
func Parse(input string) (value model.ColorValue, ok bool, diag *Diagnostic) {
	if input == "" {
		return model.ColorValue{}, false, nil
	}

	switch {
	case strings.HasPrefix(input, "#"):
		return parseHex(input)
	case strings.HasPrefix(input, "rgba("):
		return parseRGBA(input)
	case strings.HasPrefix(input, "rgb("):
		return parseRGB(input)
	default:
		return model.ColorValue{}, false, &Diagnostic{
			Message: "unrecognized color literal: " + input,
		}
	}
}

func parseHex(input string) (model.ColorValue, bool, *Diagnostic) {
	digits := strings.TrimPrefix(input, "#")
	switch len(digits) {
	case 3, 6, 8:
	default:
		return model.ColorValue{}, false, nil
	}
	if !hexCharsRe.MatchString(digits) {
		return model.ColorValue{}, false, nil
	}

	c, err := csscolorparser.Parse(input)
	if err != nil {
		return model.ColorValue{}, false, nil
	}

	if !finite(c.R, c.G, c.B, c.A) {
		return model.ColorValue{}, false, nil
	}

	cv := model.ColorValue{R: c.R, G: c.G, B: c.B}
	if len(digits) == 8 {
		a := c.A
		cv.A = &a
	}
	return cv, true, nil
}

func parseRGB(input string) (model.ColorValue, bool, *Diagnostic) {
	if !rgbPattern.MatchString(input) {
		return model.ColorValue{}, false, nil
	}
	cv, ok, diag := parseViaEngine(input)
	if !ok {
		return cv, ok, diag
	}
	// rgb() carries no alpha: §4.1's "a = 1", represented as nil.
	cv.A = nil
	return cv, true, nil
}

func parseRGBA(input string) (model.ColorValue, bool, *Diagnostic) {
	m := rgbaPattern.FindStringSubmatch(input)
	if m == nil {
		return model.ColorValue{}, false, nil
	}
	cv, ok, diag := parseViaEngine(input)
	if !ok {
		return cv, ok, diag
	}
	// Missing alpha group (m[4] == "") means §4.1's "missing alpha ⇒ a = 1".
	if strings.TrimSpace(m[4]) == "" {
		cv.A = nil
	}
	return cv, true, nil
}

// parseViaEngine delegates the already-shape-validated rgb()/rgba() literal
// to csscolorparser for channel math, then re-derives finiteness per §4.1.
func parseViaEngine(input string) (model.ColorValue, bool, *Diagnostic) {
	c, err := csscolorparser.Parse(input)
	if err != nil {
		return model.ColorValue{}, false, nil
	}
	if !finite(c.R, c.G, c.B, c.A) {
		return model.ColorValue{}, false, nil
	}
	a := c.A
	return model.ColorValue{R: c.R, G: c.G, B: c.B, A: &a}, true, nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ToCSS renders a ColorValue back to a canonical hex or rgba() literal,
// used by the idempotence property test (§8): feeding this back through
// Parse must yield an equal ColorValue.
func ToCSS(c model.ColorValue) string {
	if c.A == nil {
		return toHex6(c)
	}
	return toRGBAString(c)
}

func toHex6(c model.ColorValue) string {
	r := clampByte(c.R)
	g := clampByte(c.G)
	b := clampByte(c.B)
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func toRGBAString(c model.ColorValue) string {
	r := clampByte(c.R)
	g := clampByte(c.G)
	b := clampByte(c.B)
	a := c.Alpha()
	return "rgba(" + strconv.Itoa(r) + ", " + strconv.Itoa(g) + ", " + strconv.Itoa(b) + ", " + strconv.FormatFloat(a, 'g', -1, 64) + ")"
}

func clampByte(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

func hexByte(b int) string {
	s := strconv.FormatInt(int64(b), 16)
	if len(s) == 1 {
		s = "0" + s
	}
	return strings.ToUpper(s)
}
