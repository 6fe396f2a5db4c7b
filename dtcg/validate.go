/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dtcg implements the DTCG-format pipeline: structural validation
// (C4), flattening with typography-group composition (C5), and
// normalization to the shared model (C6). Grounded on the teacher's
// validator/validator.go (accumulate-don't-fail-fast) and parser/json.go
// (recursive metadata-key-skipping walk).
package dtcg

import "fmt"

// AllowedTypes is the closed set of DTCG $type values this importer
// recognizes structurally (§4.4 rule 4). Types beyond this set are a
// validation error at C4; types within it that the normalizer (C6) can't
// map to a TokenType become per-token warnings instead.
var AllowedTypes = map[string]bool{
	"color":         true,
	"dimension":     true,
	"fontFamily":    true,
	"fontSize":      true,
	"fontWeight":    true,
	"lineHeight":    true,
	"letterSpacing": true,
	"borderRadius":  true,
	"shadow":        true,
}

// ValidationResult is C4's output: a flag plus an ordered list of human
// readable errors, never a hard failure partway through the walk.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate runs the structural checks of §4.4 against a parsed JSON
// document. It never returns early: every rule violation it finds is
// appended to Errors, and Valid is the AND of all of them.
func Validate(doc any) ValidationResult {
	root, ok := doc.(map[string]any)
	if !ok {
		return ValidationResult{Valid: false, Errors: []string{"DTCG file must be an object"}}
	}

	var errs []string

	if schemaRaw, present := root["$schema"]; present {
		if _, isString := schemaRaw.(string); !isString {
			errs = append(errs, "$schema must be a string")
		}
	}

	validateNode(root, nil, &errs)

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// validateNode validates one node (token or group) and recurses into
// group children. path is the dot-joined path of keys from the root.
func validateNode(node map[string]any, path []string, errs *[]string) {
	for _, key := range sortedNonMetaKeys(node) {
		child, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		childPath := append(append([]string{}, path...), key)

		if _, isToken := child["$type"]; isToken {
			validateToken(child, childPath, errs)
			continue
		}

		validateNode(child, childPath, errs)
	}
}

func validateToken(tok map[string]any, path []string, errs *[]string) {
	pathStr := joinPath(path)

	typeRaw, hasType := tok["$type"]
	typeStr, typeIsString := typeRaw.(string)
	if !hasType || !typeIsString {
		*errs = append(*errs, fmt.Sprintf("%s: $type must be a string", pathStr))
		return
	}
	if !AllowedTypes[typeStr] {
		*errs = append(*errs, fmt.Sprintf("%s: unrecognized $type %q", pathStr, typeStr))
	}

	value, hasValue := tok["$value"]
	if !hasValue {
		*errs = append(*errs, fmt.Sprintf("%s: token missing $value", pathStr))
		return
	}

	if !isPermissibleShape(typeStr, value) {
		*errs = append(*errs, fmt.Sprintf("%s: $value has an invalid shape for $type %q", pathStr, typeStr))
	}
}

// isPermissibleShape checks the coarse primitive shape from §4.4 rule 6;
// final numeric parsing is deferred to the normalizer (C6). lineHeight
// additionally permits a bare number, since a typography group's
// lineHeight member may carry a unitless number rather than a dimension
// string (§4.5).
func isPermissibleShape(tokenType string, value any) bool {
	switch tokenType {
	case "color", "dimension", "fontFamily", "letterSpacing", "borderRadius":
		_, isString := value.(string)
		return isString
	case "fontWeight", "lineHeight":
		switch value.(type) {
		case string, float64:
			return true
		default:
			return false
		}
	case "shadow":
		switch value.(type) {
		case map[string]any, []any, string:
			return true
		default:
			return false
		}
	default:
		// Unrecognized $type was already flagged; don't double-report shape.
		// fontSize is allowed but has no shape rule here, so it passes too.
		return true
	}
}

func joinPath(path []string) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
