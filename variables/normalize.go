/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package variables

import (
	"fmt"
	"math"

	"bennypowers.dev/tokenpipe/colorvalue"
	"bennypowers.dev/tokenpipe/model"
)

// Normalize maps one variable to a NormalizedToken (C7 §4.7). collection may
// be nil when the collections fetch failed (§4.8's variables importer
// continues with mode IDs instead of names in that case). idToName and
// modeNames are the ingest-scoped lookup tables built once by the importer.
func Normalize(v FigmaVariable, collection *Collection, idToName, modeNames map[string]string) (*model.NormalizedToken, []string) {
	var warnings []string

	tokenType, ok := mapResolvedType(v.ResolvedType)
	if !ok {
		warnings = append(warnings, fmt.Sprintf(
			"Unsupported variable type %q for variable %q (%s). Skipping.", v.ResolvedType, v.Name, v.ID))
		return nil, warnings
	}

	defaultModeID, defaultValue, ok := chooseDefaultMode(v, collection)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("variable %q (%s) has no values, skipping", v.Name, v.ID))
		return nil, warnings
	}

	value, ok, warn := parseModeValue(defaultValue, tokenType, v.Name, v.ID, idToName)
	if warn != "" {
		warnings = append(warnings, warn)
	}
	if !ok {
		return nil, warnings
	}

	modes := map[string]model.TokenValueOrAlias{}
	for _, entry := range v.ValuesByMode.Entries() {
		if entry.ModeID == defaultModeID {
			continue
		}
		mv, ok, warn := parseModeValue(entry.Value, tokenType, v.Name, v.ID, idToName)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		if !ok {
			continue
		}
		modes[modeDisplayName(entry.ModeID, modeNames)] = mv
	}

	name := model.NormalizeName(v.Name)
	nt := &model.NormalizedToken{
		ID:          model.NameToID(name),
		Name:        name,
		Type:        tokenType,
		Value:       value,
		Modes:       model.ValidateModes(modes),
		Description: v.Description,
		Metadata: map[string]any{
			"source":     string(model.SourceFigma),
			"variableID": v.ID,
		},
	}
	return nt, warnings
}

// mapResolvedType implements §4.7 rule 1.
func mapResolvedType(resolvedType string) (model.TokenType, bool) {
	switch resolvedType {
	case "COLOR":
		return model.TypeColor, true
	case "FLOAT":
		return model.TypeNumber, true
	case "STRING":
		return model.TypeString, true
	case "BOOLEAN":
		return model.TypeBoolean, true
	default:
		return "", false
	}
}

// chooseDefaultMode implements §4.7 rule 3: the collection's default mode
// if present in values_by_mode, else the first entry in insertion order.
func chooseDefaultMode(v FigmaVariable, collection *Collection) (string, ModeValue, bool) {
	if collection != nil {
		if mv, ok := v.ValuesByMode.Get(collection.DefaultModeID); ok {
			return collection.DefaultModeID, mv, true
		}
	}
	return v.ValuesByMode.First()
}

// parseModeValue implements §4.7 rule 4.
func parseModeValue(mv ModeValue, tokenType model.TokenType, varName, varID string, idToName map[string]string) (model.TokenValueOrAlias, bool, string) {
	switch mv.Type {
	case "ALIAS":
		targetID, ok := mv.Value.(string)
		if !ok {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf(
				"variable %q (%s): alias value is not a string, skipping", varName, varID)
		}
		name, known := idToName[targetID]
		if !known {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf(
				"variable %q (%s): alias target %q not found, skipping", varName, varID, targetID)
		}
		return model.NewAlias(name), true, ""

	case "VALUE":
		return parseLiteralValue(mv.Value, tokenType, varName, varID)

	default:
		return model.TokenValueOrAlias{}, false, fmt.Sprintf(
			"variable %q (%s): unrecognized mode value type %q, skipping", varName, varID, mv.Type)
	}
}

func parseLiteralValue(raw any, tokenType model.TokenType, varName, varID string) (model.TokenValueOrAlias, bool, string) {
	switch tokenType {
	case model.TypeColor:
		s, ok := raw.(string)
		if !ok {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf(
				"variable %q (%s): color value is not a string, skipping", varName, varID)
		}
		c, ok, diag := colorvalue.Parse(s)
		if !ok {
			msg := fmt.Sprintf("variable %q (%s): color value %q did not parse", varName, varID, s)
			if diag != nil {
				msg = fmt.Sprintf("variable %q (%s): %s", varName, varID, diag.Message)
			}
			return model.TokenValueOrAlias{}, false, msg
		}
		return model.NewColorValue(c), true, ""

	case model.TypeNumber:
		n, ok := raw.(float64)
		if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf(
				"variable %q (%s): number value is not finite, skipping", varName, varID)
		}
		return model.NewNumberValue(n), true, ""

	case model.TypeString:
		s, ok := raw.(string)
		if !ok {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf(
				"variable %q (%s): string value is not a string, skipping", varName, varID)
		}
		return model.NewStringValue(s), true, ""

	case model.TypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return model.TokenValueOrAlias{}, false, fmt.Sprintf(
				"variable %q (%s): boolean value is not a boolean, skipping", varName, varID)
		}
		return model.NewBoolValue(b), true, ""

	default:
		return model.TokenValueOrAlias{}, false, fmt.Sprintf(
			"variable %q (%s): no parser registered for type %s, skipping", varName, varID, tokenType)
	}
}

// modeDisplayName resolves a mode ID to its human name, falling back to the
// raw ID when the collection lookup failed (§4.7 rule 5).
func modeDisplayName(modeID string, modeNames map[string]string) string {
	if name, ok := modeNames[modeID]; ok {
		return name
	}
	return modeID
}
