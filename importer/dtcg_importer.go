/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/tokenpipe/config"
	"bennypowers.dev/tokenpipe/dtcg"
	tpfs "bennypowers.dev/tokenpipe/fs"
	"bennypowers.dev/tokenpipe/ingesterr"
	"bennypowers.dev/tokenpipe/load"
	"bennypowers.dev/tokenpipe/model"
)

// ImportDTCG implements the DTCG importer of §4.8: retrieve bytes from
// exactly one of the source's path or URL, validate (C4), flatten (C5),
// normalize (C6), and detect name collisions among the emitted tokens.
func ImportDTCG(ctx context.Context, spec config.SourceSpec, filesystem tpfs.FileSystem, fetcher load.Fetcher) Result {
	locator, err := validateLocator(spec)
	if err != nil {
		return configErrorResult(err)
	}

	data, err := retrieveDTCGBytes(ctx, spec, filesystem, fetcher)
	if err != nil {
		return fatalErrorResult(ingesterr.NewFatalError("DTCG import failed", err))
	}

	var doc any
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return fatalErrorResult(ingesterr.NewFatalError("DTCG import failed", fmt.Errorf("invalid JSON: %w", err)))
	}

	validation := dtcg.Validate(doc)
	if !validation.Valid {
		cause := fmt.Errorf("%s", joinErrors(validation.Errors))
		return fatalErrorResult(ingesterr.NewFatalError("DTCG import failed", cause))
	}

	root, _ := doc.(map[string]any)
	flat := dtcg.Flatten(root)
	tokens, warnings := dtcg.Normalize(flat)

	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("DTCG Tokens - %s", locator)
	}
	ts := model.NewTokenSet(model.TokenSetMetadata{Source: model.SourceDTCG, Name: name})

	for _, tok := range tokens {
		if ts.Put(tok) {
			warnings = append(warnings, fmt.Sprintf("token %q defined more than once; later definition wins", tok.Name))
		}
	}

	return Result{TokenSet: ts, Warnings: warnings}
}

// validateLocator implements §4.8's "exactly one of path or url" rule,
// returning the locator string for use in diagnostics.
func validateLocator(spec config.SourceSpec) (string, error) {
	hasPath, hasURL := spec.Path != "", spec.URL != ""
	switch {
	case hasPath && hasURL:
		return "", ingesterr.NewConfigError("DTCG source", ingesterr.ErrBothLocatorsSupplied)
	case !hasPath && !hasURL:
		return "", ingesterr.NewConfigError("DTCG source", ingesterr.ErrNoLocatorSupplied)
	case hasPath:
		return spec.Path, nil
	default:
		return spec.URL, nil
	}
}

func retrieveDTCGBytes(ctx context.Context, spec config.SourceSpec, filesystem tpfs.FileSystem, fetcher load.Fetcher) ([]byte, error) {
	if spec.Path != "" {
		return filesystem.ReadFile(spec.Path)
	}
	return fetcher.Fetch(ctx, spec.URL)
}

func joinErrors(errs []string) string {
	out := ""
	for i, e := range errs {
		if i > 0 {
			out += "; "
		}
		out += e
	}
	return out
}
