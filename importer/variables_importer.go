/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

import (
	"context"
	"fmt"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/tokenpipe/config"
	"bennypowers.dev/tokenpipe/ingesterr"
	"bennypowers.dev/tokenpipe/model"
	"bennypowers.dev/tokenpipe/variables"
)

// ImportVariables implements the variables importer of §4.8: fetch
// variables and collections concurrently with "settled" semantics (§5 — one
// failing does not cancel the other), build the lookup tables, and run C7
// across every variable.
func ImportVariables(ctx context.Context, spec config.SourceSpec, client *FigmaClient) Result {
	apiKey, err := resolveAPIKey(spec)
	if err != nil {
		return configErrorResult(err)
	}
	if spec.FileKey == "" {
		return configErrorResult(ingesterr.NewConfigError("figma source", fmt.Errorf("fileKey is required")))
	}

	vars, collections, collectionsWarning, err := fetchVariablesAndCollections(ctx, client, spec.FileKey, apiKey)
	if err != nil {
		return fatalErrorResult(ingesterr.NewFatalError("Figma import failed", err))
	}

	var warnings []string
	if collectionsWarning != "" {
		warnings = append(warnings, collectionsWarning)
	}

	idToName, modeNames := buildLookupTables(vars, collections)

	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("Figma Variables - %s", spec.FileKey)
	}
	ts := model.NewTokenSet(model.TokenSetMetadata{Source: model.SourceFigma, Name: name})

	for _, id := range sortedVariableIDs(vars) {
		v := vars[id]
		var collection *variables.Collection
		if c, ok := collections[v.VariableCollectionID]; ok {
			collection = &c
		}

		tok, warns := variables.Normalize(v, collection, idToName, modeNames)
		warnings = append(warnings, warns...)
		if tok == nil {
			continue
		}
		if ts.Put(tok) {
			warnings = append(warnings, fmt.Sprintf("token %q defined more than once; later definition wins", tok.Name))
		}
	}

	return Result{TokenSet: ts, Warnings: warnings}
}

// resolveAPIKey implements the configuration-error half of §7 category 1:
// a figma source requires a populated API key environment variable.
func resolveAPIKey(spec config.SourceSpec) (string, error) {
	if spec.APIKeyEnv == "" {
		return "", ingesterr.NewConfigError("figma source", fmt.Errorf("apiKeyEnv is required"))
	}
	apiKey := os.Getenv(spec.APIKeyEnv)
	if apiKey == "" {
		return "", ingesterr.NewConfigError("figma source", fmt.Errorf("environment variable %q is not set", spec.APIKeyEnv))
	}
	return apiKey, nil
}

// fetchVariablesAndCollections runs both retrievals concurrently (§5).
// Neither goroutine returns an error to the errgroup, so one failing never
// cancels the other; variables failure is surfaced as a returned error
// (fatal), collections failure becomes a warning string.
func fetchVariablesAndCollections(ctx context.Context, client *FigmaClient, fileKey, apiKey string) (map[string]variables.FigmaVariable, map[string]variables.Collection, string, error) {
	var (
		vars           map[string]variables.FigmaVariable
		collections    map[string]variables.Collection
		variablesErr   error
		collectionsErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vars, variablesErr = client.FetchVariables(gctx, fileKey, apiKey)
		return nil
	})
	g.Go(func() error {
		collections, collectionsErr = client.FetchCollections(gctx, fileKey, apiKey)
		return nil
	})
	_ = g.Wait()

	if variablesErr != nil {
		return nil, nil, "", variablesErr
	}

	var collectionsWarning string
	if collectionsErr != nil {
		collections = nil
		collectionsWarning = fmt.Sprintf(
			"Failed to fetch variable collections: %s. Continuing with mode IDs instead of names.", collectionsErr)
	}

	return vars, collections, collectionsWarning, nil
}

// buildLookupTables implements §4.8's id→name and mode-id→mode-name table
// construction, read-only for the rest of the ingest (§5).
func buildLookupTables(vars map[string]variables.FigmaVariable, collections map[string]variables.Collection) (map[string]string, map[string]string) {
	idToName := make(map[string]string, len(vars))
	for id, v := range vars {
		idToName[id] = model.NormalizeName(v.Name)
	}

	modeNames := make(map[string]string)
	for _, c := range collections {
		for _, m := range c.Modes {
			modeNames[m.ModeID] = m.Name
		}
	}

	return idToName, modeNames
}

func sortedVariableIDs(vars map[string]variables.FigmaVariable) []string {
	ids := make([]string, 0, len(vars))
	for id := range vars {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
