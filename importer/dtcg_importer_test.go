/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer_test

import (
	"context"
	"errors"
	"testing"

	"bennypowers.dev/tokenpipe/config"
	"bennypowers.dev/tokenpipe/importer"
	"bennypowers.dev/tokenpipe/internal/mapfs"
)

type stubFetcher struct {
	data []byte
	err  error
}

func (s stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func TestImportDTCG_FromFile(t *testing.T) {
	fsys := mapfs.New()
	fsys.AddFile("/tokens/colors.json", `{
		"color": {
			"brand": {"$type": "color", "$value": "#FF6B36"}
		}
	}`, 0644)

	spec := config.SourceSpec{Type: config.KindDTCG, Path: "/tokens/colors.json"}
	result := importer.ImportDTCG(context.Background(), spec, fsys, stubFetcher{})

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.TokenSet == nil {
		t.Fatalf("expected a token set")
	}
	if _, ok := result.TokenSet.Tokens["color.brand"]; !ok {
		t.Errorf("expected color.brand in the token set, got %v", result.TokenSet.Tokens)
	}
}

func TestImportDTCG_SupportsJSONC(t *testing.T) {
	fsys := mapfs.New()
	fsys.AddFile("/tokens/colors.jsonc", `{
		// brand colors
		"color": {
			"brand": {"$type": "color", "$value": "#FF6B36"} // trailing comment
		}
	}`, 0644)

	spec := config.SourceSpec{Type: config.KindDTCG, Path: "/tokens/colors.jsonc"}
	result := importer.ImportDTCG(context.Background(), spec, fsys, stubFetcher{})
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
}

func TestImportDTCG_FromURL(t *testing.T) {
	fetcher := stubFetcher{data: []byte(`{
		"color": {"brand": {"$type": "color", "$value": "#FF6B36"}}
	}`)}
	spec := config.SourceSpec{Type: config.KindDTCG, URL: "https://example.test/tokens.json"}
	result := importer.ImportDTCG(context.Background(), spec, mapfs.New(), fetcher)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
}

func TestImportDTCG_BothLocatorsIsConfigError(t *testing.T) {
	spec := config.SourceSpec{Type: config.KindDTCG, Path: "/a.json", URL: "https://example.test/a.json"}
	result := importer.ImportDTCG(context.Background(), spec, mapfs.New(), stubFetcher{})
	if result.TokenSet != nil {
		t.Errorf("expected no token set")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportDTCG_NoLocatorIsConfigError(t *testing.T) {
	spec := config.SourceSpec{Type: config.KindDTCG}
	result := importer.ImportDTCG(context.Background(), spec, mapfs.New(), stubFetcher{})
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportDTCG_FetchFailureIsFatal(t *testing.T) {
	spec := config.SourceSpec{Type: config.KindDTCG, URL: "https://example.test/a.json"}
	result := importer.ImportDTCG(context.Background(), spec, mapfs.New(), stubFetcher{err: errors.New("connection refused")})
	if result.TokenSet != nil {
		t.Errorf("expected no token set")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportDTCG_InvalidDocumentIsFatal(t *testing.T) {
	fsys := mapfs.New()
	fsys.AddFile("/tokens/bad.json", `{"x": {"$type": "color"}}`, 0644)
	spec := config.SourceSpec{Type: config.KindDTCG, Path: "/tokens/bad.json"}
	result := importer.ImportDTCG(context.Background(), spec, fsys, stubFetcher{})
	if result.TokenSet != nil {
		t.Errorf("expected no token set for a structurally invalid document")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportDTCG_NameCollisionWarns(t *testing.T) {
	// Two sibling token maps that normalize to the same name would require
	// a genuinely duplicate key, which JSON itself forbids; instead this
	// exercises the collision path directly via two DTCG groups whose
	// normalized names collide after case folding.
	fsys := mapfs.New()
	fsys.AddFile("/tokens/dup.json", `{
		"Color": {"Brand": {"$type": "color", "$value": "#FF0000"}},
		"color": {"brand": {"$type": "color", "$value": "#00FF00"}}
	}`, 0644)
	spec := config.SourceSpec{Type: config.KindDTCG, Path: "/tokens/dup.json"}
	result := importer.ImportDTCG(context.Background(), spec, fsys, stubFetcher{})
	if result.TokenSet == nil {
		t.Fatalf("expected a token set")
	}
	found := false
	for _, w := range result.Warnings {
		if w == `token "color.brand" defined more than once; later definition wins` {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a name-collision warning, got %v", result.Warnings)
	}
}
