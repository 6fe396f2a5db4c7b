/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bennypowers.dev/tokenpipe/config"
	"bennypowers.dev/tokenpipe/importer"
)

func TestImportVariables_MissingAPIKeyEnvIsConfigError(t *testing.T) {
	spec := config.SourceSpec{Type: config.KindFigma, FileKey: "abc"}
	client := importer.NewFigmaClient("")
	result := importer.ImportVariables(context.Background(), spec, client)
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportVariables_UnsetEnvVarIsConfigError(t *testing.T) {
	spec := config.SourceSpec{Type: config.KindFigma, FileKey: "abc", APIKeyEnv: "TOKENPIPE_TEST_UNSET_VAR"}
	client := importer.NewFigmaClient("")
	result := importer.ImportVariables(context.Background(), spec, client)
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportVariables_MissingFileKeyIsConfigError(t *testing.T) {
	t.Setenv("TOKENPIPE_TEST_API_KEY", "secret")
	spec := config.SourceSpec{Type: config.KindFigma, APIKeyEnv: "TOKENPIPE_TEST_API_KEY"}
	client := importer.NewFigmaClient("")
	result := importer.ImportVariables(context.Background(), spec, client)
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportVariables_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/variables/local"):
			_, _ = w.Write([]byte(`{
				"meta": {
					"variables": {
						"VariableID:1": {
							"id": "VariableID:1",
							"name": "color/brand",
							"resolved_type": "COLOR",
							"variable_collection_id": "VariableCollectionId:1",
							"values_by_mode": {"mode-a": {"type": "VALUE", "value": "#FF0000"}}
						}
					}
				}
			}`))
		case strings.Contains(r.URL.Path, "/variable-collections"):
			_, _ = w.Write([]byte(`{
				"meta": {
					"variableCollections": {
						"VariableCollectionId:1": {
							"id": "VariableCollectionId:1",
							"default_mode_id": "mode-a",
							"modes": [{"mode_id": "mode-a", "name": "Light"}]
						}
					}
				}
			}`))
		}
	}))
	defer srv.Close()

	t.Setenv("TOKENPIPE_TEST_API_KEY", "secret")
	spec := config.SourceSpec{Type: config.KindFigma, FileKey: "file-key", APIKeyEnv: "TOKENPIPE_TEST_API_KEY"}
	client := importer.NewFigmaClient(srv.URL)

	result := importer.ImportVariables(context.Background(), spec, client)
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

func TestImportVariables_CollectionsFailureBecomesWarningNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/variables/local"):
			_, _ = w.Write([]byte(`{
				"meta": {
					"variables": {
						"VariableID:1": {
							"id": "VariableID:1",
							"name": "color/brand",
							"resolved_type": "COLOR",
							"values_by_mode": {"mode-a": {"type": "VALUE", "value": "#FF0000"}}
						}
					}
				}
			}`))
		case strings.Contains(r.URL.Path, "/variable-collections"):
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	t.Setenv("TOKENPIPE_TEST_API_KEY", "secret")
	spec := config.SourceSpec{Type: config.KindFigma, FileKey: "file-key", APIKeyEnv: "TOKENPIPE_TEST_API_KEY"}
	client := importer.NewFigmaClient(srv.URL)

	result := importer.ImportVariables(context.Background(), spec, client)
	if result.TokenSet == nil {
		t.Fatalf("expected ingest to continue despite the collections failure")
	}
	if len(result.Warnings) == 0 {
		t.Errorf("expected a warning about the failed collections fetch")
	}
	if _, ok := result.TokenSet.Tokens["color.brand"]; !ok {
		t.Errorf("expected color.brand to still normalize using the insertion-order fallback")
	}
}

func TestImportVariables_VariablesFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/variables/local"):
			w.WriteHeader(http.StatusUnauthorized)
		case strings.Contains(r.URL.Path, "/variable-collections"):
			_, _ = w.Write([]byte(`{"meta": {"variableCollections": {}}}`))
		}
	}))
	defer srv.Close()

	t.Setenv("TOKENPIPE_TEST_API_KEY", "secret")
	spec := config.SourceSpec{Type: config.KindFigma, FileKey: "file-key", APIKeyEnv: "TOKENPIPE_TEST_API_KEY"}
	client := importer.NewFigmaClient(srv.URL)

	result := importer.ImportVariables(context.Background(), spec, client)
	if result.TokenSet != nil {
		t.Errorf("expected no token set when the variables fetch fails")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}
