/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package importer implements orchestration (C8): retrieving bytes for a
// DTCG or variables-service source, running that source's parser/normalizer
// pipeline, and aggregating the result into the importer-result shape
// specified at the system boundary (§6).
package importer

import "bennypowers.dev/tokenpipe/model"

// Result is the importer-result shape at the system boundary (§6): a token
// set plus the warnings and errors accumulated while producing it. A nil
// TokenSet with a non-empty Errors means the source's ingest was aborted
// (§7 categories 1 and 2); Errors is otherwise empty and soft failures live
// only in Warnings.
type Result struct {
	TokenSet *model.TokenSet
	Warnings []string
	Errors   []string
}

func configErrorResult(err error) Result {
	return Result{Errors: []string{err.Error()}}
}

func fatalErrorResult(err error) Result {
	return Result{Errors: []string{err.Error()}}
}
