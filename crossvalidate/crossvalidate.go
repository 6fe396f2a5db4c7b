/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package crossvalidate implements the post-normalization cross-token
// validator (C9): required-type coverage, alias-target existence, and
// circular-reference detection. Grounded on the teacher's
// resolver/graph.go, whose three-color DFS cycle detection solves the
// same shape of problem for a different purpose (topological sort of
// eagerly-resolved tokens) — here it detects and reports cycles without
// ever resolving anything.
package crossvalidate

import (
	"fmt"
	"sort"

	"bennypowers.dev/tokenpipe/model"
)

// AliasError is one alias-target existence failure (§4.9 rule 2).
type AliasError struct {
	TokenName string
	Reference string
}

// Result is the aggregate outcome of the three checks in §4.9.
type Result struct {
	MissingTypes []model.TokenType
	AliasErrors  []AliasError
	Cycles       [][]string
}

// Valid reports whether the token set passed all three checks.
func (r Result) Valid() bool {
	return len(r.MissingTypes) == 0 && len(r.AliasErrors) == 0 && len(r.Cycles) == 0
}

// Validate runs all three cross-token checks against a token set.
func Validate(ts *model.TokenSet) Result {
	return Result{
		MissingTypes: checkRequiredTypes(ts),
		AliasErrors:  checkAliasTargets(ts),
		Cycles:       checkCycles(ts),
	}
}

// checkRequiredTypes implements §4.9 rule 1.
func checkRequiredTypes(ts *model.TokenSet) []model.TokenType {
	present := make(map[model.TokenType]bool)
	for _, tok := range ts.Tokens {
		present[tok.Type] = true
	}

	var missing []model.TokenType
	for _, t := range model.RequiredTypes {
		if !present[t] {
			missing = append(missing, t)
		}
	}
	return missing
}

// checkAliasTargets implements §4.9 rule 2, checking both primary values and
// mode values, in a deterministic (sorted) token and mode order.
func checkAliasTargets(ts *model.TokenSet) []AliasError {
	var errs []AliasError

	for _, name := range sortedTokenNames(ts) {
		tok := ts.Tokens[name]

		if tok.Value.IsAlias() {
			if _, ok := ts.Tokens[tok.Value.Reference]; !ok {
				errs = append(errs, AliasError{TokenName: name, Reference: tok.Value.Reference})
			}
		}

		for _, modeName := range sortedModeNames(tok.Modes) {
			mv := tok.Modes[modeName]
			if !mv.IsAlias() {
				continue
			}
			if _, ok := ts.Tokens[mv.Reference]; !ok {
				errs = append(errs, AliasError{
					TokenName: fmt.Sprintf("%s (mode: %s)", name, modeName),
					Reference: mv.Reference,
				})
			}
		}
	}

	return errs
}

func sortedTokenNames(ts *model.TokenSet) []string {
	names := make([]string, 0, len(ts.Tokens))
	for name := range ts.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedModeNames(modes map[string]model.TokenValueOrAlias) []string {
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
