/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package crossvalidate

import (
	"sort"

	"bennypowers.dev/tokenpipe/model"
)

// color marks a node white (unvisited), gray (on the current DFS path), or
// black (fully explored) — the three-color DFS idiom.
type color int

const (
	white color = iota
	gray
	black
)

// checkCycles implements §4.9 rule 3. Each token's primary value contributes
// at most one edge (name → reference), since TokenValueOrAlias carries a
// single symbolic reference; a cycle is any edge that loops back to a node
// still on the current DFS path.
func checkCycles(ts *model.TokenSet) [][]string {
	edges := make(map[string]string)
	names := make([]string, 0, len(ts.Tokens))
	for name, tok := range ts.Tokens {
		names = append(names, name)
		if tok.Value.IsAlias() {
			edges[name] = tok.Value.Reference
		}
	}
	sort.Strings(names)

	colors := make(map[string]color)
	var cycles [][]string

	var visit func(node string, path []string)
	visit = func(node string, path []string) {
		switch colors[node] {
		case black:
			return
		case gray:
			idx := indexOf(path, node)
			cycle := append(append([]string{}, path[idx:]...), node)
			cycles = append(cycles, cycle)
			return
		}

		colors[node] = gray
		path = append(path, node)
		if next, ok := edges[node]; ok {
			visit(next, path)
		}
		colors[node] = black
	}

	for _, name := range names {
		if colors[name] == white {
			visit(name, nil)
		}
	}

	return cycles
}

func indexOf(path []string, node string) int {
	for i, n := range path {
		if n == node {
			return i
		}
	}
	return -1
}
