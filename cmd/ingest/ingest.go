/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package ingest implements the "tokenpipe ingest" subcommand: run every
// configured source's importer (C8) independently and print its result
// (warnings, errors, and an optional cross-token validation pass). Merging
// token sets across sources is a Non-goal (§1), so each source's token set
// is reported on its own rather than combined into one.
package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenpipe/config"
	"bennypowers.dev/tokenpipe/crossvalidate"
	tpfs "bennypowers.dev/tokenpipe/fs"
	"bennypowers.dev/tokenpipe/importer"
	"bennypowers.dev/tokenpipe/internal/logger"
	"bennypowers.dev/tokenpipe/load"
)

// Cmd is the "ingest" subcommand.
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest configured token sources and print the normalized result",
	RunE:  runIngest,
}

func init() {
	Cmd.Flags().Bool("validate", false, "run cross-token validation after ingest")
}

func runIngest(cmd *cobra.Command, args []string) error {
	validate, _ := cmd.Flags().GetBool("validate")

	filesystem := tpfs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")
	fetcher := load.NewHTTPFetcher(load.DefaultMaxSize)
	ctx := cmd.Context()

	hadFailure := false

	for _, spec := range cfg.Sources {
		switch spec.Type {
		case config.KindDTCG:
			hadFailure = ingestDTCGSource(ctx, spec, filesystem, fetcher, validate) || hadFailure
		case config.KindFigma:
			client := importer.NewFigmaClient(spec.BaseURL)
			result := importer.ImportVariables(ctx, spec, client)
			hadFailure = reportResult(result, validate) || hadFailure
		default:
			logger.Error("unrecognized source type %q", spec.Type)
			hadFailure = true
		}
	}

	if hadFailure {
		return errors.New("ingest completed with errors; see diagnostics above")
	}
	return nil
}

// ingestDTCGSource expands a local path's glob pattern (if any) and runs the
// DTCG importer once per resulting file, or once directly for a URL source,
// reporting each file's result independently.
func ingestDTCGSource(ctx context.Context, spec config.SourceSpec, filesystem tpfs.FileSystem, fetcher load.Fetcher, validate bool) bool {
	if spec.URL != "" {
		result := importer.ImportDTCG(ctx, spec, filesystem, fetcher)
		return reportResult(result, validate)
	}

	paths, err := config.ExpandPath(filesystem, ".", spec.Path)
	if err != nil {
		logger.Error("expanding %q: %s", spec.Path, err)
		return true
	}

	hadFailure := false
	for _, path := range paths {
		sub := spec
		sub.Path = path
		result := importer.ImportDTCG(ctx, sub, filesystem, fetcher)
		hadFailure = reportResult(result, validate) || hadFailure
	}
	return hadFailure
}

// reportResult prints one source's warnings and errors, optionally runs
// the cross-token validator (C9) against that source's own token set, and
// reports whether the source's ingest should count as a failure. Sources
// are never combined into one token set (§1 Non-goals).
func reportResult(result importer.Result, validate bool) bool {
	for _, w := range result.Warnings {
		logger.Warn("%s", w)
	}
	for _, e := range result.Errors {
		logger.Error("%s", e)
	}

	if result.TokenSet != nil {
		logger.Info("ingested %d token(s) into %q", len(result.TokenSet.Tokens), result.TokenSet.Metadata.Name)

		if validate {
			v := crossvalidate.Validate(result.TokenSet)
			reportValidation(v)
			if !v.Valid() {
				return true
			}
		}
	}

	return len(result.Errors) > 0
}

func reportValidation(result crossvalidate.Result) {
	for _, t := range result.MissingTypes {
		logger.Warn("required type %q has no representative token", t)
	}
	for _, a := range result.AliasErrors {
		logger.Warn("token %q references unknown token %q", a.TokenName, a.Reference)
	}
	for _, cycle := range result.Cycles {
		logger.Error("circular reference: %s", fmt.Sprint(cycle))
	}
}
