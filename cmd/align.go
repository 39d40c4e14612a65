// elAlign: a tool for aligning PacBio reads to reference sequences.
// Copyright (c) 2019-2022 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elalign/blob/master/LICENSE.txt>.

package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/exascience/elalign/pipeline"
)

// AlignHelp is the help string for the elalign align command.
const AlignHelp = "\nalign parameters:\n" +
	"elalign align reads reference alignment-output\n" +
	"[--algorithm [blasr | bowtie | gmap]]\n" +
	"[--region-table file]\n" +
	"[--min-accuracy n]\n" +
	"[--min-length n]\n" +
	"[--hit-policy [randombest | random | all | allbest | leftmost]]\n" +
	"[--seed n]\n" +
	"[--max-hits n]\n" +
	"[--min-anchor-size n]\n" +
	"[--concordant]\n" +
	"[--useccs [useccs | useccsall | useccsdenovo]]\n" +
	"[--filter-adapter-only]\n" +
	"[--algorithm-options options]\n" +
	"[--for-quiver]\n" +
	"[--config file]\n" +
	"[--keep-tmp-files]\n" +
	"[--tmp-dir dir]\n" +
	"[--nproc n]\n" +
	"[--log-path path]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--help]\n"

// Align parses the command line of the align command, validates it, and
// runs the alignment pipeline.
func Align() error {
	opts := pipeline.DefaultOptions()

	// The config file supplies defaults, so it is loaded before the
	// remaining flags are parsed over it.
	for i, arg := range os.Args {
		var path string
		switch {
		case arg == "-config" || arg == "--config":
			if i+1 < len(os.Args) {
				path = os.Args[i+1]
			}
		case strings.HasPrefix(arg, "-config="):
			path = arg[len("-config="):]
		case strings.HasPrefix(arg, "--config="):
			path = arg[len("--config="):]
		}
		if path != "" {
			var err error
			if opts, err = pipeline.LoadOptions(path); err != nil {
				return err
			}
		}
	}

	var flags flag.FlagSet

	var (
		configFile string
		logPath    string
		timed      bool
		profile    string
	)

	flags.StringVar(&opts.Algorithm, "algorithm", opts.Algorithm, "the alignment algorithm to use")
	flags.StringVar(&opts.RegionTable, "region-table", opts.RegionTable, "restrict alignment to the read regions in this file")
	flags.Float64Var(&opts.MinAccuracy, "min-accuracy", opts.MinAccuracy, "minimum percent accuracy of hits to keep")
	flags.IntVar(&opts.MinLength, "min-length", opts.MinLength, "minimum length of hits to keep")
	flags.StringVar(&opts.HitPolicy, "hit-policy", opts.HitPolicy, "how to pick among multiple hits for the same read")
	flags.IntVar(&opts.Seed, "seed", opts.Seed, "seed for the random hit policies")
	flags.IntVar(&opts.MaxHits, "max-hits", opts.MaxHits, "maximum number of hits the aligner reports per read")
	flags.IntVar(&opts.MinAnchorSize, "min-anchor-size", opts.MinAnchorSize, "minimum anchor size for the aligner")
	flags.BoolVar(&opts.Concordant, "concordant", opts.Concordant, "map subreads of a ZMW to where its longest subread aligned")
	flags.StringVar(&opts.UseCcs, "useccs", opts.UseCcs, "align the circular consensus sequence instead of the subreads")
	flags.BoolVar(&opts.FilterAdapterOnly, "filter-adapter-only", opts.FilterAdapterOnly, "only keep hits that are flanked by adapters")
	flags.StringVar(&opts.AlgorithmOptions, "algorithm-options", opts.AlgorithmOptions, "extra options passed to the aligner verbatim")
	flags.BoolVar(&opts.ForQuiver, "for-quiver", opts.ForQuiver, "deprecated, quiver reads the standard bam output")
	flags.BoolVar(&opts.KeepTmpFiles, "keep-tmp-files", opts.KeepTmpFiles, "keep the scratch files of this run for inspection")
	flags.StringVar(&opts.TmpDir, "tmp-dir", opts.TmpDir, "directory to keep the scratch files of this run in")
	flags.IntVar(&opts.Nproc, "nproc", opts.Nproc, "number of worker threads for the external tools")
	flags.StringVar(&configFile, "config", "", "YAML file with option defaults")
	flags.StringVar(&logPath, "log-path", "", "write log files to this directory")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to this file")

	parseFlags(flags, 5, AlignHelp)

	opts.Input = getFilename(os.Args[2], AlignHelp)
	opts.Reference = getFilename(os.Args[3], AlignHelp)
	opts.Output = getFilename(os.Args[4], AlignHelp)

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	if !checkExist("", opts.Input) {
		sanityChecksFailed = true
	}
	if !checkExist("", opts.Reference) {
		sanityChecksFailed = true
	}
	if !checkCreate("", opts.Output) {
		sanityChecksFailed = true
	}
	if opts.RegionTable != "" && !checkExist("--region-table", opts.RegionTable) {
		sanityChecksFailed = true
	}
	if configFile != "" && !checkExist("--config", configFile) {
		sanityChecksFailed = true
	}
	if !checkAlgorithm(opts.Algorithm) {
		sanityChecksFailed = true
	}
	if !checkHitPolicy(opts.HitPolicy) {
		sanityChecksFailed = true
	}
	if !checkUseCcs(opts.UseCcs) {
		sanityChecksFailed = true
	}
	if !checkPercentage("--min-accuracy", opts.MinAccuracy) {
		sanityChecksFailed = true
	}
	if !checkPositive("--min-length", opts.MinLength) {
		sanityChecksFailed = true
	}
	if !checkPositive("--nproc", opts.Nproc) {
		sanityChecksFailed = true
	}
	if profile != "" && !checkCreate("--profile", profile) {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, AlignHelp)
		os.Exit(1)
	}

	p := pipeline.New(opts)

	var runErr error
	timedRun(timed, profile, "Running the alignment pipeline.", 1, func() {
		runErr = p.Run()
	})
	return runErr
}
