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

// Package align wraps the external aligners elalign knows how to drive.
// Each service checks for its tools, builds its command lines, and
// produces an alignment file for the filter stage.
package align

import (
	"fmt"
	"os/exec"

	"github.com/exascience/elalign/tempfiles"
)

// Options carries the aligner-facing subset of the pipeline options.
type Options struct {
	Nproc         int
	MaxHits       int
	MinAnchorSize int
	UseCcs        string
	Concordant    bool
	// OutputBam asks for a BAM alignment file instead of SAM, for
	// services that can emit one directly.
	OutputBam bool
	// ExtraArgs is spliced into the aligner command line verbatim.
	ExtraArgs string
}

// Files carries the resolved file names an aligner works on.
type Files struct {
	Query       string
	Target      string
	SuffixArray string
	RegionTable string
}

// Service is an external aligner driven by the pipeline.
type Service interface {
	// Name returns the algorithm name as given on the command line.
	Name() string
	// ScoreSign tells whether smaller (-1) or larger (+1) alignment
	// scores are better for this aligner.
	ScoreSign() int
	// CheckAvailability fails when the underlying tools are not
	// installed.
	CheckAvailability() error
	// Run aligns the query against the target and returns the path of
	// the produced alignment file.
	Run() (string, error)
}

// New returns the service for the given algorithm name.
func New(name string, opts Options, files Files, tmp *tempfiles.Manager) (Service, error) {
	switch name {
	case "blasr":
		return &blasr{opts: opts, files: files, tmp: tmp}, nil
	case "bowtie":
		return &bowtie{opts: opts, files: files, tmp: tmp}, nil
	case "gmap":
		return &gmap{opts: opts, files: files, tmp: tmp}, nil
	}
	return nil, fmt.Errorf("unknown alignment algorithm %v", name)
}

// Names lists the supported algorithm names.
func Names() []string {
	return []string{"blasr", "bowtie", "gmap"}
}

func lookPath(tools ...string) error {
	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%v is not installed or not on PATH", tool)
		}
	}
	return nil
}
