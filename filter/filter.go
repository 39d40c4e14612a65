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

// Package filter wraps the samFilter tool that trims a raw alignment
// file down to the hits worth keeping.
package filter

import (
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/exascience/elalign/fileutil"
	"github.com/exascience/elalign/internal"
)

// Options carries the filter-facing subset of the pipeline options.
type Options struct {
	MinAccuracy       float64
	MinLength         int
	HitPolicy         string
	Seed              int
	FilterAdapterOnly bool
}

// Service filters the alignments an aligner produced into their
// destination file.
type Service struct {
	aligned    string
	target     string
	dest       string
	algorithm  string
	scoreSign  int
	opts       Options
	adapterGff string
}

// New returns a Service that filters aligned against the target
// reference into dest. The score sign must match the aligner that
// produced the file, so the hit policy keeps the right hits.
func New(aligned, target, dest, algorithm string, scoreSign int, opts Options, adapterGff string) *Service {
	return &Service{
		aligned:    aligned,
		target:     target,
		dest:       dest,
		algorithm:  algorithm,
		scoreSign:  scoreSign,
		opts:       opts,
		adapterGff: adapterGff,
	}
}

// CheckAvailability fails when samFilter is not installed.
func (s *Service) CheckAvailability() error {
	if _, err := exec.LookPath("samFilter"); err != nil {
		return fmt.Errorf("samFilter is not installed or not on PATH")
	}
	return nil
}

// Run filters the alignment file into its destination.
func (s *Service) Run() error {
	log.Println("Filtering", s.algorithm, "alignments.")
	return internal.RunShellCommand(s.commandLine())
}

func (s *Service) commandLine() string {
	var cmd strings.Builder
	fmt.Fprintf(&cmd, "samFilter %v %v %v", fileutil.ShellEscape(s.aligned),
		fileutil.ShellEscape(s.target), fileutil.ShellEscape(s.dest))
	fmt.Fprintf(&cmd, " -minAccuracy %v -minLen %v", s.opts.MinAccuracy, s.opts.MinLength)
	fmt.Fprintf(&cmd, " -hitPolicy %v -scoreSign %v", s.opts.HitPolicy, s.scoreSign)
	switch s.opts.HitPolicy {
	case "random", "randombest":
		fmt.Fprintf(&cmd, " -seed %v", s.opts.Seed)
	}
	if fileutil.FormatOf(s.dest) == fileutil.BAM {
		cmd.WriteString(" -bam")
	}
	if s.opts.FilterAdapterOnly && s.adapterGff != "" {
		fmt.Fprintf(&cmd, " -filterAdapterOnly %v", fileutil.ShellEscape(s.adapterGff))
	}
	return cmd.String()
}
