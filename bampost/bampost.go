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

// Package bampost finishes BAM output: the filtered alignments are
// sorted into their final location and indexed there.
package bampost

import (
	"fmt"
	"os/exec"

	"github.com/exascience/elalign/fileutil"
	"github.com/exascience/elalign/internal"
)

// Service sorts and indexes the BAM file a pipeline run produces.
type Service struct {
	filtered string
	outBam   string
	nproc    int
}

// New returns a Service that sorts the filtered BAM into outBam and
// indexes it there.
func New(filtered, outBam string, nproc int) *Service {
	return &Service{filtered: filtered, outBam: outBam, nproc: nproc}
}

// CheckAvailability fails when samtools is not installed.
func (s *Service) CheckAvailability() error {
	if _, err := exec.LookPath("samtools"); err != nil {
		return fmt.Errorf("samtools is not installed or not on PATH")
	}
	return nil
}

// Run sorts the filtered BAM into place and writes a .bai next to it.
func (s *Service) Run() error {
	if err := internal.RunShellCommand(s.sortCommandLine()); err != nil {
		return err
	}
	return internal.RunShellCommand(s.indexCommandLine())
}

func (s *Service) sortCommandLine() string {
	return fmt.Sprintf("samtools sort -@ %v -o %v %v", s.nproc,
		fileutil.ShellEscape(s.outBam), fileutil.ShellEscape(s.filtered))
}

func (s *Service) indexCommandLine() string {
	return fmt.Sprintf("samtools index %v", fileutil.ShellEscape(s.outBam))
}
