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

package align

import (
	"fmt"

	"github.com/exascience/elalign/fileutil"
	"github.com/exascience/elalign/internal"
	"github.com/exascience/elalign/tempfiles"
)

// gmap drives the gmap cDNA aligner over FASTA reads, building its
// database in a scratch directory first.
type gmap struct {
	opts  Options
	files Files
	tmp   *tempfiles.Manager
}

func (s *gmap) Name() string { return "gmap" }

// Larger gmap alignment scores are better.
func (s *gmap) ScoreSign() int { return 1 }

func (s *gmap) CheckAvailability() error {
	return lookPath("gmap", "gmap_build")
}

func (s *gmap) Run() (string, error) {
	if format := fileutil.FormatOf(s.files.Query); format != fileutil.Fasta {
		return "", fmt.Errorf("gmap only aligns FASTA reads, not %v", format)
	}
	dbDir, err := s.tmp.RegisterNewDir()
	if err != nil {
		return "", err
	}
	if err := internal.RunShellCommand(s.buildCommandLine(dbDir)); err != nil {
		return "", err
	}
	out, err := s.tmp.RegisterNewFile(".sam")
	if err != nil {
		return "", err
	}
	if err := internal.RunShellCommand(s.alignCommandLine(dbDir, out)); err != nil {
		return "", err
	}
	return out, nil
}

func (s *gmap) buildCommandLine(dbDir string) string {
	return fmt.Sprintf("gmap_build -D %v -d target %v", fileutil.ShellEscape(dbDir), fileutil.ShellEscape(s.files.Target))
}

// gmap writes SAM to standard output, so the command line redirects it.
func (s *gmap) alignCommandLine(dbDir, out string) string {
	cmdline := fmt.Sprintf("gmap -D %v -d target -f samse -t %v -n %v",
		fileutil.ShellEscape(dbDir), s.opts.Nproc, s.opts.MaxHits)
	if s.opts.ExtraArgs != "" {
		cmdline += " " + s.opts.ExtraArgs
	}
	return fmt.Sprintf("%v %v > %v", cmdline, fileutil.ShellEscape(s.files.Query), fileutil.ShellEscape(out))
}
