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
	"path/filepath"

	"github.com/exascience/elalign/fileutil"
	"github.com/exascience/elalign/internal"
	"github.com/exascience/elalign/tempfiles"
)

// bowtie drives bowtie2 over FASTA reads, building the target index in a
// scratch directory first.
type bowtie struct {
	opts  Options
	files Files
	tmp   *tempfiles.Manager
}

func (s *bowtie) Name() string { return "bowtie" }

// Larger bowtie2 alignment scores are better.
func (s *bowtie) ScoreSign() int { return 1 }

func (s *bowtie) CheckAvailability() error {
	return lookPath("bowtie2", "bowtie2-build")
}

func (s *bowtie) Run() (string, error) {
	if format := fileutil.FormatOf(s.files.Query); format != fileutil.Fasta {
		return "", fmt.Errorf("bowtie only aligns FASTA reads, not %v", format)
	}
	indexDir, err := s.tmp.RegisterNewDir()
	if err != nil {
		return "", err
	}
	index := filepath.Join(indexDir, "target")
	if err := internal.RunShellCommand(s.buildCommandLine(index)); err != nil {
		return "", err
	}
	out, err := s.tmp.RegisterNewFile(".sam")
	if err != nil {
		return "", err
	}
	if err := internal.RunShellCommand(s.alignCommandLine(index, out)); err != nil {
		return "", err
	}
	return out, nil
}

func (s *bowtie) buildCommandLine(index string) string {
	return fmt.Sprintf("bowtie2-build -q %v %v", fileutil.ShellEscape(s.files.Target), fileutil.ShellEscape(index))
}

func (s *bowtie) alignCommandLine(index, out string) string {
	cmdline := fmt.Sprintf("bowtie2 -x %v -f %v -S %v -p %v -k %v",
		fileutil.ShellEscape(index), fileutil.ShellEscape(s.files.Query),
		fileutil.ShellEscape(out), s.opts.Nproc, s.opts.MaxHits)
	if s.opts.ExtraArgs != "" {
		cmdline += " " + s.opts.ExtraArgs
	}
	return cmdline
}
