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
	"strings"

	"github.com/exascience/elalign/fileutil"
	"github.com/exascience/elalign/internal"
	"github.com/exascience/elalign/tempfiles"
)

// blasr drives the native PacBio aligner. It accepts all supported read
// inputs and is the only service that can emit BAM directly.
type blasr struct {
	opts  Options
	files Files
	tmp   *tempfiles.Manager
}

func (s *blasr) Name() string { return "blasr" }

// Smaller blasr alignment scores are better.
func (s *blasr) ScoreSign() int { return -1 }

func (s *blasr) CheckAvailability() error {
	return lookPath("blasr")
}

func (s *blasr) Run() (string, error) {
	suffix := ".sam"
	if s.opts.OutputBam {
		suffix = ".bam"
	}
	out, err := s.tmp.RegisterNewFile(suffix)
	if err != nil {
		return "", err
	}
	if err := internal.RunShellCommand(s.commandLine(out)); err != nil {
		return "", err
	}
	return out, nil
}

func (s *blasr) commandLine(out string) string {
	var cmd strings.Builder
	fmt.Fprintf(&cmd, "blasr %v %v", fileutil.ShellEscape(s.files.Query), fileutil.ShellEscape(s.files.Target))
	if s.opts.OutputBam {
		cmd.WriteString(" --bam")
	}
	fmt.Fprintf(&cmd, " --out %v", fileutil.ShellEscape(out))
	if s.files.SuffixArray != "" {
		fmt.Fprintf(&cmd, " --sa %v", fileutil.ShellEscape(s.files.SuffixArray))
	}
	if s.files.RegionTable != "" {
		fmt.Fprintf(&cmd, " --regionTable %v", fileutil.ShellEscape(s.files.RegionTable))
	}
	fmt.Fprintf(&cmd, " --bestn %v --minMatch %v --nproc %v", s.opts.MaxHits, s.opts.MinAnchorSize, s.opts.Nproc)
	if s.opts.Concordant {
		cmd.WriteString(" --concordant")
	}
	switch s.opts.UseCcs {
	case "useccs":
		cmd.WriteString(" --useccs")
	case "useccsall":
		cmd.WriteString(" --useccsall")
	case "useccsdenovo":
		cmd.WriteString(" --useccsdenovo")
	}
	if s.opts.ExtraArgs != "" {
		cmd.WriteString(" ")
		cmd.WriteString(s.opts.ExtraArgs)
	}
	return cmd.String()
}
