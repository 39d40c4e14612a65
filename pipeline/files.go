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

package pipeline

import (
	"strings"

	"github.com/exascience/elalign/fileutil"
	"github.com/exascience/elalign/refrepo"
)

// Files collects every file name one pipeline run touches. Only the
// pipeline itself fills it in; the services get copies of the values
// they need.
type Files struct {
	// Input is the canonical reads file, and InputFormat the format of
	// the actual read data behind it.
	Input       string
	InputFormat fileutil.Format
	// ReferencePath is the canonical reference argument, Target the
	// reference FASTA it resolved to, with the optional suffix array,
	// adapter annotations, and description from the repository.
	ReferencePath string
	Target        string
	SuffixArray   string
	AdapterGff    string
	Description   string
	// RegionTable restricts which read regions are aligned.
	RegionTable string
	// Output is the canonical output target named by the caller.
	Output string
	// AlignerOut and Filtered are the intermediate alignment files.
	AlignerOut string
	Filtered   string
}

// SetInput validates the reads argument and records its canonical path
// and content format.
func (f *Files) SetInput(input string) error {
	path, err := fileutil.CheckInput(input, fileutil.ValidInputFormats)
	if err != nil {
		return err
	}
	format, err := fileutil.ContentFormatOf(path)
	if err != nil {
		return err
	}
	f.Input = path
	f.InputFormat = format
	return nil
}

// SetReference resolves the reference argument.
func (f *Files) SetReference(reference string) error {
	bundle, err := refrepo.Resolve(reference)
	if err != nil {
		return err
	}
	f.ReferencePath = bundle.Path
	f.Target = bundle.FastaFile
	f.SuffixArray = bundle.IndexFile
	f.AdapterGff = bundle.AnnotationFile
	f.Description = bundle.Description
	return nil
}

// SetOutput validates the output argument and records its canonical
// path.
func (f *Files) SetOutput(output string) error {
	path, err := fileutil.CheckOutput(output)
	if err != nil {
		return err
	}
	f.Output = path
	return nil
}

// SetRegionTable validates the region table argument and records its
// canonical path.
func (f *Files) SetRegionTable(regionTable string) error {
	path, err := fileutil.CheckRegionTable(regionTable)
	if err != nil {
		return err
	}
	f.RegionTable = path
	return nil
}

// OutBam returns where the final BAM lives: the output itself for BAM
// output, the matching .bam file next to it for XML output.
func (f *Files) OutBam() string {
	if strings.HasSuffix(strings.ToLower(f.Output), ".xml") {
		return f.Output[:len(f.Output)-len("xml")] + "bam"
	}
	return f.Output
}
