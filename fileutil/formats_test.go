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

package fileutil

import "testing"

func TestFormatOf(t *testing.T) {
	cases := []struct {
		filename string
		format   Format
	}{
		{"reads.fa", Fasta},
		{"reads.fasta", Fasta},
		{"reads.fsta", Fasta},
		{"reads.fna", Fasta},
		{"READS.FASTA", Fasta},
		{"alignments.sam", SAM},
		{"alignments.bam", BAM},
		{"lambda.fasta.sa", SA},
		{"movies.fofn", Fofn},
		{"set.xml", XML},
		{"movie.pls.h5", PlsH5},
		{"movie.plx.h5", PlxH5},
		{"movie.bas.h5", BaxH5},
		{"movie.bax.h5", BaxH5},
		{"movie.1.bax.h5", BaxH5},
		{"MOVIE.BAX.H5", BaxH5},
		{"aln.cmp.h5", CmpH5},
		{"regions.rgn.h5", RgnH5},
		{"reads.ccs.h5", CcsH5},
		{"plain.h5", Unknown},
		{"reads.txt", Unknown},
		{"noextension", Unknown},
		{"/data/run 1/reads.fasta", Fasta},
		{"/data/run\\ 1/reads.fasta", Fasta},
	}
	for _, c := range cases {
		if format := FormatOf(c.filename); format != c.format {
			t.Error("FormatOf", c.filename, "returned", format, "instead of", c.format)
		}
	}
}

func TestFormatString(t *testing.T) {
	if Fasta.String() != "FASTA" {
		t.Error("Fasta format name failed")
	}
	if BaxH5.String() != "BAX_H5" {
		t.Error("BaxH5 format name failed")
	}
	if CmpH5.String() != "CMP_H5" {
		t.Error("CmpH5 format name failed")
	}
	if Unknown.String() != "UNKNOWN" {
		t.Error("Unknown format name failed")
	}
	if Format(99).String() != "UNKNOWN" {
		t.Error("out of range format name failed")
	}
}

func TestFormatSet(t *testing.T) {
	for _, format := range []Format{Fasta, BaxH5, BasH5, Fofn, CcsH5, BAM, XML} {
		if !ValidInputFormats.Contains(format) {
			t.Error("ValidInputFormats misses", format)
		}
	}
	for _, format := range []Format{SAM, CmpH5, SA, Unknown} {
		if ValidInputFormats.Contains(format) {
			t.Error("ValidInputFormats wrongly contains", format)
		}
	}
	for _, format := range []Format{SAM, BAM, XML, CmpH5} {
		if !ValidOutputFormats.Contains(format) {
			t.Error("ValidOutputFormats misses", format)
		}
	}
	if ValidOutputFormats.Contains(Fasta) {
		t.Error("ValidOutputFormats wrongly contains Fasta")
	}
	if ValidRegionTableFormats.String() != "FOFN, RGN_H5" {
		t.Error("FormatSet String failed:", ValidRegionTableFormats.String())
	}
}
