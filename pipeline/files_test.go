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
	"os"
	"path/filepath"
	"testing"

	"github.com/exascience/elalign/fileutil"
)

func TestOutBam(t *testing.T) {
	cases := []struct {
		output string
		outBam string
	}{
		{"/data/out.bam", "/data/out.bam"},
		{"/data/out.xml", "/data/out.bam"},
		{"/data/OUT.XML", "/data/OUT.bam"},
		{"/data/out.alignmentset.xml", "/data/out.alignmentset.bam"},
	}
	for _, c := range cases {
		f := &Files{Output: c.output}
		if outBam := f.OutBam(); outBam != c.outBam {
			t.Error("OutBam", c.output, "returned", outBam, "instead of", c.outBam)
		}
	}
}

func TestSetInput(t *testing.T) {
	dir := t.TempDir()
	part := filepath.Join(dir, "movie.1.bax.h5")
	if err := os.WriteFile(part, []byte("h5\n"), 0666); err != nil {
		t.Fatal(err)
	}
	fofn := filepath.Join(dir, "movies.fofn")
	if err := os.WriteFile(fofn, []byte(part+"\n"), 0666); err != nil {
		t.Fatal(err)
	}
	var f Files
	if err := f.SetInput(fofn); err != nil {
		t.Fatal(err)
	}
	if f.Input != fofn {
		t.Error("SetInput path failed:", f.Input)
	}
	if f.InputFormat != fileutil.BaxH5 {
		t.Error("SetInput content format failed:", f.InputFormat)
	}
}

func TestSetInputCcs(t *testing.T) {
	dir := t.TempDir()
	ccs := filepath.Join(dir, "reads.ccs.h5")
	if err := os.WriteFile(ccs, []byte("h5\n"), 0666); err != nil {
		t.Fatal(err)
	}
	var f Files
	if err := f.SetInput(ccs); err != nil {
		t.Fatal(err)
	}
	if f.InputFormat != fileutil.CcsH5 {
		t.Error("SetInput CCS content format failed:", f.InputFormat)
	}
}
