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

package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAndReadBack(t *testing.T) {
	ds := New(Alignment, "out.xml")
	ds.AddResource("/data/out.bam", MetaTypeBam)
	ds.AddResource("/data/out.bam.bai", MetaTypeBai)
	ds.SetReference("/refs/lambda.fasta")
	path := filepath.Join(t.TempDir(), "out.xml")
	if err := ds.Write(path); err != nil {
		t.Fatal(err)
	}
	ids, err := Resources(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "/data/out.bam" || ids[1] != "/data/out.bam.bai" {
		t.Error("Resources after Write failed:", ids)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	contents := string(data)
	if !strings.Contains(contents, `Type="AlignmentSet"`) {
		t.Error("dataset type attribute missing")
	}
	if !strings.Contains(contents, `Reference="/refs/lambda.fasta"`) {
		t.Error("dataset reference attribute missing")
	}
	if !strings.Contains(contents, `MetaType="IndexFile.BaiFile"`) {
		t.Error("dataset index meta type missing")
	}
	if !strings.Contains(contents, `Version="1.0"`) {
		t.Error("dataset version attribute missing")
	}
}

func TestUniqueIds(t *testing.T) {
	a := New(Alignment, "a.xml")
	b := New(ConsensusAlignment, "b.xml")
	if a.UniqueID == "" || b.UniqueID == "" || a.UniqueID == b.UniqueID {
		t.Error("dataset unique ids failed:", a.UniqueID, b.UniqueID)
	}
}

func TestResourcesForeignRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lambda.referenceset.xml")
	contents := `<?xml version="1.0" encoding="utf-8"?>
<ReferenceSet xmlns="http://pacificbiosciences.com/PacBioDatasets.xsd">
  <ExternalResources>
    <ExternalResource ResourceId="file:/refs/lambda.fasta"/>
  </ExternalResources>
</ReferenceSet>
`
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}
	ids, err := Resources(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "file:/refs/lambda.fasta" {
		t.Error("Resources on a reference set failed:", ids)
	}
}

func TestResourcesMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xml")
	if err := os.WriteFile(path, []byte("<DataSet><ExternalResources>"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := Resources(path); err == nil {
		t.Error("Resources on malformed XML failed")
	}
	if _, err := Resources(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("Resources on a missing file failed")
	}
}
