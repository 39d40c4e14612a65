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

package filter

import "testing"

func TestCommandLine(t *testing.T) {
	opts := Options{MinAccuracy: 70, MinLength: 50, HitPolicy: "randombest", Seed: 1}
	s := New("/scratch/aligned.sam", "/refs/lambda.fasta", "/scratch/filtered.sam", "blasr", -1, opts, "")
	cmdline := s.commandLine()
	want := "samFilter /scratch/aligned.sam /refs/lambda.fasta /scratch/filtered.sam" +
		" -minAccuracy 70 -minLen 50 -hitPolicy randombest -scoreSign -1 -seed 1"
	if cmdline != want {
		t.Error("samFilter command line failed:", cmdline)
	}
}

func TestCommandLineBam(t *testing.T) {
	opts := Options{MinAccuracy: 75.5, MinLength: 100, HitPolicy: "all", FilterAdapterOnly: true}
	s := New("/scratch/aligned.bam", "/refs/lambda.fasta", "/scratch/filtered.bam", "blasr", -1, opts, "/refs/annotations/adapter.gff")
	cmdline := s.commandLine()
	want := "samFilter /scratch/aligned.bam /refs/lambda.fasta /scratch/filtered.bam" +
		" -minAccuracy 75.5 -minLen 100 -hitPolicy all -scoreSign -1 -bam" +
		" -filterAdapterOnly /refs/annotations/adapter.gff"
	if cmdline != want {
		t.Error("samFilter BAM command line failed:", cmdline)
	}
}

func TestCommandLineSeedPolicies(t *testing.T) {
	opts := Options{MinAccuracy: 70, MinLength: 50, HitPolicy: "random", Seed: 42}
	s := New("/scratch/aligned.sam", "/refs/lambda.fasta", "/scratch/filtered.sam", "bowtie", 1, opts, "")
	cmdline := s.commandLine()
	want := "samFilter /scratch/aligned.sam /refs/lambda.fasta /scratch/filtered.sam" +
		" -minAccuracy 70 -minLen 50 -hitPolicy random -scoreSign 1 -seed 42"
	if cmdline != want {
		t.Error("samFilter random policy command line failed:", cmdline)
	}
	opts.HitPolicy = "allbest"
	s = New("/scratch/aligned.sam", "/refs/lambda.fasta", "/scratch/filtered.sam", "bowtie", 1, opts, "")
	cmdline = s.commandLine()
	want = "samFilter /scratch/aligned.sam /refs/lambda.fasta /scratch/filtered.sam" +
		" -minAccuracy 70 -minLen 50 -hitPolicy allbest -scoreSign 1"
	if cmdline != want {
		t.Error("samFilter allbest policy command line failed:", cmdline)
	}
}
