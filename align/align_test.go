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
	"testing"

	"github.com/exascience/elalign/tempfiles"
)

func TestNew(t *testing.T) {
	tmp := tempfiles.New("")
	cases := []struct {
		name      string
		scoreSign int
	}{
		{"blasr", -1},
		{"bowtie", 1},
		{"gmap", 1},
	}
	for _, c := range cases {
		service, err := New(c.name, Options{}, Files{}, tmp)
		if err != nil {
			t.Fatal(err)
		}
		if service.Name() != c.name {
			t.Error("service name failed:", service.Name())
		}
		if service.ScoreSign() != c.scoreSign {
			t.Error("service score sign failed:", c.name, service.ScoreSign())
		}
	}
	if _, err := New("minimap", Options{}, Files{}, tmp); err == nil {
		t.Error("New on an unknown algorithm failed")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 3 || names[0] != "blasr" || names[1] != "bowtie" || names[2] != "gmap" {
		t.Error("Names failed:", names)
	}
}

func TestBlasrCommandLine(t *testing.T) {
	s := &blasr{
		opts: Options{
			Nproc:         4,
			MaxHits:       10,
			MinAnchorSize: 12,
			UseCcs:        "useccsall",
			Concordant:    true,
			OutputBam:     true,
			ExtraArgs:     "--fastMaxInterval",
		},
		files: Files{
			Query:       "/data/run 1/reads.bam",
			Target:      "/refs/lambda.fasta",
			SuffixArray: "/refs/lambda.fasta.sa",
			RegionTable: "/data/regions.rgn.h5",
		},
	}
	cmdline := s.commandLine("/scratch/out.bam")
	want := "blasr /data/run\\ 1/reads.bam /refs/lambda.fasta --bam --out /scratch/out.bam" +
		" --sa /refs/lambda.fasta.sa --regionTable /data/regions.rgn.h5" +
		" --bestn 10 --minMatch 12 --nproc 4 --concordant --useccsall --fastMaxInterval"
	if cmdline != want {
		t.Error("blasr command line failed:", cmdline)
	}
}

func TestBlasrCommandLineMinimal(t *testing.T) {
	s := &blasr{
		opts:  Options{Nproc: 1, MaxHits: 10, MinAnchorSize: 12},
		files: Files{Query: "/data/reads.fasta", Target: "/refs/lambda.fasta"},
	}
	cmdline := s.commandLine("/scratch/out.sam")
	want := "blasr /data/reads.fasta /refs/lambda.fasta --out /scratch/out.sam --bestn 10 --minMatch 12 --nproc 1"
	if cmdline != want {
		t.Error("minimal blasr command line failed:", cmdline)
	}
}

func TestBowtieCommandLines(t *testing.T) {
	s := &bowtie{
		opts:  Options{Nproc: 2, MaxHits: 10, ExtraArgs: "--very-sensitive"},
		files: Files{Query: "/data/reads.fasta", Target: "/refs/lambda.fasta"},
	}
	build := s.buildCommandLine("/scratch/index/target")
	if build != "bowtie2-build -q /refs/lambda.fasta /scratch/index/target" {
		t.Error("bowtie2-build command line failed:", build)
	}
	run := s.alignCommandLine("/scratch/index/target", "/scratch/out.sam")
	want := "bowtie2 -x /scratch/index/target -f /data/reads.fasta -S /scratch/out.sam -p 2 -k 10 --very-sensitive"
	if run != want {
		t.Error("bowtie2 command line failed:", run)
	}
}

func TestGmapCommandLines(t *testing.T) {
	s := &gmap{
		opts:  Options{Nproc: 2, MaxHits: 10},
		files: Files{Query: "/data/reads.fasta", Target: "/refs/lambda.fasta"},
	}
	build := s.buildCommandLine("/scratch/db")
	if build != "gmap_build -D /scratch/db -d target /refs/lambda.fasta" {
		t.Error("gmap_build command line failed:", build)
	}
	run := s.alignCommandLine("/scratch/db", "/scratch/out.sam")
	want := "gmap -D /scratch/db -d target -f samse -t 2 -n 10 /data/reads.fasta > /scratch/out.sam"
	if run != want {
		t.Error("gmap command line failed:", run)
	}
}

func TestNonFastaQueryRejected(t *testing.T) {
	tmp := tempfiles.New(t.TempDir())
	defer tmp.CleanUp(true)
	for _, name := range []string{"bowtie", "gmap"} {
		service, err := New(name, Options{}, Files{Query: "/data/reads.bam", Target: "/refs/lambda.fasta"}, tmp)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := service.Run(); err == nil {
			t.Error(name, "on BAM reads failed")
		}
	}
}
