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

package bampost

import "testing"

func TestCommandLines(t *testing.T) {
	s := New("/scratch/filtered.bam", "/data/out dir/out.bam", 4)
	sort := s.sortCommandLine()
	if sort != "samtools sort -@ 4 -o /data/out\\ dir/out.bam /scratch/filtered.bam" {
		t.Error("samtools sort command line failed:", sort)
	}
	index := s.indexCommandLine()
	if index != "samtools index /data/out\\ dir/out.bam" {
		t.Error("samtools index command line failed:", index)
	}
}
