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

// Package fileutil classifies and canonicalizes the file names an
// alignment run works with, and validates them against the formats the
// pipeline accepts at its boundaries.
package fileutil

import (
	"path/filepath"
	"strings"

	"github.com/willf/bitset"
)

// Format identifies a file format by naming convention.
type Format int

// File formats recognized by elalign.
const (
	Unknown Format = iota
	Fasta
	PlsH5
	PlxH5
	BasH5
	BaxH5
	Fofn
	SAM
	CmpH5
	RgnH5
	SA
	XML
	CcsH5
	BAM
)

var formatNames = [...]string{
	Unknown: "UNKNOWN",
	Fasta:   "FASTA",
	PlsH5:   "PLS_H5",
	PlxH5:   "PLX_H5",
	BasH5:   "BAS_H5",
	BaxH5:   "BAX_H5",
	Fofn:    "FOFN",
	SAM:     "SAM",
	CmpH5:   "CMP_H5",
	RgnH5:   "RGN_H5",
	SA:      "SA",
	XML:     "XML",
	CcsH5:   "CCS_H5",
	BAM:     "BAM",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "UNKNOWN"
	}
	return formatNames[f]
}

// FormatOf classifies a file by its name alone. Extensions match case
// insensitively. Files ending in .h5 classify by their penultimate
// extension, so movie.bax.h5 is a BAX_H5 file.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".fa", ".fasta", ".fsta", ".fna":
		return Fasta
	case ".sam":
		return SAM
	case ".bam":
		return BAM
	case ".sa":
		return SA
	case ".fofn":
		return Fofn
	case ".xml":
		return XML
	case ".h5":
		stem := strings.TrimSuffix(filename, filepath.Ext(filename))
		switch strings.ToLower(filepath.Ext(stem)) {
		case ".pls":
			return PlsH5
		case ".plx":
			return PlxH5
		// Multipart bas.h5 files name bax.h5 parts.
		case ".bas", ".bax":
			return BaxH5
		case ".cmp":
			return CmpH5
		case ".rgn":
			return RgnH5
		case ".ccs":
			return CcsH5
		}
	}
	return Unknown
}

// FormatSet is a set of file formats.
type FormatSet struct {
	bits *bitset.BitSet
}

// NewFormatSet returns the set containing the given formats.
func NewFormatSet(formats ...Format) FormatSet {
	bits := bitset.New(uint(len(formatNames)))
	for _, f := range formats {
		bits.Set(uint(f))
	}
	return FormatSet{bits}
}

// Contains tells whether f is in the set.
func (s FormatSet) Contains(f Format) bool {
	return f >= 0 && s.bits.Test(uint(f))
}

func (s FormatSet) String() string {
	var names []string
	for f := Unknown; int(f) < len(formatNames); f++ {
		if s.bits.Test(uint(f)) {
			names = append(names, f.String())
		}
	}
	return strings.Join(names, ", ")
}

// The formats accepted at the pipeline boundaries.
var (
	ValidInputFormats       = NewFormatSet(Fasta, PlsH5, PlxH5, BasH5, BaxH5, Fofn, CcsH5, BAM, XML)
	ValidRegionTableFormats = NewFormatSet(RgnH5, Fofn)
	ValidOutputFormats      = NewFormatSet(CmpH5, SAM, BAM, XML)
)
