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

import (
	"os"

	"github.com/exascience/pargo/parallel"
)

// CheckInput validates an input file against the set of formats accepted
// for it and returns its canonical path. A fofn input is expanded, and
// every file it lists must exist.
func CheckInput(filename string, valid FormatSet) (string, error) {
	format := FormatOf(filename)
	if !valid.Contains(format) {
		return "", &UnsupportedFormatError{Path: filename, Format: format, Valid: valid}
	}
	local, err := LocalPath(filename)
	if err != nil {
		return "", err
	}
	if !Exists(local) {
		return "", &MissingFileError{Path: local}
	}
	if format == Fofn {
		files, err := FilesFromFofn(local)
		if err != nil {
			return "", err
		}
		// A movie can fan out into hundreds of part files on NFS, so
		// probe them in parallel and only scan for the culprit when
		// one is missing.
		if !parallel.RangeAnd(0, len(files), 0, func(low, high int) bool {
			for _, file := range files[low:high] {
				if !Exists(file) {
					return false
				}
			}
			return true
		}) {
			for _, file := range files {
				if !Exists(file) {
					return "", &MissingFileError{Path: file, Fofn: local}
				}
			}
		}
	}
	return local, nil
}

// CheckRegionTable validates a region table file and returns its
// canonical path.
func CheckRegionTable(filename string) (string, error) {
	return CheckInput(filename, ValidRegionTableFormats)
}

// CheckOutput validates an output target and returns its canonical path.
// The name must classify as an accepted output format, and the path must
// be openable for append, which probes writability without truncating a
// file that is already there.
func CheckOutput(filename string) (string, error) {
	format := FormatOf(filename)
	if !ValidOutputFormats.Contains(format) {
		return "", &UnsupportedFormatError{Path: filename, Format: format, Valid: ValidOutputFormats}
	}
	local, err := LocalPath(filename)
	if err != nil {
		return "", err
	}
	file, err := os.OpenFile(local, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return "", &UnwritableFileError{Path: local, Err: err}
	}
	if err := file.Close(); err != nil {
		return "", &UnwritableFileError{Path: local, Err: err}
	}
	return local, nil
}
