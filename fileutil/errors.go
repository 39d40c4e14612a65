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

import "fmt"

// MissingFileError reports a path that does not exist on disk. Fofn
// names the file of file names through which the path was reached, if
// any.
type MissingFileError struct {
	Path string
	Fofn string
}

func (e *MissingFileError) Error() string {
	if e.Fofn != "" {
		return fmt.Sprintf("file %v listed in %v does not exist", e.Path, e.Fofn)
	}
	return fmt.Sprintf("file %v does not exist", e.Path)
}

// UnsupportedFormatError reports a file whose format is not in the set
// accepted at a pipeline boundary.
type UnsupportedFormatError struct {
	Path   string
	Format Format
	Valid  FormatSet
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%v is a %v file, valid formats are %v", e.Path, e.Format, e.Valid)
}

// UnwritableFileError reports an output path that cannot be opened for
// append.
type UnwritableFileError struct {
	Path string
	Err  error
}

func (e *UnwritableFileError) Error() string {
	return fmt.Sprintf("cannot write file %v: %v", e.Path, e.Err)
}

func (e *UnwritableFileError) Unwrap() error { return e.Err }

// EmptyFofnError reports a file of file names with no usable entries.
type EmptyFofnError struct {
	Path string
}

func (e *EmptyFofnError) Error() string {
	return fmt.Sprintf("no files listed in %v", e.Path)
}
