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
	"sort"
	"strings"
)

// FilesFromFofn expands a file of file names into the canonical paths it
// lists. Blank lines are ignored, and the entries are sorted so that the
// parts of a multi-file movie reach downstream tools in a stable order
// no matter how the fofn was assembled.
func FilesFromFofn(fofn string) ([]string, error) {
	local, err := LocalPath(fofn)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(local)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	if len(files) == 0 {
		return nil, &EmptyFofnError{Path: local}
	}
	sort.Strings(files)
	for i := range files {
		if files[i], err = LocalPath(files[i]); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// ContentFormatOf returns the format of the data filename refers to,
// resolving fofn indirection by classifying the first listed file.
func ContentFormatOf(filename string) (Format, error) {
	format := FormatOf(filename)
	if format != Fofn {
		return format, nil
	}
	files, err := FilesFromFofn(filename)
	if err != nil {
		return Unknown, err
	}
	return FormatOf(files[0]), nil
}
