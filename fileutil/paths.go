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
	"path/filepath"
	"strings"
)

// Every path has two interchangeable spellings: spaces are literal in
// the local spelling used for filesystem calls, and escaped as "\ " in
// the shell spelling spliced into command lines for external tools.

// ShellEscape converts a path from its local to its shell spelling.
func ShellEscape(path string) string {
	return strings.ReplaceAll(path, " ", "\\ ")
}

func unescapeSpaces(path string) string {
	return strings.ReplaceAll(path, "\\ ", " ")
}

func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LocalPath returns the canonical absolute form of filename in its local
// spelling, accepting either spelling as input.
func LocalPath(filename string) (string, error) {
	abs, err := filepath.Abs(expandUser(filename))
	if err != nil {
		return "", err
	}
	return unescapeSpaces(abs), nil
}

// ShellPath returns the canonical absolute form of filename in its shell
// spelling, accepting either spelling as input.
func ShellPath(filename string) (string, error) {
	local, err := LocalPath(filename)
	if err != nil {
		return "", err
	}
	return ShellEscape(local), nil
}

// Exists reports whether path names an existing file or directory. When
// a direct probe fails, the parent directory is listed to make an NFS
// client drop stale directory cache entries, and the probe is repeated.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	if _, err := os.Stat(path); err == nil {
		return true
	}
	if dir, err := os.Open(filepath.Dir(path)); err == nil {
		_, _ = dir.Readdirnames(0)
		_ = dir.Close()
	}
	_, err := os.Stat(path)
	return err == nil
}
