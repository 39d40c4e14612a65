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

// Package tempfiles tracks the scratch files and directories one
// pipeline run creates, so they can be removed in a single sweep when
// the run is over.
package tempfiles

import (
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Manager hands out uniquely named scratch paths below a per-run root
// directory. A Manager belongs to a single pipeline run; concurrent runs
// get distinct roots.
type Manager struct {
	base      string
	root      string
	artifacts []string
	tracked   map[string]bool
}

// New returns a Manager that keeps its scratch root below base, or below
// the system temp directory when base is empty.
func New(base string) *Manager {
	return &Manager{base: base, tracked: make(map[string]bool)}
}

// Root returns the per-run scratch directory, creating it on first use.
func (m *Manager) Root() (string, error) {
	if m.root == "" {
		base := m.base
		if base == "" {
			base = os.TempDir()
		}
		root := filepath.Join(base, "elalign-"+uuid.New().String())
		if err := os.MkdirAll(root, 0755); err != nil {
			return "", err
		}
		m.root = root
	}
	return m.root, nil
}

// RegisterNewFile returns a fresh scratch path ending in suffix. The
// file itself is not created; the caller that wants it creates it.
func (m *Manager) RegisterNewFile(suffix string) (string, error) {
	root, err := m.Root()
	if err != nil {
		return "", err
	}
	path := filepath.Join(root, uuid.New().String()+suffix)
	m.track(path)
	return path, nil
}

// RegisterNewDir creates and returns a fresh scratch directory.
func (m *Manager) RegisterNewDir() (string, error) {
	root, err := m.Root()
	if err != nil {
		return "", err
	}
	path := filepath.Join(root, uuid.New().String())
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", err
	}
	m.track(path)
	return path, nil
}

// RegisterExisting adopts an artifact created elsewhere. Registering the
// same path twice is a no-op.
func (m *Manager) RegisterExisting(path string) {
	m.track(path)
}

func (m *Manager) track(path string) {
	if !m.tracked[path] {
		m.tracked[path] = true
		m.artifacts = append(m.artifacts, path)
	}
}

// CleanUp removes every tracked artifact and the scratch root when
// realDelete is set, and merely forgets them otherwise so they stay
// around for inspection. Artifacts that are already gone are not an
// error, and calling CleanUp without any artifacts does nothing.
func (m *Manager) CleanUp(realDelete bool) {
	if realDelete {
		for _, path := range m.artifacts {
			if err := os.RemoveAll(path); err != nil {
				log.Printf("Warning: cannot remove %v: %v", path, err)
			}
		}
		if m.root != "" {
			if err := os.RemoveAll(m.root); err != nil {
				log.Printf("Warning: cannot remove %v: %v", m.root, err)
			}
		}
	}
	m.artifacts = nil
	m.tracked = make(map[string]bool)
	m.root = ""
}
