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

package refrepo

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/exascience/elalign/dataset"
	"github.com/exascience/elalign/fileutil"
)

// Bundle is the outcome of resolving a reference argument.
type Bundle struct {
	// Path is the canonical form of the argument.
	Path string
	// FastaFile is the reference sequence.
	FastaFile string
	// IndexFile is the blasr suffix array, when the repository has a
	// usable one.
	IndexFile string
	// AnnotationFile is the adapter annotation GFF, when the repository
	// has one.
	AnnotationFile string
	// Description is the free-form description from the repository.
	Description string
	// FromRepository tells whether a repository descriptor was used.
	FromRepository bool
}

// AmbiguousReferenceError reports a dataset XML that names more than one
// reference.
type AmbiguousReferenceError struct {
	Path  string
	Count int
}

func (e *AmbiguousReferenceError) Error() string {
	return fmt.Sprintf("dataset %v names %v references, expected exactly one", e.Path, e.Count)
}

// ReferenceNotFoundError reports a reference argument under which no
// reference sequence could be located.
type ReferenceNotFoundError struct {
	Path string
	Err  error
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("no usable reference under %v: %v", e.Path, e.Err)
}

func (e *ReferenceNotFoundError) Unwrap() error { return e.Err }

// InvalidReferenceError reports a resolved reference sequence that is
// not an existing FASTA file.
type InvalidReferenceError struct {
	Path string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("reference %v is not an existing FASTA file", e.Path)
}

// Resolve locates the reference files behind a reference argument. The
// argument can be a repository directory holding a reference.info.xml, a
// FASTA file, or a dataset XML naming exactly one reference. A FASTA or
// dataset argument still picks up the repository descriptor when one
// sits two directory levels up; a descriptor that cannot be used
// downgrades the result to the bare FASTA file.
func Resolve(arg string) (*Bundle, error) {
	local, err := fileutil.LocalPath(arg)
	if err != nil {
		return nil, err
	}
	if !fileutil.Exists(local) {
		return nil, &fileutil.MissingFileError{Path: local}
	}
	bundle := &Bundle{Path: local}
	var descriptorPath string
	switch fileutil.FormatOf(local) {
	case fileutil.Fasta:
		bundle.FastaFile = local
		descriptorPath = filepath.Join(filepath.Dir(filepath.Dir(local)), DescriptorName)
	case fileutil.XML:
		fasta, err := datasetReference(local)
		if err != nil {
			return nil, err
		}
		bundle.FastaFile = fasta
		descriptorPath = filepath.Join(filepath.Dir(filepath.Dir(local)), DescriptorName)
	default:
		descriptorPath = filepath.Join(local, DescriptorName)
	}
	if d, err := ParseDescriptor(descriptorPath); err == nil {
		bundle.FastaFile = d.FastaFile
		bundle.IndexFile = d.IndexFile
		bundle.AnnotationFile = d.AnnotationFile
		bundle.Description = d.Description
		bundle.FromRepository = true
	} else {
		if bundle.FastaFile == "" {
			return nil, &ReferenceNotFoundError{Path: local, Err: err}
		}
		// A missing descriptor is the normal case for a bare FASTA
		// reference, but a broken one deserves a diagnostic.
		var parseErr *DescriptorParseError
		var invalidErr *InvalidDescriptorError
		if errors.As(err, &parseErr) || errors.As(err, &invalidErr) {
			log.Printf("Warning: ignoring %v", err)
		}
	}
	if !fileutil.Exists(bundle.FastaFile) || fileutil.FormatOf(bundle.FastaFile) != fileutil.Fasta {
		return nil, &InvalidReferenceError{Path: bundle.FastaFile}
	}
	if bundle.IndexFile != "" {
		if !fileutil.Exists(bundle.IndexFile) || fileutil.FormatOf(bundle.IndexFile) != fileutil.SA {
			log.Printf("Warning: ignoring unusable suffix array %v for reference %v", bundle.IndexFile, bundle.FastaFile)
			bundle.IndexFile = ""
		}
	}
	return bundle, nil
}

func datasetReference(path string) (string, error) {
	resources, err := dataset.Resources(path)
	if err != nil {
		return "", &ReferenceNotFoundError{Path: path, Err: err}
	}
	switch len(resources) {
	case 1:
		return fileutil.LocalPath(strings.TrimPrefix(resources[0], "file:"))
	case 0:
		return "", &ReferenceNotFoundError{Path: path, Err: errors.New("dataset names no external resources")}
	default:
		return "", &AmbiguousReferenceError{Path: path, Count: len(resources)}
	}
}
