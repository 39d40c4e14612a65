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

// Package refrepo resolves a reference argument, which can name a
// reference repository directory, a bare FASTA file, or a dataset XML,
// into the concrete files the alignment services need.
package refrepo

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/exascience/elalign/fileutil"
)

// DescriptorName is the metadata file that marks a reference repository.
const DescriptorName = "reference.info.xml"

// Descriptor holds what a reference repository declares about itself in
// its reference.info.xml. File entries are resolved to absolute paths.
type Descriptor struct {
	Dir            string
	FastaFile      string
	IndexFile      string
	AnnotationFile string
	Description    string
}

// DescriptorParseError reports a descriptor that is not well-formed XML.
type DescriptorParseError struct {
	Path string
	Err  error
}

func (e *DescriptorParseError) Error() string {
	return fmt.Sprintf("cannot parse %v: %v", e.Path, e.Err)
}

func (e *DescriptorParseError) Unwrap() error { return e.Err }

// InvalidDescriptorError reports a well-formed descriptor that does not
// describe a usable reference.
type InvalidDescriptorError struct {
	Path   string
	Reason string
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("descriptor %v is invalid: %v", e.Path, e.Reason)
}

type xmlDescriptor struct {
	Reference   *xmlReference   `xml:"reference"`
	Annotations []xmlAnnotation `xml:"annotations>annotation"`
}

type xmlReference struct {
	File        xmlFile        `xml:"file"`
	Description string         `xml:"description"`
	IndexFiles  []xmlIndexFile `xml:"index_file"`
}

type xmlFile struct {
	Format string `xml:"format,attr"`
	Value  string `xml:",chardata"`
}

type xmlIndexFile struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type xmlAnnotation struct {
	Type string `xml:"type,attr"`
	File string `xml:"file"`
}

// ParseDescriptor reads a reference.info.xml. Relative file entries are
// resolved against the descriptor's directory.
func ParseDescriptor(path string) (*Descriptor, error) {
	local, err := fileutil.LocalPath(path)
	if err != nil {
		return nil, err
	}
	if fileutil.FormatOf(local) != fileutil.XML {
		return nil, &InvalidDescriptorError{Path: local, Reason: "not an XML file"}
	}
	data, err := os.ReadFile(local)
	if err != nil {
		return nil, err
	}
	var parsed xmlDescriptor
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, &DescriptorParseError{Path: local, Err: err}
	}
	if parsed.Reference == nil {
		return nil, &InvalidDescriptorError{Path: local, Reason: "no reference element"}
	}
	dir := filepath.Dir(local)
	fasta := resolveEntry(dir, parsed.Reference.File.Value)
	if fasta == "" || !strings.Contains(strings.ToLower(parsed.Reference.File.Format), "text/fasta") {
		return nil, &InvalidDescriptorError{Path: local, Reason: "no file entry in text/fasta format"}
	}
	d := &Descriptor{
		Dir:         dir,
		FastaFile:   fasta,
		Description: strings.TrimSpace(parsed.Reference.Description),
	}
	for _, index := range parsed.Reference.IndexFiles {
		if index.Type == "sawriter" {
			d.IndexFile = resolveEntry(dir, index.Value)
			break
		}
	}
	for _, annotation := range parsed.Annotations {
		if annotation.Type == "adapter" {
			if file := resolveEntry(dir, annotation.File); file != "" {
				d.AnnotationFile = file
				break
			}
		}
	}
	return d, nil
}

func resolveEntry(dir, entry string) string {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return ""
	}
	if filepath.IsAbs(entry) {
		return filepath.Clean(entry)
	}
	return filepath.Join(dir, entry)
}
