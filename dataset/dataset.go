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

// Package dataset reads and writes the XML descriptors that tie
// alignment and reference files together with their indices.
package dataset

import (
	"encoding/xml"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/exascience/elalign/fileutil"
)

// Type distinguishes the kinds of datasets elalign writes.
type Type string

// Dataset types.
const (
	Alignment          Type = "AlignmentSet"
	ConsensusAlignment Type = "ConsensusAlignmentSet"
)

// MetaTypes for external resources.
const (
	MetaTypeBam = "AlignmentFile.BamFile"
	MetaTypeBai = "IndexFile.BaiFile"
)

// Version identifies the dataset layout written by this package.
const Version = "1.0"

// ExternalResource names one file a dataset is backed by.
type ExternalResource struct {
	ResourceID string `xml:"ResourceId,attr"`
	MetaType   string `xml:"MetaType,attr,omitempty"`
	Reference  string `xml:"Reference,attr,omitempty"`
}

// DataSet is the on-disk XML structure.
type DataSet struct {
	XMLName           xml.Name           `xml:"DataSet"`
	Type              Type               `xml:"Type,attr"`
	Name              string             `xml:"Name,attr,omitempty"`
	UniqueID          string             `xml:"UniqueId,attr"`
	CreatedAt         string             `xml:"CreatedAt,attr"`
	Version           string             `xml:"Version,attr"`
	ExternalResources []ExternalResource `xml:"ExternalResources>ExternalResource"`
}

// New returns an empty dataset of the given type.
func New(t Type, name string) *DataSet {
	return &DataSet{
		Type:      t,
		Name:      name,
		UniqueID:  uuid.New().String(),
		CreatedAt: time.Now().Format(time.RFC3339),
		Version:   Version,
	}
}

// AddResource appends an external resource entry.
func (ds *DataSet) AddResource(resourceID, metaType string) {
	ds.ExternalResources = append(ds.ExternalResources, ExternalResource{
		ResourceID: resourceID,
		MetaType:   metaType,
	})
}

// SetReference stamps the reference file on every external resource, so
// a consumer can pair any of the files with the sequence they were
// aligned against.
func (ds *DataSet) SetReference(reference string) {
	for i := range ds.ExternalResources {
		ds.ExternalResources[i].Reference = reference
	}
}

// Write serializes the dataset to path.
func (ds *DataSet) Write(path string) error {
	data, err := xml.MarshalIndent(ds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte(xml.Header), data...), 0666)
}

// Resources returns the ResourceId of every external resource in the
// dataset XML at path, in document order. The root element name does not
// matter, so reference sets from other tools can be read as well.
func Resources(path string) ([]string, error) {
	local, err := fileutil.LocalPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(local)
	if err != nil {
		return nil, err
	}
	var parsed struct {
		ExternalResources []ExternalResource `xml:"ExternalResources>ExternalResource"`
	}
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	var ids []string
	for _, res := range parsed.ExternalResources {
		if res.ResourceID != "" {
			ids = append(ids, res.ResourceID)
		}
	}
	return ids, nil
}
