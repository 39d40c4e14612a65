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

package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options are the fully parsed settings for one pipeline run. Do not use
// the zero value; start from DefaultOptions.
type Options struct {
	Algorithm         string  `yaml:"algorithm"`
	Input             string  `yaml:"input"`
	Reference         string  `yaml:"reference"`
	Output            string  `yaml:"output"`
	RegionTable       string  `yaml:"regionTable"`
	ReadType          string  `yaml:"readType"`
	UseCcs            string  `yaml:"useccs"`
	MinAccuracy       float64 `yaml:"minAccuracy"`
	MinLength         int     `yaml:"minLength"`
	HitPolicy         string  `yaml:"hitPolicy"`
	Seed              int     `yaml:"seed"`
	MaxHits           int     `yaml:"maxHits"`
	MinAnchorSize     int     `yaml:"minAnchorSize"`
	Concordant        bool    `yaml:"concordant"`
	FilterAdapterOnly bool    `yaml:"filterAdapterOnly"`
	AlgorithmOptions  string  `yaml:"algorithmOptions"`
	ForQuiver         bool    `yaml:"forQuiver"`
	KeepTmpFiles      bool    `yaml:"keepTmpFiles"`
	TmpDir            string  `yaml:"tmpDir"`
	Nproc             int     `yaml:"nproc"`
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Algorithm:     "blasr",
		MinAccuracy:   70,
		MinLength:     50,
		HitPolicy:     "randombest",
		Seed:          1,
		MaxHits:       10,
		MinAnchorSize: 12,
		Nproc:         1,
	}
}

// LoadOptions reads a YAML config file over the defaults. Command line
// flags are applied afterwards, so they override the file.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("cannot parse config file %v: %v", path, err)
	}
	return opts, nil
}
