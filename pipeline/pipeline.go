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

// Package pipeline drives one alignment run from validated options to
// the finished output file: align, filter, post-process, emit.
package pipeline

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/exascience/elalign/align"
	"github.com/exascience/elalign/bampost"
	"github.com/exascience/elalign/dataset"
	"github.com/exascience/elalign/fileutil"
	"github.com/exascience/elalign/filter"
	"github.com/exascience/elalign/tempfiles"
)

// ConfigurationError reports an option combination the pipeline refuses
// to run with.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// EmitError reports a failure to put the finished alignments at their
// destination.
type EmitError struct {
	Src string
	Dst string
	Err error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("cannot emit %v to %v: %v", e.Src, e.Dst, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }

// runner is the part of the filter and post-processing services the
// pipeline drives.
type runner interface {
	CheckAvailability() error
	Run() error
}

// Pipeline runs one alignment job. A Pipeline is used for a single run
// and is not shared between goroutines.
type Pipeline struct {
	Opts  Options
	Files *Files
	Tmp   *tempfiles.Manager

	aligner    align.Service
	newAligner func(name string, opts align.Options, files align.Files, tmp *tempfiles.Manager) (align.Service, error)
	newFilter  func(aligned, target, dest, algorithm string, scoreSign int, opts filter.Options, adapterGff string) runner
	newPost    func(filtered, outBam string, nproc int) runner
}

// New returns a Pipeline for the given options.
func New(opts Options) *Pipeline {
	return &Pipeline{
		Opts:       opts,
		Files:      &Files{},
		Tmp:        tempfiles.New(opts.TmpDir),
		newAligner: align.New,
		newFilter: func(aligned, target, dest, algorithm string, scoreSign int, opts filter.Options, adapterGff string) runner {
			return filter.New(aligned, target, dest, algorithm, scoreSign, opts, adapterGff)
		},
		newPost: func(filtered, outBam string, nproc int) runner {
			return bampost.New(filtered, outBam, nproc)
		},
	}
}

// Run drives the stages in order: validate, align, filter, post-process
// for binary output, emit. The first failure ends the run; scratch
// files are cleaned up whether the run succeeds or not.
func (p *Pipeline) Run() (err error) {
	start := time.Now()
	defer func() {
		log.Println("Cleaning up.")
		p.Tmp.CleanUp(!p.Opts.KeepTmpFiles)
		if err == nil {
			log.Println("Total time:", time.Since(start))
		}
	}()
	log.Println("Validating the input, reference, and output files.")
	if err := p.validate(); err != nil {
		return err
	}
	log.Println("Aligning reads with " + p.aligner.Name() + ".")
	if err := p.align(); err != nil {
		return err
	}
	if err := p.filter(); err != nil {
		return err
	}
	if p.needsBam() {
		log.Println("Sorting and indexing the alignments.")
		if err := p.postProcess(); err != nil {
			return err
		}
	}
	log.Println("Writing the output to " + p.Files.Output + ".")
	if err := p.emit(); err != nil {
		if p.Opts.KeepTmpFiles {
			log.Println("Warning: the output could not be written, the filtered alignments remain at", p.Files.Filtered)
		}
		return err
	}
	return nil
}

func (p *Pipeline) outFormat() fileutil.Format {
	return fileutil.FormatOf(p.Files.Output)
}

func (p *Pipeline) needsBam() bool {
	format := p.outFormat()
	return format == fileutil.BAM || format == fileutil.XML
}

func (p *Pipeline) validate() error {
	if err := p.Files.SetInput(p.Opts.Input); err != nil {
		return err
	}
	if err := p.Files.SetReference(p.Opts.Reference); err != nil {
		return err
	}
	if err := p.Files.SetOutput(p.Opts.Output); err != nil {
		return err
	}
	if p.Opts.RegionTable != "" {
		if err := p.Files.SetRegionTable(p.Opts.RegionTable); err != nil {
			return err
		}
	}
	if p.Opts.ForQuiver {
		log.Println("Warning: the forQuiver option is deprecated and ignored; quiver reads the standard BAM output.")
	}
	if p.Opts.UseCcs == "useccsdenovo" {
		p.Opts.ReadType = "CCS"
	}
	if p.Files.InputFormat == fileutil.CcsH5 {
		p.Opts.ReadType = "CCS"
	}
	switch format := p.outFormat(); format {
	case fileutil.CmpH5:
		return configErrorf("cmp.h5 output is no longer supported, ask for bam output instead")
	case fileutil.BAM, fileutil.XML:
		if p.Opts.Algorithm != "blasr" {
			return configErrorf("%v output requires the blasr algorithm, not %v", format, p.Opts.Algorithm)
		}
		if p.Opts.FilterAdapterOnly {
			return configErrorf("adapter-only filtering cannot produce %v output", format)
		}
	}
	aligner, err := p.newAligner(p.Opts.Algorithm, p.alignOptions(), p.alignFiles(), p.Tmp)
	if err != nil {
		return &ConfigurationError{Msg: err.Error()}
	}
	if err := aligner.CheckAvailability(); err != nil {
		return err
	}
	p.aligner = aligner
	return nil
}

func (p *Pipeline) alignOptions() align.Options {
	return align.Options{
		Nproc:         p.Opts.Nproc,
		MaxHits:       p.Opts.MaxHits,
		MinAnchorSize: p.Opts.MinAnchorSize,
		UseCcs:        p.Opts.UseCcs,
		Concordant:    p.Opts.Concordant,
		OutputBam:     p.needsBam(),
		ExtraArgs:     p.Opts.AlgorithmOptions,
	}
}

func (p *Pipeline) alignFiles() align.Files {
	return align.Files{
		Query:       p.Files.Input,
		Target:      p.Files.Target,
		SuffixArray: p.Files.SuffixArray,
		RegionTable: p.Files.RegionTable,
	}
}

func (p *Pipeline) align() error {
	out, err := p.aligner.Run()
	if err != nil {
		return err
	}
	p.Files.AlignerOut = out
	if out != p.Files.Output {
		p.Tmp.RegisterExisting(out)
	}
	return nil
}

func (p *Pipeline) filter() error {
	suffix := ".sam"
	if p.needsBam() {
		suffix = ".bam"
	}
	dest, err := p.Tmp.RegisterNewFile(suffix)
	if err != nil {
		return err
	}
	p.Files.Filtered = dest
	service := p.newFilter(p.Files.AlignerOut, p.Files.Target, dest, p.Opts.Algorithm,
		p.aligner.ScoreSign(), p.filterOptions(), p.Files.AdapterGff)
	if err := service.CheckAvailability(); err != nil {
		return err
	}
	return service.Run()
}

func (p *Pipeline) filterOptions() filter.Options {
	return filter.Options{
		MinAccuracy:       p.Opts.MinAccuracy,
		MinLength:         p.Opts.MinLength,
		HitPolicy:         p.Opts.HitPolicy,
		Seed:              p.Opts.Seed,
		FilterAdapterOnly: p.Opts.FilterAdapterOnly,
	}
}

func (p *Pipeline) postProcess() error {
	service := p.newPost(p.Files.Filtered, p.Files.OutBam(), p.Opts.Nproc)
	if err := service.CheckAvailability(); err != nil {
		return err
	}
	return service.Run()
}

func (p *Pipeline) emit() error {
	switch p.outFormat() {
	case fileutil.SAM:
		if err := moveFile(p.Files.Filtered, p.Files.Output); err != nil {
			return &EmitError{Src: p.Files.Filtered, Dst: p.Files.Output, Err: err}
		}
	case fileutil.XML:
		return p.emitDataset()
	}
	// BAM output is already in place after post-processing.
	return nil
}

func (p *Pipeline) emitDataset() error {
	typ := dataset.Alignment
	if p.Opts.ReadType == "CCS" {
		typ = dataset.ConsensusAlignment
	}
	outBam := p.Files.OutBam()
	ds := dataset.New(typ, filepath.Base(p.Files.Output))
	ds.AddResource(outBam, dataset.MetaTypeBam)
	if bai := outBam + ".bai"; fileutil.Exists(bai) {
		ds.AddResource(bai, dataset.MetaTypeBai)
	}
	ds.SetReference(p.Files.Target)
	if err := ds.Write(p.Files.Output); err != nil {
		return &EmitError{Src: outBam, Dst: p.Files.Output, Err: err}
	}
	return nil
}

// moveFile renames src to dst, falling back to a copy when the rename
// crosses file systems. A symlinked src is resolved first so the data
// moves, not the link.
func moveFile(src, dst string) error {
	if resolved, err := filepath.EvalSymlinks(src); err == nil {
		src = resolved
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
