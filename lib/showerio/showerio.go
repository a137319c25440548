/*package showerio reads CORSIKA air-shower output files at the event
level. It sits on top of the block framing in lib/blockio and the
versioned sub-block tables in lib/subblocks: a File is opened once,
exposes the decoded run header, and then hands out one Event at a time
until the run end is reached.
*/
package showerio

import (
	"fmt"
	"io"
	"log"

	"github.com/maxnoe/gocorsika/lib/blockio"
	"github.com/maxnoe/gocorsika/lib/fields"
	"github.com/maxnoe/gocorsika/lib/subblocks"
)

// Event is one simulated shower: its decoded event header, the
// particles that reached an observation level, any longitudinal profile
// sub-blocks, and the decoded event end.
type Event struct {
	Header       *fields.Record
	Particles    []subblocks.Particle
	Longitudinal []*fields.Record
	End          *fields.Record
}

// File is a single-pass reader over one CORSIKA output file. It is not
// safe for concurrent use; open the file twice for two independent
// readers.
type File struct {
	path string
	it   *blockio.Iterator

	version   float64
	runHeader *fields.Record
	runEnd    *fields.Record

	eventHeaderLayout *fields.Layout
	eventEndLayout    *fields.Layout
	longLayout        *fields.Layout

	// pending holds a block that was read past the end of the previous
	// event, which can only be the next event's header.
	pending []byte
	done    bool
}

// Open opens the CORSIKA output file at path, undoing gzip or zstd
// compression if needed, and decodes its run header. Files written by a
// CORSIKA version newer than the sub-block tables are still read, using
// the newest known layouts, with a single logged advisory.
func Open(path string) (*File, error) {
	it, err := blockio.Open(path)
	if err != nil { return nil, err }

	block, err := it.Next()
	if err != nil {
		it.Close()
		return nil, fmt.Errorf("The file %s does not contain a full "+
			"first block: %s", path, err.Error())
	}
	if subblocks.KindOf(block) != subblocks.RunHeader {
		it.Close()
		return nil, fmt.Errorf("The file %s does not start with a RUNH "+
			"sub-block, so it is not a CORSIKA output file.", path)
	}

	f := &File{path: path, it: it, version: subblocks.Version(block)}

	runLayout, runKnown := subblocks.RunHeaderLayout(f.version)
	f.eventHeaderLayout, _ = subblocks.EventHeaderLayout(f.version)
	f.eventEndLayout = subblocks.EventEndLayout()
	f.longLayout = subblocks.LongitudinalLayout()

	if !runKnown {
		log.Printf("The file %s was written by CORSIKA %.4g, which is "+
			"newer than the known sub-block tables. Reading it with the "+
			"newest known layouts.", path, f.version)
	}

	f.runHeader, err = runLayout.Decode(block)
	if err != nil {
		it.Close()
		return nil, err
	}

	return f, nil
}

// Version returns the version of the CORSIKA program that wrote the
// file, e.g. 7.741.
func (f *File) Version() float64 { return f.version }

// RunHeader returns the decoded RUNH sub-block.
func (f *File) RunHeader() *fields.Record { return f.runHeader }

// RunEnd returns the decoded RUNE sub-block, or nil if the run end has
// not been reached yet.
func (f *File) RunEnd() *fields.Record { return f.runEnd }

// NextEvent reads the next shower from the file. io.EOF is returned
// after the run end; a *blockio.TruncationError means the file is cut
// off mid-stream.
func (f *File) NextEvent() (*Event, error) {
	if f.done { return nil, io.EOF }

	block, err := f.nextBlock()
	if err == io.EOF {
		f.done = true
		return nil, io.EOF
	} else if err != nil {
		return nil, err
	}

	if kind := subblocks.KindOf(block); kind == subblocks.RunEnd {
		return nil, f.finish(block)
	} else if kind != subblocks.EventHeader {
		return nil, fmt.Errorf("Expected an EVTH sub-block in %s, but "+
			"found a %s sub-block instead.", f.path, kind)
	}

	ev := &Event{}
	ev.Header, err = f.eventHeaderLayout.Decode(block)
	if err != nil { return nil, err }

	for {
		block, err := f.nextBlock()
		if err == io.EOF {
			// A file that stops mid-event was only truncated at a block
			// boundary. The blocks that are there are still returned.
			f.done = true
			return ev, nil
		} else if err != nil {
			return nil, err
		}

		switch subblocks.KindOf(block) {
		case subblocks.ParticleData:
			particles, err := subblocks.Particles(block)
			if err != nil { return nil, err }
			ev.Particles = append(ev.Particles, particles...)
		case subblocks.Longitudinal:
			long, err := f.longLayout.Decode(block)
			if err != nil { return nil, err }
			ev.Longitudinal = append(ev.Longitudinal, long)
		case subblocks.EventEnd:
			ev.End, err = f.eventEndLayout.Decode(block)
			return ev, err
		case subblocks.EventHeader:
			// No EVTE was written for the previous event. Keep the
			// block for the next call rather than losing it.
			f.pending = block
			return ev, nil
		case subblocks.RunEnd:
			if err := f.finish(block); err != io.EOF { return nil, err }
			return ev, nil
		case subblocks.RunHeader:
			return nil, fmt.Errorf("Found a second RUNH sub-block in "+
				"%s. Files with multiple runs are not supported.", f.path)
		}
	}
}

// finish decodes the RUNE block and marks the file as fully read.
func (f *File) finish(block []byte) error {
	runEnd, err := subblocks.RunEndLayout().Decode(block)
	if err != nil { return err }
	f.runEnd = runEnd
	f.done = true
	return io.EOF
}

func (f *File) nextBlock() ([]byte, error) {
	if f.pending != nil {
		block := f.pending
		f.pending = nil
		return block, nil
	}
	return f.it.Next()
}

// Close releases the underlying file. It must be called on every path,
// including after errors and after abandoning a file partway through.
func (f *File) Close() error { return f.it.Close() }
