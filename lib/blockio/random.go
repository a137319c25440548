package blockio

import (
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadBlock reads the block at the current position of f, skipping
// Fortran record markers as needed. recordSize must be the record size
// used uniformly throughout the file and can be found with
// ReadRecordSize; pass 0 for a file without record framing. This is the
// low-level alternative to Iterator for callers that seek to block
// positions directly, and it is only valid when every record in the
// file has the same size.
func ReadBlock(f io.ReadSeeker, recordSize int) ([]byte, error) {
	if recordSize > 0 {
		pos, err := f.Seek(0, io.SeekCurrent)
		if err != nil { return nil, err }

		if pos == 0 {
			// Skip the leading marker of the first record.
			if _, err := f.Seek(recordMarkerSize, io.SeekStart); err != nil {
				return nil, err
			}
		}
		// A position directly behind a record's payload sits in front of
		// its trailing marker and the next record's leading marker.
		stride := int64(recordSize + 2*recordMarkerSize)
		if (pos+recordMarkerSize)%stride == 0 {
			if _, err := f.Seek(2*recordMarkerSize, io.SeekCurrent); err != nil {
				return nil, err
			}
		}
	}

	block := make([]byte, BlockSizeBytes)
	n, err := io.ReadFull(f, block)
	switch err {
	case nil:
		return block, nil
	case io.EOF:
		return nil, io.EOF
	case io.ErrUnexpectedEOF:
		return nil, truncationf("Read %d bytes of a %d-byte block. The "+
			"file seems to be truncated.", n, BlockSizeBytes)
	default:
		return nil, err
	}
}

// RandomReader provides direct indexed access to the blocks of an
// uncompressed CORSIKA file through a read-only memory mapping. Unlike
// Iterator it supports reading the Nth block without touching the N-1
// blocks before it, at the cost of requiring a plain file on disk:
// compressed streams have no fixed stride to seek along.
type RandomReader struct {
	f *os.File
	m mmap.MMap

	// recordSize is 0 for files without record framing.
	recordSize int
	n          int
}

// OpenRandom maps the file at path. The file must be uncompressed; use
// Open and the Iterator for gzip and zstd files.
func OpenRandom(path string) (*RandomReader, error) {
	isGzip, err := IsGzip(path)
	if err != nil { return nil, err }
	isZstd, err := IsZstd(path)
	if err != nil { return nil, err }
	if isGzip || isZstd {
		return nil, fmt.Errorf("The file %s is compressed. Random block "+
			"access needs the fixed on-disk stride of an uncompressed "+
			"file, so decompress it first or read it through Open().", path)
	}

	f, err := os.Open(path)
	if err != nil { return nil, err }

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	r := &RandomReader{f: f, m: m}
	if len(m) < recordMarkerSize {
		return r, nil
	}

	if string(m[:recordMarkerSize]) != rawMarker {
		r.recordSize = int(int32(SystemByteOrder().Uint32(m)))
		if r.recordSize <= 0 {
			r.Close()
			return nil, fmt.Errorf("The first record marker of %s gives "+
				"the record length %d, which is not a valid CORSIKA "+
				"record size.", path, r.recordSize)
		}
		if r.recordSize%BlockSizeBytes != 0 {
			r.Close()
			return nil, fmt.Errorf("The file %s has records of %d bytes, "+
				"which is not a multiple of the %d-byte block size. Such "+
				"files cannot be block-indexed directly; read them "+
				"through Open() instead.", path, r.recordSize,
				BlockSizeBytes)
		}
	}
	r.n = r.countBlocks()

	return r, nil
}

func (r *RandomReader) countBlocks() int {
	if r.recordSize == 0 { return len(r.m) / BlockSizeBytes }

	stride := r.recordSize + 2*recordMarkerSize
	n := (len(r.m) / stride) * (r.recordSize / BlockSizeBytes)

	// A trailing partial record still holds full blocks behind its
	// leading marker.
	if tail := len(r.m) % stride; tail > recordMarkerSize {
		n += (tail - recordMarkerSize) / BlockSizeBytes
	}
	return n
}

// NBlocks returns the number of whole blocks in the file.
func (r *RandomReader) NBlocks() int { return r.n }

// Block returns a copy of the i-th block of the file, counting from 0
// and skipping record markers.
func (r *RandomReader) Block(i int) ([]byte, error) {
	if i < 0 || i >= r.n {
		return nil, fmt.Errorf("Block %d was requested, but the file "+
			"%s only holds blocks 0 to %d.", i, r.f.Name(), r.n-1)
	}

	var offset int
	if r.recordSize == 0 {
		offset = i * BlockSizeBytes
	} else {
		perRecord := r.recordSize / BlockSizeBytes
		record, block := i/perRecord, i%perRecord
		offset = record*(r.recordSize+2*recordMarkerSize) +
			recordMarkerSize + block*BlockSizeBytes
	}

	block := make([]byte, BlockSizeBytes)
	copy(block, r.m[offset:offset+BlockSizeBytes])
	return block, nil
}

// Close unmaps and closes the file.
func (r *RandomReader) Close() error {
	err := r.m.Unmap()
	if errFile := r.f.Close(); err == nil { err = errFile }
	return err
}
