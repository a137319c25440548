/*package blockio handles the low-level structure of CORSIKA output files:
the optional whole-file compression, the optional Fortran sequential-record
markers, and the partitioning of the byte stream into the fixed-size blocks
that all higher-level code works with.

CORSIKA writes its output in one of two framings. If the compiler wrote the
file as a plain binary stream, blocks of 273 4-byte values are laid back to
back and the file starts with the ASCII marker "RUNH". If the file was
written as a Fortran sequential file, the stream is divided into records,
each bracketed by a 4-byte integer holding the record's length in bytes,
and each record holds a whole number of blocks. The two cases can only be
told apart by looking at the first four bytes.
*/
package blockio

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/DataDog/zstd"
)

const (
	// BlockSize is the number of 4-byte values in a CORSIKA block.
	BlockSize = 273
	// BlockSizeBytes is the size of a CORSIKA block in bytes.
	BlockSizeBytes = 4 * BlockSize
	// DefaultRecordSize is the record size assumed for Fortran-framed
	// streams whose leading record marker could not be read. It matches
	// the buffer size CORSIKA itself uses in the common configuration.
	DefaultRecordSize = 100 * BlockSizeBytes

	// recordMarkerSize is the size of the integers bracketing each record
	// of a Fortran sequential file.
	recordMarkerSize = 4

	// rawMarker starts the first block of a file written without record
	// framing.
	rawMarker = "RUNH"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// TruncationError is returned when a read ends partway through a unit
// whose length had already been committed to: a block, a record marker,
// or a record payload. The data is gone, so it is never retried and no
// padded or partial block is ever fabricated.
type TruncationError struct {
	msg string
}

func (err *TruncationError) Error() string { return err.msg }

func truncationf(format string, a ...interface{}) *TruncationError {
	return &TruncationError{fmt.Sprintf(format, a...)}
}

// SystemByteOrder returns the byte order of the host. CORSIKA writes its
// output in the native order of the producing machine and performs no
// conversion, so neither do we.
func SystemByteOrder() binary.ByteOrder {
	b := [2]byte{}
	*(*uint16)(unsafe.Pointer(&b[0])) = uint16(0x0001)
	if b[0] == 0 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// readMagic opens the file at path just long enough to read its first n
// bytes. Files shorter than n bytes return what could be read; the only
// errors are I/O errors from the open or read themselves.
func readMagic(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil { return nil, err }
	defer f.Close()

	magic := make([]byte, n)
	read, err := io.ReadFull(f, magic)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return magic[:read], nil
	} else if err != nil {
		return nil, err
	}
	return magic, nil
}

// IsGzip reads the first two bytes of the file at path and reports
// whether they are the gzip marker bytes, 0x1f 0x8b.
func IsGzip(path string) (bool, error) {
	magic, err := readMagic(path, 2)
	if err != nil { return false, err }
	return len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b, nil
}

// IsZstd reads the first four bytes of the file at path and reports
// whether they are the zstd marker bytes, 0x28 0xb5 0x2f 0xfd.
func IsZstd(path string) (bool, error) {
	magic, err := readMagic(path, 4)
	if err != nil { return false, err }
	return bytes.Equal(magic, zstdMagic), nil
}

// decompressReader is an io.ReadCloser that closes both a decompressing
// wrapper and the file underneath it.
type decompressReader struct {
	r io.ReadCloser
	f *os.File
}

func (d *decompressReader) Read(b []byte) (int, error) { return d.r.Read(b) }

func (d *decompressReader) Close() error {
	err := d.r.Close()
	if errFile := d.f.Close(); err == nil { err = errFile }
	return err
}

// OpenCompressed opens the file at path and returns a reader over its
// decompressed contents. gzip and zstd files are recognized by their
// marker bytes; anything else is read as-is, so an unrecognized magic is
// never an error. The classification reads are done through a separate,
// short-lived open of the file.
func OpenCompressed(path string) (io.ReadCloser, error) {
	isGzip, err := IsGzip(path)
	if err != nil { return nil, err }
	isZstd, err := IsZstd(path)
	if err != nil { return nil, err }

	f, err := os.Open(path)
	if err != nil { return nil, err }

	switch {
	case isGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("The file %s starts with the gzip marker "+
				"bytes, but cannot be read as a gzip file: %s", path,
				err.Error())
		}
		return &decompressReader{gz, f}, nil
	case isZstd:
		return &decompressReader{zstd.NewReader(f), f}, nil
	default:
		return f, nil
	}
}

// ReadRecordSize reads the first four bytes of the (decompressed) file at
// path. If they are the "RUNH" marker the file has no record framing and
// framed is returned as false. Otherwise the file is a Fortran sequential
// file and the bytes are its first record's length, which is returned.
func ReadRecordSize(path string) (size int, framed bool, err error) {
	f, err := OpenCompressed(path)
	if err != nil { return 0, false, err }
	defer f.Close()

	head := make([]byte, recordMarkerSize)
	n, err := io.ReadFull(f, head)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return 0, false, truncationf("The file %s holds only %d bytes, "+
			"which is too short for even a record marker. The file seems "+
			"to be truncated.", path, n)
	} else if err != nil {
		return 0, false, err
	}

	if string(head) == rawMarker { return 0, false, nil }
	return int(SystemByteOrder().Uint32(head)), true, nil
}
