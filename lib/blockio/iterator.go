package blockio

import (
	"bytes"
	"io"
)

// Iterator yields the blocks of one CORSIKA output stream in on-disk
// order. It is a forward-only, single-pass cursor: there is no seeking
// back into blocks that have already been yielded, and at most one
// record of the underlying stream is buffered at a time. An Iterator
// must not be shared across goroutines, but two Iterators over separate
// handles to the same file are independent.
type Iterator struct {
	r io.Reader
	c io.Closer

	// fortran is set once, from the first four bytes of the stream, and
	// never changes.
	fortran bool

	// buf holds the full blocks of the currently active record and off
	// the start of the next block within it. Both are unused in raw mode.
	buf []byte
	off int

	// final marks that the last record read back short, which ends the
	// stream once buf is drained.
	final bool

	err error
}

// Open opens the file at path, undoing whole-file compression if there
// is any, and returns an Iterator over its blocks. Closing the Iterator
// closes the file.
func Open(path string) (*Iterator, error) {
	f, err := OpenCompressed(path)
	if err != nil { return nil, err }

	it, err := NewIterator(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return it, nil
}

// NewIterator returns an Iterator over the decompressed CORSIKA stream
// rd, which must be positioned at its start. The first four bytes decide
// the framing: the marker "RUNH" means blocks are laid back to back,
// anything else means Fortran record framing, with those bytes being the
// first record's length. Either way iteration starts from the true
// beginning of the stream. Closing the Iterator closes rd.
func NewIterator(rd io.ReadCloser) (*Iterator, error) {
	head := make([]byte, recordMarkerSize)
	n, err := io.ReadFull(rd, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	head = head[:n]

	// The peeked bytes are replayed in front of rd, so both modes see
	// the stream from offset 0.
	return &Iterator{
		r:       io.MultiReader(bytes.NewReader(head), rd),
		c:       rd,
		fortran: string(head) != rawMarker,
	}, nil
}

// Next returns the next block of the stream. The returned slice is
// exactly BlockSizeBytes long and is owned by the caller. The end of the
// stream is reported as io.EOF; a *TruncationError means the file ends
// partway through a block or record marker. After any error the Iterator
// is spent and all later calls return the same error.
func (it *Iterator) Next() ([]byte, error) {
	if it.err != nil { return nil, it.err }

	block, err := it.next()
	if err != nil { it.err = err }
	return block, err
}

func (it *Iterator) next() ([]byte, error) {
	if !it.fortran { return it.nextRaw() }

	for it.off >= len(it.buf) {
		if it.final { return nil, io.EOF }
		if err := it.nextRecord(); err != nil { return nil, err }
	}

	block := it.buf[it.off : it.off+BlockSizeBytes : it.off+BlockSizeBytes]
	it.off += BlockSizeBytes
	return block, nil
}

// nextRaw reads one block from an unframed stream. Zero bytes at a block
// boundary is a clean end of stream, anything between that and a full
// block is corruption.
func (it *Iterator) nextRaw() ([]byte, error) {
	block := make([]byte, BlockSizeBytes)
	n, err := io.ReadFull(it.r, block)
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

// nextRecord reads the next Fortran record into it.buf, trimmed to a
// whole number of blocks, and discards the record's trailing marker.
func (it *Iterator) nextRecord() error {
	marker := make([]byte, recordMarkerSize)
	n, err := io.ReadFull(it.r, marker)
	switch err {
	case nil:
	case io.EOF:
		return io.EOF
	case io.ErrUnexpectedEOF:
		return truncationf("Read %d bytes of a %d-byte record marker. "+
			"The file seems to be truncated.", n, recordMarkerSize)
	default:
		return err
	}

	// Record markers are native-order signed integers.
	size := int(int32(SystemByteOrder().Uint32(marker)))
	if size < 0 {
		return truncationf("A record marker gives the negative record "+
			"length %d. The file is either corrupted or was written on a "+
			"machine with a different byte order.", size)
	}

	payload := make([]byte, size)
	n, err = io.ReadFull(it.r, payload)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}
	if n < size {
		// Some producers close a run with a degenerate final record. A
		// record that reads back short therefore ends the stream once
		// its full blocks have been yielded instead of failing.
		it.final = true
	}

	// Only whole blocks are yielded. A payload length that isn't an
	// exact multiple of the block size leaves trailing bytes, which are
	// unused padding, not stream content.
	it.buf = payload[:(n/BlockSizeBytes)*BlockSizeBytes]
	it.off = 0

	if !it.final {
		// The trailing marker repeats the length and carries no data.
		if _, err := io.CopyN(io.Discard, it.r, recordMarkerSize); err != nil && err != io.EOF {
			return err
		}
	}
	return nil
}

// Close releases the underlying stream. It is safe to call after an
// error or after abandoning the Iterator partway through a file, and
// must be called in all of those cases.
func (it *Iterator) Close() error {
	if it.err == nil { it.err = io.EOF }
	return it.c.Close()
}
