package blockio

import (
	"bytes"
	"io"
	"io/ioutil"
	"path/filepath"
	"testing"
)

// ReadBlock with the file's uniform record size must visit the same
// blocks, in the same order, as the Iterator.
func TestReadBlockMatchesIterator(t *testing.T) {
	blocks := rawBlocks(6)
	data := fortranFile(blocks, []int{2, 2, 2})

	f := bytes.NewReader(data)
	for i := range blocks {
		block, err := ReadBlock(f, 2*BlockSizeBytes)
		if err != nil {
			t.Fatalf("ReadBlock failed on block %d: %s", i, err.Error())
		}
		if !bytes.Equal(block, blocks[i]) {
			t.Errorf("Block %d differs from the block that was written.", i)
		}
	}
}

func TestReadBlockRaw(t *testing.T) {
	blocks := rawBlocks(3)
	f := bytes.NewReader(rawFile(blocks))

	for i := range blocks {
		block, err := ReadBlock(f, 0)
		if err != nil {
			t.Fatalf("ReadBlock failed on block %d: %s", i, err.Error())
		}
		if !bytes.Equal(block, blocks[i]) {
			t.Errorf("Block %d differs from the block that was written.", i)
		}
	}

	if _, err := ReadBlock(f, 0); err != io.EOF {
		t.Errorf("Expected io.EOF after the last block, got %v.", err)
	}
}

func TestReadBlockTruncated(t *testing.T) {
	data := rawFile(rawBlocks(1))
	f := bytes.NewReader(data[:len(data)-10])

	_, err := ReadBlock(f, 0)
	if _, ok := err.(*TruncationError); !ok {
		t.Errorf("Expected a *TruncationError, got %v.", err)
	}
}

func TestRandomReader(t *testing.T) {
	blocks := rawBlocks(6)
	dir := t.TempDir()

	rawPath := filepath.Join(dir, "raw.dat")
	if err := ioutil.WriteFile(rawPath, rawFile(blocks), 0666); err != nil {
		t.Fatalf("Could not write test file: %s", err.Error())
	}

	fortranPath := filepath.Join(dir, "fortran.dat")
	data := fortranFile(blocks, []int{2, 2, 2})
	if err := ioutil.WriteFile(fortranPath, data, 0666); err != nil {
		t.Fatalf("Could not write test file: %s", err.Error())
	}

	for _, path := range []string{rawPath, fortranPath} {
		r, err := OpenRandom(path)
		if err != nil {
			t.Fatalf("OpenRandom(%s) failed: %s", path, err.Error())
		}

		if n := r.NBlocks(); n != len(blocks) {
			t.Errorf("Expected %s to hold %d blocks, got %d.",
				path, len(blocks), n)
		}

		// Out-of-order access is the whole point.
		for _, i := range []int{3, 0, 5, 2, 1, 4} {
			block, err := r.Block(i)
			if err != nil {
				t.Fatalf("Block(%d) failed for %s: %s", i, path,
					err.Error())
			}
			if !bytes.Equal(block, blocks[i]) {
				t.Errorf("Block %d of %s differs from the block that "+
					"was written.", i, path)
			}
		}

		if _, err := r.Block(len(blocks)); err == nil {
			t.Errorf("Expected an out-of-range error for %s.", path)
		}

		if err := r.Close(); err != nil {
			t.Errorf("Close failed for %s: %s", path, err.Error())
		}
	}
}

func TestRandomReaderRejectsCompressed(t *testing.T) {
	_, gz, zs := writeTestFiles(t, rawFile(rawBlocks(1)))

	for _, path := range []string{gz, zs} {
		if _, err := OpenRandom(path); err == nil {
			t.Errorf("Expected OpenRandom(%s) to fail, but it succeeded.",
				path)
		}
	}
}
