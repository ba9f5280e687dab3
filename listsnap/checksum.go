package listsnap

import (
	"hash"
	"hash/crc32"
	"io"
)

// Snapshot integrity uses CRC32 (IEEE polynomial): fast, hardware
// accelerated, and good at catching storage corruption. It is not
// cryptographically secure; it detects accidents, not tampering.

var crc32Table = crc32.MakeTable(crc32.IEEE)

// checksumWriter wraps an io.Writer and keeps a running CRC32 of everything
// written through it.
type checksumWriter struct {
	w    io.Writer
	hash hash.Hash32
}

func newChecksumWriter(w io.Writer) *checksumWriter {
	return &checksumWriter{
		w:    w,
		hash: crc32.New(crc32Table),
	}
}

func (cw *checksumWriter) Write(p []byte) (int, error) {
	if _, err := cw.hash.Write(p); err != nil {
		return 0, err
	}
	return cw.w.Write(p)
}

func (cw *checksumWriter) Sum() uint32 {
	return cw.hash.Sum32()
}
