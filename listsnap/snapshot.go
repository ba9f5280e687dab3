package listsnap

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/hupe1980/filtex/codec"
	"github.com/hupe1980/filtex/listmatcher"
	"github.com/hupe1980/filtex/value"
)

// Entry is one list's persisted state: its name, the kind identifier of its
// definition, the value type the list is declared to accept, and the live
// matcher. The kind and type travel out-of-band of the matcher payload
// because the payload alone does not identify its concrete kind.
type Entry struct {
	Name    string
	Kind    string
	Type    value.Kind
	Matcher listmatcher.Matcher
}

type options struct {
	codec       codec.Codec
	compression Compression
}

// Option configures snapshot writing.
type Option func(*options)

// WithCodec sets the codec used for matcher payloads. The codec name is
// recorded in the container header; restoring selects it by name.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression sets the compression applied to the entry section.
func WithCompression(typ Compression) Option {
	return func(o *options) {
		o.compression = typ
	}
}

// Write serializes entries into a self-describing, checksummed container.
//
// Layout (little-endian):
//
//	magic uint32 | version uint32 | compression uint8
//	codec name (uint16 length prefix)
//	entry block (length-prefixed, see compressBlock)
//	crc32 uint32 over everything before it
func Write(w io.Writer, entries []Entry, optFns ...Option) error {
	o := options{codec: codec.Default, compression: CompressionNone}
	for _, fn := range optFns {
		fn(&o)
	}

	var body bytes.Buffer
	if err := binary.Write(&body, binary.LittleEndian, uint32(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		payload, err := e.Matcher.MarshalPayload(o.codec)
		if err != nil {
			return fmt.Errorf("listsnap: serialize list %q: %w", e.Name, err)
		}
		if err := writeShortBytes(&body, []byte(e.Name)); err != nil {
			return err
		}
		if err := writeShortBytes(&body, []byte(e.Kind)); err != nil {
			return err
		}
		if err := body.WriteByte(byte(e.Type)); err != nil {
			return err
		}
		if len(payload) > maxPayloadLen {
			return fmt.Errorf("listsnap: list %q payload exceeds %d bytes", e.Name, maxPayloadLen)
		}
		if err := binary.Write(&body, binary.LittleEndian, uint32(len(payload))); err != nil {
			return err
		}
		if _, err := body.Write(payload); err != nil {
			return err
		}
	}

	block, err := compressBlock(body.Bytes(), o.compression)
	if err != nil {
		return err
	}

	cw := newChecksumWriter(w)
	if err := binary.Write(cw, binary.LittleEndian, uint32(MagicNumber)); err != nil {
		return err
	}
	if err := binary.Write(cw, binary.LittleEndian, uint32(Version)); err != nil {
		return err
	}
	if _, err := cw.Write([]byte{byte(o.compression)}); err != nil {
		return err
	}
	if err := writeShortBytes(cw, []byte(o.codec.Name())); err != nil {
		return err
	}
	if err := binary.Write(cw, binary.LittleEndian, uint32(len(block))); err != nil {
		return err
	}
	if _, err := cw.Write(block); err != nil {
		return err
	}

	// The trailer is the checksum of everything before it, so it bypasses
	// the checksumming writer.
	return binary.Write(w, binary.LittleEndian, cw.Sum())
}

// Read restores entries from a container produced by Write.
//
// defs maps kind identifiers to their definitions; it is passed explicitly
// because the container cannot be trusted to instantiate arbitrary types.
// Read fails loudly on integrity or compatibility problems: bad magic or
// version, checksum mismatch, unknown codec, unregistered kind, malformed
// payload, or a payload incompatible with the recorded value type.
func Read(r io.Reader, defs map[string]listmatcher.Definition) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < 4 {
		return nil, ErrTruncated
	}

	stored := binary.LittleEndian.Uint32(data[len(data)-4:])
	if crc32.Checksum(data[:len(data)-4], crc32Table) != stored {
		return nil, ErrChecksumMismatch
	}

	cur := &cursor{data: data[:len(data)-4]}

	magic, err := cur.uint32()
	if err != nil {
		return nil, err
	}
	if magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	version, err := cur.uint32()
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, ErrInvalidVersion
	}
	compByte, err := cur.byte()
	if err != nil {
		return nil, err
	}
	codecName, err := cur.shortBytes()
	if err != nil {
		return nil, err
	}
	c, ok := codec.ByName(string(codecName))
	if !ok {
		return nil, &ErrUnknownCodec{Name: string(codecName)}
	}
	blockLen, err := cur.uint32()
	if err != nil {
		return nil, err
	}
	block, err := cur.bytes(int(blockLen))
	if err != nil {
		return nil, err
	}

	body, err := decompressBlock(block, Compression(compByte))
	if err != nil {
		return nil, err
	}

	bcur := &cursor{data: body}
	count, err := bcur.uint32()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, count)
	for i := uint32(0); i < count; i++ {
		name, err := bcur.shortBytes()
		if err != nil {
			return nil, err
		}
		kind, err := bcur.shortBytes()
		if err != nil {
			return nil, err
		}
		tyByte, err := bcur.byte()
		if err != nil {
			return nil, err
		}
		payloadLen, err := bcur.uint32()
		if err != nil {
			return nil, err
		}
		if payloadLen > maxPayloadLen {
			return nil, ErrTruncated
		}
		payload, err := bcur.bytes(int(payloadLen))
		if err != nil {
			return nil, err
		}

		def, ok := defs[string(kind)]
		if !ok {
			return nil, &ErrUnknownKind{List: string(name), Kind: string(kind)}
		}
		m, err := def.DeserializeMatcher(value.Kind(tyByte), c, payload)
		if err != nil {
			return nil, fmt.Errorf("listsnap: restore list %q: %w", name, err)
		}
		entries = append(entries, Entry{
			Name:    string(name),
			Kind:    string(kind),
			Type:    value.Kind(tyByte),
			Matcher: m,
		})
	}
	return entries, nil
}

func writeShortBytes(w io.Writer, b []byte) error {
	if len(b) > math.MaxUint16 || len(b) > maxNameLen {
		return fmt.Errorf("listsnap: identifier of %d bytes too long", len(b))
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// cursor is a bounds-checked sequential reader over a byte slice.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if n < 0 || c.off+n > len(c.data) {
		return nil, ErrTruncated
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) byte() (byte, error) {
	b, err := c.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) uint32() (uint32, error) {
	b, err := c.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) shortBytes() ([]byte, error) {
	b, err := c.bytes(2)
	if err != nil {
		return nil, err
	}
	n := int(binary.LittleEndian.Uint16(b))
	if n > maxNameLen {
		return nil, ErrTruncated
	}
	return c.bytes(n)
}
