// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"encoding/binary"
	"math"

	"go.e43.eu/cdr/internal/errors"
)

// Writer serializes a stream of primitive values into a growable
// contiguous buffer, starting with the four byte encapsulation header.
//
// Two cursors drive the encoding: offset, the next write position, and
// origin, the position alignment is computed against. Both start at 4,
// just past the encapsulation header. XCDR1 member headers snap origin
// forward so each member body aligns as if it began a fresh stream.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf    []byte // full capacity; [0, offset) holds written bytes
	offset int
	origin int
	order  binary.ByteOrder
	xcdr2  bool
	little bool
}

// NewWriter constructs a Writer with the default initial capacity
func NewWriter(kind EncapsulationKind) (*Writer, error) {
	return newWriter(kind, make([]byte, defaultCapacity))
}

// NewWriterSize constructs a Writer with an initial capacity of size
// bytes. Callers which know their message size can use this to avoid all
// growth reallocations.
func NewWriterSize(kind EncapsulationKind, size int) (*Writer, error) {
	if size < headerSize {
		size = headerSize
	}
	return newWriter(kind, make([]byte, size))
}

// NewWriterBuffer constructs a Writer over a caller supplied buffer. The
// Writer takes ownership; if the stream outgrows the buffer it is replaced
// and any externally retained reference is stale from that point on.
func NewWriterBuffer(kind EncapsulationKind, buf []byte) (*Writer, error) {
	return newWriter(kind, buf)
}

func newWriter(kind EncapsulationKind, buf []byte) (*Writer, error) {
	if !kind.Valid() {
		return nil, errors.EncapsulationError{Kind: byte(kind)}
	}

	w := &Writer{
		buf:    buf,
		xcdr2:  kind.XCDR2(),
		little: kind.LittleEndian(),
	}
	if w.little {
		w.order = binary.LittleEndian
	} else {
		w.order = binary.BigEndian
	}

	w.ensure(headerSize)
	w.buf[0] = 0
	w.buf[1] = byte(kind)
	w.buf[2] = 0
	w.buf[3] = 0
	w.offset = headerSize
	w.origin = headerSize
	return w, nil
}

// Data returns the encoded bytes. The view aliases the Writer's buffer
// and is invalidated by any subsequent write that grows it.
func (w *Writer) Data() []byte {
	return w.buf[:w.offset]
}

// Size returns the number of encoded bytes, encapsulation header included
func (w *Writer) Size() int {
	return w.offset
}

// Kind returns the encapsulation kind the stream was constructed with
func (w *Writer) Kind() EncapsulationKind {
	return EncapsulationKind(w.buf[1])
}

// ensure grows the buffer so at least n more bytes fit past the cursor.
// Growth doubles the capacity with a floor at the requested size, and
// preserves every previously written byte (and hence all header offsets).
func (w *Writer) ensure(n int) {
	need := w.offset + n
	if need <= len(w.buf) {
		return
	}
	c := 2 * len(w.buf)
	if c < need {
		c = need
	}
	grown := make([]byte, c)
	copy(grown, w.buf[:w.offset])
	w.buf = grown
}

// prepare aligns the cursor to a (a power of two, relative to origin),
// ensures n more bytes fit, zeroes the padding, and advances the cursor,
// returning the position to write the value at.
func (w *Writer) prepare(a, n int) int {
	pad := -(w.offset - w.origin) & (a - 1)
	w.ensure(pad + n)
	for i := 0; i < pad; i++ {
		w.buf[w.offset+i] = 0
	}
	o := w.offset + pad
	w.offset = o + n
	return o
}

// align64 returns the alignment of 64 bit primitives: 8 under XCDR1,
// 4 under XCDR2
func (w *Writer) align64() int {
	if w.xcdr2 {
		return 4
	}
	return 8
}

// Align pads the stream with zero bytes so the next value starts on an n
// byte boundary relative to the current origin
func (w *Writer) Align(n int) error {
	w.prepare(n, 0)
	return nil
}

func (w *Writer) WriteInt8(v int8) error {
	return w.WriteUint8(uint8(v))
}

func (w *Writer) WriteUint8(v uint8) error {
	w.buf[w.prepare(1, 1)] = v
	return nil
}

func (w *Writer) WriteInt16(v int16) error {
	return w.WriteUint16(uint16(v))
}

func (w *Writer) WriteUint16(v uint16) error {
	w.order.PutUint16(w.buf[w.prepare(2, 2):], v)
	return nil
}

func (w *Writer) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

func (w *Writer) WriteUint32(v uint32) error {
	w.order.PutUint32(w.buf[w.prepare(4, 4):], v)
	return nil
}

func (w *Writer) WriteInt64(v int64) error {
	return w.WriteUint64(uint64(v))
}

func (w *Writer) WriteUint64(v uint64) error {
	w.order.PutUint64(w.buf[w.prepare(w.align64(), 8):], v)
	return nil
}

func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// WriteUint16BE writes v big-endian regardless of the stream byte order.
// RTPS transport headers are network order even inside little-endian
// streams.
func (w *Writer) WriteUint16BE(v uint16) error {
	binary.BigEndian.PutUint16(w.buf[w.prepare(2, 2):], v)
	return nil
}

// WriteUint32BE writes v big-endian regardless of the stream byte order
func (w *Writer) WriteUint32BE(v uint32) error {
	binary.BigEndian.PutUint32(w.buf[w.prepare(4, 4):], v)
	return nil
}

// WriteUint64BE writes v big-endian regardless of the stream byte order
func (w *Writer) WriteUint64BE(v uint64) error {
	binary.BigEndian.PutUint64(w.buf[w.prepare(w.align64(), 8):], v)
	return nil
}

// WriteString writes an aligned uint32 byte length (counting the
// terminator), the UTF-8 bytes of s, and a single NUL
func (w *Writer) WriteString(s string) error {
	if err := w.WriteUint32(uint32(len(s)) + 1); err != nil {
		return err
	}
	return w.WriteFixedString(s)
}

// WriteFixedString writes the UTF-8 bytes of s and a terminating NUL with
// no length prefix
func (w *Writer) WriteFixedString(s string) error {
	o := w.prepare(1, len(s)+1)
	copy(w.buf[o:], s)
	w.buf[o+len(s)] = 0
	return nil
}

// WriteSequenceLength writes the element count prefix of a sequence
func (w *Writer) WriteSequenceLength(n int) error {
	return w.WriteUint32(uint32(n))
}
