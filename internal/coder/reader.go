// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"go.e43.eu/cdr/internal/errors"
)

// Reader decodes a stream of primitive values from a caller supplied
// buffer, the symmetric inverse of Writer. The Reader borrows the buffer
// and never mutates or resizes it; neither the Reader nor any view it
// returns may outlive the buffer.
//
// Every operation bounds checks before it moves the cursor, so a failed
// read leaves the cursor where it was.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	buf    []byte
	offset int
	origin int
	order  binary.ByteOrder
	kind   EncapsulationKind
	xcdr2  bool
	little bool
}

// NewReader parses the encapsulation header at the start of buf and
// positions the cursor over the first body byte. The two option bytes are
// ignored.
func NewReader(buf []byte) (*Reader, error) {
	if len(buf) < headerSize {
		return nil, errors.ShortBufferError{Offset: 0, Need: headerSize, Have: len(buf)}
	}
	kind := EncapsulationKind(buf[1])
	if !kind.Valid() {
		return nil, errors.EncapsulationError{Kind: buf[1]}
	}

	r := &Reader{
		buf:    buf,
		offset: headerSize,
		origin: headerSize,
		kind:   kind,
		xcdr2:  kind.XCDR2(),
		little: kind.LittleEndian(),
	}
	if r.little {
		r.order = binary.LittleEndian
	} else {
		r.order = binary.BigEndian
	}
	return r, nil
}

// Kind returns the encapsulation kind read from the stream header
func (r *Reader) Kind() EncapsulationKind {
	return r.kind
}

// Offset returns the cursor position in bytes from the buffer start
func (r *Reader) Offset() int {
	return r.offset
}

// Len returns the total length of the borrowed buffer
func (r *Reader) Len() int {
	return len(r.buf)
}

// Seek moves the cursor n bytes relative to its current position
func (r *Reader) Seek(n int) error {
	return r.SeekTo(r.offset + n)
}

// SeekTo moves the cursor to an absolute offset from the buffer start
func (r *Reader) SeekTo(offset int) error {
	if offset < 0 || offset > len(r.buf) {
		return errors.ShortBufferError{Offset: offset, Need: 0, Have: len(r.buf)}
	}
	r.offset = offset
	return nil
}

// prepare aligns the cursor to a (a power of two, relative to origin),
// bounds checks n bytes, and advances the cursor past them, returning the
// read position. The cursor does not move on failure.
func (r *Reader) prepare(a, n int) (int, error) {
	o := r.offset + (-(r.offset - r.origin) & (a - 1))
	if n < 0 || o+n > len(r.buf) {
		return 0, errors.ShortBufferError{
			Offset: r.offset,
			Need:   o + n - r.offset,
			Have:   len(r.buf) - r.offset,
		}
	}
	r.offset = o + n
	return o, nil
}

// align64 returns the alignment of 64 bit primitives: 8 under XCDR1,
// 4 under XCDR2
func (r *Reader) align64() int {
	if r.xcdr2 {
		return 4
	}
	return 8
}

// Align skips padding so the next value is read from an n byte boundary
// relative to the current origin
func (r *Reader) Align(n int) error {
	_, err := r.prepare(n, 0)
	return err
}

func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

func (r *Reader) ReadUint8() (uint8, error) {
	o, err := r.prepare(1, 1)
	if err != nil {
		return 0, err
	}
	return r.buf[o], nil
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *Reader) ReadUint16() (uint16, error) {
	o, err := r.prepare(2, 2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(r.buf[o:]), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *Reader) ReadUint32() (uint32, error) {
	o, err := r.prepare(4, 4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(r.buf[o:]), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

func (r *Reader) ReadUint64() (uint64, error) {
	o, err := r.prepare(r.align64(), 8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(r.buf[o:]), nil
}

func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadUint16BE reads big-endian regardless of the stream byte order
func (r *Reader) ReadUint16BE() (uint16, error) {
	o, err := r.prepare(2, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(r.buf[o:]), nil
}

// ReadUint32BE reads big-endian regardless of the stream byte order
func (r *Reader) ReadUint32BE() (uint32, error) {
	o, err := r.prepare(4, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(r.buf[o:]), nil
}

// ReadUint64BE reads big-endian regardless of the stream byte order
func (r *Reader) ReadUint64BE() (uint64, error) {
	o, err := r.prepare(r.align64(), 8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(r.buf[o:]), nil
}

// ReadString reads a length prefixed string, validating the NUL
// terminator and that the contents are well formed UTF-8
func (r *Reader) ReadString() (string, error) {
	save := r.offset
	l, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	if l == 0 {
		// Tolerated: some producers emit 0 rather than 1 for ""
		return "", nil
	}
	s, err := r.ReadFixedString(int(l))
	if err != nil {
		r.offset = save
	}
	return s, err
}

// ReadFixedString reads n bytes holding a NUL terminated UTF-8 string
// (terminator counted in n) with no length prefix
func (r *Reader) ReadFixedString(n int) (string, error) {
	save := r.offset
	o, err := r.prepare(1, n)
	if err != nil {
		return "", err
	}
	if n == 0 || r.buf[o+n-1] != 0 {
		r.offset = save
		return "", errors.ErrInvalidString
	}
	s := r.buf[o : o+n-1]
	if !utf8.Valid(s) {
		r.offset = save
		return "", errors.ErrInvalidString
	}
	return string(s), nil
}

// ReadSequenceLength reads the element count prefix of a sequence
func (r *Reader) ReadSequenceLength() (int, error) {
	n, err := r.ReadUint32()
	return int(n), err
}
