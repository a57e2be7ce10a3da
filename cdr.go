// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package cdr implements encoding and decoding of the OMG Common Data
// Representation wire format, including the Extended CDR version 1
// (XCDR1) and version 2 (XCDR2) variants and the parameter-list and
// delimited encodings defined by DDS-XTypes. CDR is the serialization
// used by DDS/RTPS and ROS 2; this package is the codec core a message
// layer drives field by field.
//
// Every stream begins with a four byte encapsulation header
//
//	00 KK OO OO
//
// where KK is the EncapsulationKind selecting byte order, CDR version and
// header mode, and OO OO are option bytes (written as zero, ignored on
// read).
//
// A Writer owns a growable buffer and appends values; a Reader borrows a
// caller supplied buffer and consumes them. The caller drives field
// order on both sides; there is no reflection or schema layer. Values
// align to their width relative to the current alignment origin:
//
//	           Type | Width | XCDR1 | XCDR2
//	----------------+-------+-------+------
//	    int8, uint8 |     1 |     1 |     1
//	  int16, uint16 |     2 |     2 |     2
//	  int32, uint32 |     4 |     4 |     4
//	        float32 |     4 |     4 |     4
//	  int64, uint64 |     8 |     8 |     4
//	        float64 |     8 |     8 |     4
//
// Writing an XCDR1 parameter list member header resets the origin to the
// cursor, so each member body aligns as if it began a fresh stream; the
// Reader mirrors this.
//
// Typical framing of a plain struct:
//
//	w, _ := cdr.NewWriter(cdr.CDRLittleEndian)
//	w.WriteInt32(msg.ID)
//	w.WriteString(msg.Name)
//	w.WriteFloat64Array(msg.Samples, true)
//	payload := w.Data()
//
// and the symmetric decode:
//
//	r, err := cdr.NewReader(payload)
//	id, err := r.ReadInt32()
//	name, err := r.ReadString()
//	n, err := r.ReadSequenceLength()
//	samples, err := r.ReadFloat64Array(n)
//
// Errors are matched with errors.Is against the package sentinels
// (ErrBufferTooSmall, ErrInvalidEncapsulation, ...). Neither Writer nor
// Reader is safe for concurrent use; distinct instances share no state.
package cdr

import (
	"go.e43.eu/cdr/internal/coder"
	"go.e43.eu/cdr/internal/errors"
)

// Writer serializes a CDR stream into a growable buffer
type Writer = coder.Writer

// Reader decodes a CDR stream from a borrowed buffer
type Reader = coder.Reader

// EncapsulationKind identifies byte order, CDR version and header mode
type EncapsulationKind = coder.EncapsulationKind

// LengthCode selects how an XCDR2 EMHEADER carries its member size
type LengthCode = coder.LengthCode

// EMHeader is a member header decoded by Reader.ReadEMHeader
type EMHeader = coder.EMHeader

// The recognized encapsulation kinds, per the OMG RTPS numbering
const (
	CDRBigEndian              = coder.CDRBigEndian
	CDRLittleEndian           = coder.CDRLittleEndian
	PLCDRBigEndian            = coder.PLCDRBigEndian
	PLCDRLittleEndian         = coder.PLCDRLittleEndian
	CDR2BigEndian             = coder.CDR2BigEndian
	CDR2LittleEndian          = coder.CDR2LittleEndian
	PLCDR2BigEndian           = coder.PLCDR2BigEndian
	PLCDR2LittleEndian        = coder.PLCDR2LittleEndian
	DelimitedCDR2BigEndian    = coder.DelimitedCDR2BigEndian
	DelimitedCDR2LittleEndian = coder.DelimitedCDR2LittleEndian
)

// Reserved parameter ids in XCDR1 parameter lists
const (
	SentinelPID = coder.SentinelPID
	ExtendedPID = coder.ExtendedPID
)

var (
	// A read would run past the end of the input buffer
	ErrBufferTooSmall error = errors.ErrBufferTooSmall

	// Unknown encapsulation kind byte at position 1 of the stream
	ErrInvalidEncapsulation error = errors.ErrInvalidEncapsulation

	// String missing its null terminator, or not valid UTF-8
	ErrInvalidString error = errors.ErrInvalidString

	// XCDR2 member id exceeds the 28 bit id field
	ErrIDTooLarge error = errors.ErrIDTooLarge

	// Length code outside 0-7, or an object size inconsistent with the
	// chosen code
	ErrBadLengthCode error = errors.ErrBadLengthCode

	// Sentinel or delimiter did not match the decoded stream
	ErrIntegrityViolation error = errors.ErrIntegrityViolation
)

// NewWriter constructs a Writer with the default initial capacity.
// CDRLittleEndian is the conventional kind for ROS 2 payloads.
func NewWriter(kind EncapsulationKind) (*Writer, error) {
	return coder.NewWriter(kind)
}

// NewWriterSize constructs a Writer with an initial capacity of size bytes
func NewWriterSize(kind EncapsulationKind, size int) (*Writer, error) {
	return coder.NewWriterSize(kind, size)
}

// NewWriterBuffer constructs a Writer which takes ownership of buf
func NewWriterBuffer(kind EncapsulationKind, buf []byte) (*Writer, error) {
	return coder.NewWriterBuffer(kind, buf)
}

// NewReader constructs a Reader borrowing buf, which must hold at least
// the four byte encapsulation header
func NewReader(buf []byte) (*Reader, error) {
	return coder.NewReader(buf)
}

// LengthCodeForObjectSize picks the smallest XCDR2 length code able to
// carry size; codes 5-7 are never selected
func LengthCodeForObjectSize(size uint32) LengthCode {
	return coder.LengthCodeForObjectSize(size)
}
