// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import "go.e43.eu/cdr/internal/errors"

// WriteDHeader writes the uint32 delimiter that precedes a delimited
// aggregate, carrying its serialized byte size so a reader may skip it
func (w *Writer) WriteDHeader(objectSize uint32) error {
	return w.WriteUint32(objectSize)
}

// WriteEMHeader writes a member header for id. On XCDR2 streams the
// smallest length code able to carry objectSize is selected; codes 5-7
// must be requested explicitly via WriteEMHeaderLengthCode.
func (w *Writer) WriteEMHeader(mustUnderstand bool, id, objectSize uint32) error {
	if w.xcdr2 {
		return w.emHeader2(mustUnderstand, id, objectSize, LengthCodeForObjectSize(objectSize))
	}
	return w.emHeader1(mustUnderstand, id, objectSize)
}

// WriteEMHeaderLengthCode is WriteEMHeader with an explicit length code.
// XCDR1 streams ignore the code; member sizes there are always carried in
// the PID header.
func (w *Writer) WriteEMHeaderLengthCode(mustUnderstand bool, id, objectSize uint32, lc LengthCode) error {
	if w.xcdr2 {
		if !lc.Valid() {
			return errors.LengthCodeError{Code: uint8(lc), ObjectSize: objectSize}
		}
		return w.emHeader2(mustUnderstand, id, objectSize, lc)
	}
	return w.emHeader1(mustUnderstand, id, objectSize)
}

// emHeader1 writes an XCDR1 parameter list member header: the 4 byte
// short PID form when both id and size fit, else the 12 byte extended
// form. Afterwards the alignment origin snaps to the cursor so the member
// body aligns as if it began a fresh stream (PUSH(ORIGIN=0) in
// DDS-XTypes).
func (w *Writer) emHeader1(mustUnderstand bool, id, objectSize uint32) error {
	var flags uint16
	if mustUnderstand {
		flags = mustUnderstandFlag1
	}

	w.Align(4)
	if id <= maxShortPID && objectSize <= maxShortSize {
		w.WriteUint16(flags | uint16(id))
		w.WriteUint16(uint16(objectSize))
	} else {
		w.WriteUint16(flags | ExtendedPID)
		w.WriteUint16(8)
		w.WriteUint32(id)
		w.WriteUint32(objectSize)
	}
	w.origin = w.offset
	return nil
}

// emHeader2 writes an XCDR2 EMHEADER. All validation happens before the
// first byte goes out, so a failed header leaves the stream untouched.
func (w *Writer) emHeader2(mustUnderstand bool, id, objectSize uint32, lc LengthCode) error {
	if id > maxMemberID {
		return errors.IDError{ID: id}
	}

	var next uint32
	switch lc {
	case 0, 1, 2, 3:
		implied, _ := lc.ObjectSize()
		if objectSize != implied {
			return errors.LengthCodeError{Code: uint8(lc), ObjectSize: objectSize}
		}
	case 4, 5:
		// Code 5 writes like code 4; the reused NEXTINT semantics are a
		// decode side interpretation
		next = objectSize
	case 6:
		if objectSize%4 != 0 {
			return errors.LengthCodeError{Code: uint8(lc), ObjectSize: objectSize}
		}
		next = objectSize >> 2
	case 7:
		if objectSize%8 != 0 {
			return errors.LengthCodeError{Code: uint8(lc), ObjectSize: objectSize}
		}
		next = objectSize >> 3
	}

	var header uint32
	if mustUnderstand {
		header = mustUnderstandFlag2
	}
	header |= uint32(lc)<<28 | id
	w.WriteUint32(header)
	if lc >= 4 {
		w.WriteUint32(next)
	}
	return nil
}

// WriteSentinelHeader terminates an XCDR1 parameter list. XCDR2 parameter
// lists are bounded by their DHEADER instead, so this is a no-op there.
func (w *Writer) WriteSentinelHeader() error {
	if w.xcdr2 {
		return nil
	}
	w.Align(4)
	w.WriteUint16(SentinelPID)
	w.WriteUint16(0)
	return nil
}
