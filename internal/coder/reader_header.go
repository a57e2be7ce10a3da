// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import "go.e43.eu/cdr/internal/errors"

// EMHeader is a decoded member header
type EMHeader struct {
	MustUnderstand bool
	ID             uint32
	ObjectSize     uint32

	// LengthCode is the code carried in an XCDR2 EMHEADER; zero on XCDR1
	// streams
	LengthCode LengthCode

	// ReadRaw is set for XCDR2 length codes 5-7: the NEXTINT word doubles
	// as the first four bytes of the member, and the cursor has been
	// stepped back so the member parse re-consumes it
	ReadRaw bool
}

// ReadDHeader reads the uint32 delimiter preceding a delimited aggregate
func (r *Reader) ReadDHeader() (uint32, error) {
	return r.ReadUint32()
}

// ReadEMHeader reads a member header in the form selected by the stream's
// encapsulation version
func (r *Reader) ReadEMHeader() (EMHeader, error) {
	if r.xcdr2 {
		return r.emHeader2()
	}
	return r.emHeader1()
}

// emHeader1 reads an XCDR1 parameter list member header (short or
// extended PID form), then snaps the alignment origin to the cursor,
// mirroring the writer
func (r *Reader) emHeader1() (EMHeader, error) {
	save := r.offset
	h, err := r.emHeader1Fields()
	if err != nil {
		r.offset = save
		return EMHeader{}, err
	}
	r.origin = r.offset
	return h, nil
}

func (r *Reader) emHeader1Fields() (EMHeader, error) {
	if err := r.Align(4); err != nil {
		return EMHeader{}, err
	}
	pid, err := r.ReadUint16()
	if err != nil {
		return EMHeader{}, err
	}
	length, err := r.ReadUint16()
	if err != nil {
		return EMHeader{}, err
	}

	h := EMHeader{MustUnderstand: pid&mustUnderstandFlag1 != 0}
	if pid&pidMask == ExtendedPID {
		// The short length field (nominally 8) is consumed but not
		// enforced; the member size comes from the second word
		h.ID, err = r.ReadUint32()
		if err != nil {
			return EMHeader{}, err
		}
		h.ObjectSize, err = r.ReadUint32()
		if err != nil {
			return EMHeader{}, err
		}
	} else {
		h.ID = uint32(pid & pidMask)
		h.ObjectSize = uint32(length)
	}
	return h, nil
}

// emHeader2 reads an XCDR2 EMHEADER, applying the length code rules of
// the catalog. For codes 5-7 the cursor is rewound over NEXTINT so the
// member's first read returns it again.
func (r *Reader) emHeader2() (EMHeader, error) {
	save := r.offset
	word, err := r.ReadUint32()
	if err != nil {
		return EMHeader{}, err
	}

	lc := LengthCode(word >> 28 & 0x7)
	h := EMHeader{
		MustUnderstand: word&mustUnderstandFlag2 != 0,
		ID:             word & maxMemberID,
		LengthCode:     lc,
	}
	if size, fixed := lc.ObjectSize(); fixed {
		h.ObjectSize = size
		return h, nil
	}

	next, err := r.ReadUint32()
	if err != nil {
		r.offset = save
		return EMHeader{}, err
	}
	switch lc {
	case 4:
		h.ObjectSize = next
	case 5:
		h.ObjectSize = next
	case 6:
		h.ObjectSize = next << 2
	case 7:
		h.ObjectSize = next << 3
	}
	if lc >= 5 {
		h.ReadRaw = true
		r.offset -= 4
	}
	return h, nil
}

// ValidateDelimited checks that decoding consumed exactly the size a
// DHEADER declared, where start is the cursor position just after the
// DHEADER was read
func (r *Reader) ValidateDelimited(size uint32, start int) error {
	if consumed := r.offset - start; consumed != int(size) {
		return errors.DelimiterError{Expected: size, Actual: uint32(consumed)}
	}
	return nil
}

// ReadSentinelHeader consumes and validates the SENTINEL_PID/0 pair
// terminating an XCDR1 parameter list. XCDR2 parameter lists are bounded
// by their DHEADER, so nothing is consumed there.
func (r *Reader) ReadSentinelHeader() error {
	if r.xcdr2 {
		return nil
	}
	save := r.offset
	if err := r.readSentinel(); err != nil {
		r.offset = save
		return err
	}
	return nil
}

func (r *Reader) readSentinel() error {
	if err := r.Align(4); err != nil {
		return err
	}
	pid, err := r.ReadUint16()
	if err != nil {
		return err
	}
	length, err := r.ReadUint16()
	if err != nil {
		return err
	}
	if pid&pidMask != SentinelPID || length != 0 {
		return errors.SentinelError{PID: pid, Length: length}
	}
	return nil
}
