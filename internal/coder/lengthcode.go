// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

// LengthCode selects how an XCDR2 EMHEADER conveys its member's byte size.
//
// Codes 0-3 imply a fixed size of 1, 2, 4 or 8 bytes. Codes 4-7 carry the
// size in a following uint32 (NEXTINT): verbatim for 4 and 5, in units of
// 4 bytes for 6 and 8 bytes for 7. For codes 5-7 the NEXTINT word doubles
// as the first four bytes of the member's serialized form.
type LengthCode uint8

// lengthCodeSizes maps codes 0-3 to the object sizes they imply
var lengthCodeSizes = [4]uint32{1, 2, 4, 8}

// Valid reports whether lc fits the 3 bit EMHEADER field
func (lc LengthCode) Valid() bool {
	return lc <= 7
}

// ObjectSize returns the object size implied by lc and whether lc is one
// of the fixed size codes 0-3
func (lc LengthCode) ObjectSize() (uint32, bool) {
	if lc < 4 {
		return lengthCodeSizes[lc], true
	}
	return 0, false
}

// LengthCodeForObjectSize picks the smallest length code able to carry
// size. Codes 5-7 are never selected; they are optional optimizations a
// caller opts into explicitly.
func LengthCodeForObjectSize(size uint32) LengthCode {
	switch size {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	default:
		return 4
	}
}
