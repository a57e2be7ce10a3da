// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

// EncapsulationKind identifies the format variant and byte order of a CDR
// stream. It is carried in the second byte of the four byte encapsulation
// header, using the OMG RTPS numbering.
type EncapsulationKind uint8

const (
	CDRBigEndian              EncapsulationKind = 0x00
	CDRLittleEndian           EncapsulationKind = 0x01
	PLCDRBigEndian            EncapsulationKind = 0x02
	PLCDRLittleEndian         EncapsulationKind = 0x03
	CDR2BigEndian             EncapsulationKind = 0x10
	CDR2LittleEndian          EncapsulationKind = 0x11
	PLCDR2BigEndian           EncapsulationKind = 0x12
	PLCDR2LittleEndian        EncapsulationKind = 0x13
	DelimitedCDR2BigEndian    EncapsulationKind = 0x14
	DelimitedCDR2LittleEndian EncapsulationKind = 0x15
)

// Valid reports whether k is one of the recognized encapsulation kinds
func (k EncapsulationKind) Valid() bool {
	return k <= PLCDRLittleEndian ||
		(k >= CDR2BigEndian && k <= DelimitedCDR2LittleEndian)
}

// LittleEndian reports whether streams of this kind carry their payload
// little-endian. The low bit selects byte order in both version groups.
func (k EncapsulationKind) LittleEndian() bool {
	return k&0x01 != 0
}

// XCDR2 reports whether k selects the Extended CDR version 2 rules
// (4 byte alignment for 64 bit types, EMHEADER member headers)
func (k EncapsulationKind) XCDR2() bool {
	return k >= CDR2BigEndian
}

// Delimited reports whether every top level aggregate of the stream is
// preceded by a DHEADER
func (k EncapsulationKind) Delimited() bool {
	return k == DelimitedCDR2BigEndian || k == DelimitedCDR2LittleEndian
}

// ParameterList reports whether the stream's top level aggregate is
// encoded as a parameter list of member headers
func (k EncapsulationKind) ParameterList() bool {
	switch k {
	case PLCDRBigEndian, PLCDRLittleEndian, PLCDR2BigEndian, PLCDR2LittleEndian:
		return true
	default:
		return false
	}
}

func (k EncapsulationKind) String() string {
	switch k {
	case CDRBigEndian:
		return "CDR_BE"
	case CDRLittleEndian:
		return "CDR_LE"
	case PLCDRBigEndian:
		return "PL_CDR_BE"
	case PLCDRLittleEndian:
		return "PL_CDR_LE"
	case CDR2BigEndian:
		return "CDR2_BE"
	case CDR2LittleEndian:
		return "CDR2_LE"
	case PLCDR2BigEndian:
		return "PL_CDR2_BE"
	case PLCDR2LittleEndian:
		return "PL_CDR2_LE"
	case DelimitedCDR2BigEndian:
		return "D_CDR2_BE"
	case DelimitedCDR2LittleEndian:
		return "D_CDR2_LE"
	default:
		return "INVALID"
	}
}
