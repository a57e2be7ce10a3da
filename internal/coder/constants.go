// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

// Reserved parameter ids in XCDR1 parameter lists
const (
	// SentinelPID terminates a parameter list
	SentinelPID uint16 = 0x3F02
	// ExtendedPID introduces the 12 byte long form member header
	ExtendedPID uint16 = 0x3F01
)

const (
	// Must-understand flag: bit 14 of the XCDR1 short PID
	mustUnderstandFlag1 uint16 = 0x4000
	// Must-understand flag: bit 31 of the XCDR2 EMHEADER
	mustUnderstandFlag2 uint32 = 0x80000000

	// The PID field occupies the low 14 bits of the XCDR1 short header
	pidMask uint16 = 0x3FFF

	// Largest id and object size expressible in an XCDR1 short PID.
	// Ids above maxShortPID would collide with the reserved range.
	maxShortPID  uint32 = 0x3F00
	maxShortSize uint32 = 0xFFFF

	// Largest member id expressible in the 28 bit XCDR2 id field
	maxMemberID uint32 = 0x0FFFFFFF
)

const (
	// Size of the encapsulation header at the start of every stream
	headerSize = 4

	// Initial writer capacity when the caller supplies neither a buffer
	// nor a size
	defaultCapacity = 16

	// Minimum element count before an array operation takes the bulk
	// copy path; below it the per-element path is cheaper than the
	// alignment bookkeeping. Any value >= 1 is correct.
	bufferCopyThreshold = 10
)
