// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

//go:build !nounsafe

package coder

import "unsafe"

// bulkCopyOK gates the memcpy fast paths; they require reinterpreting
// element slices as raw bytes
const bulkCopyOK = true

// sliceBytes reinterprets the memory backing vs as raw bytes. Only legal
// as a bulk copy source or destination when the stream byte order matches
// the native order.
func sliceBytes[T int8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64](vs []T) []byte {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), len(vs)*int(unsafe.Sizeof(vs[0])))
}
