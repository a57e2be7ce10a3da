// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package cdr

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []EncapsulationKind{
	CDRBigEndian, CDRLittleEndian,
	PLCDRBigEndian, PLCDRLittleEndian,
	CDR2BigEndian, CDR2LittleEndian,
	PLCDR2BigEndian, PLCDR2LittleEndian,
	DelimitedCDR2BigEndian, DelimitedCDR2LittleEndian,
}

func TestRoundTripScalars(t *testing.T) {
	t.Parallel()

	for _, kind := range allKinds {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			w, err := NewWriter(kind)
			require.NoError(t, err)

			w.WriteInt8(-8)
			w.WriteUint8(200)
			w.WriteInt16(-16000)
			w.WriteUint16(60000)
			w.WriteInt32(-2000000000)
			w.WriteUint32(4000000000)
			w.WriteInt64(math.MinInt64)
			w.WriteUint64(math.MaxUint64)
			w.WriteFloat32(3.5)
			w.WriteFloat64(-1e300)
			w.WriteString("round trip")

			r, err := NewReader(w.Data())
			require.NoError(t, err)

			i8, err := r.ReadInt8()
			require.NoError(t, err)
			assert.Equal(t, int8(-8), i8)
			u8, err := r.ReadUint8()
			require.NoError(t, err)
			assert.Equal(t, uint8(200), u8)
			i16, err := r.ReadInt16()
			require.NoError(t, err)
			assert.Equal(t, int16(-16000), i16)
			u16, err := r.ReadUint16()
			require.NoError(t, err)
			assert.Equal(t, uint16(60000), u16)
			i32, err := r.ReadInt32()
			require.NoError(t, err)
			assert.Equal(t, int32(-2000000000), i32)
			u32, err := r.ReadUint32()
			require.NoError(t, err)
			assert.Equal(t, uint32(4000000000), u32)
			i64, err := r.ReadInt64()
			require.NoError(t, err)
			assert.Equal(t, int64(math.MinInt64), i64)
			u64, err := r.ReadUint64()
			require.NoError(t, err)
			assert.Equal(t, uint64(math.MaxUint64), u64)
			f32, err := r.ReadFloat32()
			require.NoError(t, err)
			assert.Equal(t, float32(3.5), f32)
			f64, err := r.ReadFloat64()
			require.NoError(t, err)
			assert.Equal(t, -1e300, f64)
			s, err := r.ReadString()
			require.NoError(t, err)
			assert.Equal(t, "round trip", s)

			assert.Equal(t, r.Len(), r.Offset(), "decode should drain the stream")
		})
	}
}

// Array sizes straddling the bulk copy threshold, plus empty
var arraySizes = []int{0, 3, 16, 1000}

func TestRoundTripArrays(t *testing.T) {
	t.Parallel()

	for _, kind := range []EncapsulationKind{CDRBigEndian, CDRLittleEndian, CDR2LittleEndian} {
		for _, n := range arraySizes {
			kind, n := kind, n
			t.Run(fmt.Sprintf("%s/%d", kind, n), func(t *testing.T) {
				t.Parallel()

				i8s := make([]int8, n)
				u8s := make([]uint8, n)
				i16s := make([]int16, n)
				u16s := make([]uint16, n)
				i32s := make([]int32, n)
				u32s := make([]uint32, n)
				i64s := make([]int64, n)
				u64s := make([]uint64, n)
				f32s := make([]float32, n)
				f64s := make([]float64, n)
				for i := 0; i < n; i++ {
					i8s[i] = int8(i)
					u8s[i] = uint8(i)
					i16s[i] = int16(i - n/2)
					u16s[i] = uint16(i * 3)
					i32s[i] = int32(i * -7)
					u32s[i] = uint32(i * 11)
					i64s[i] = int64(i) * -1e12
					u64s[i] = uint64(i) * 1e15
					f32s[i] = float32(i) * 0.5
					f64s[i] = float64(i) * 0.25
				}

				w, err := NewWriter(kind)
				require.NoError(t, err)
				require.NoError(t, w.WriteInt8Array(i8s, true))
				require.NoError(t, w.WriteUint8Array(u8s, true))
				require.NoError(t, w.WriteInt16Array(i16s, true))
				require.NoError(t, w.WriteUint16Array(u16s, true))
				require.NoError(t, w.WriteInt32Array(i32s, true))
				require.NoError(t, w.WriteUint32Array(u32s, true))
				require.NoError(t, w.WriteInt64Array(i64s, true))
				require.NoError(t, w.WriteUint64Array(u64s, true))
				require.NoError(t, w.WriteFloat32Array(f32s, true))
				require.NoError(t, w.WriteFloat64Array(f64s, true))

				r, err := NewReader(w.Data())
				require.NoError(t, err)

				readLen := func() int {
					m, err := r.ReadSequenceLength()
					require.NoError(t, err)
					require.Equal(t, n, m)
					return m
				}

				gi8, err := r.ReadInt8Array(readLen())
				require.NoError(t, err)
				assert.Equal(t, i8s, gi8)
				gu8, err := r.ReadUint8Array(readLen())
				require.NoError(t, err)
				assert.Equal(t, u8s, gu8)
				gi16, err := r.ReadInt16Array(readLen())
				require.NoError(t, err)
				assert.Equal(t, i16s, gi16)
				gu16, err := r.ReadUint16Array(readLen())
				require.NoError(t, err)
				assert.Equal(t, u16s, gu16)
				gi32, err := r.ReadInt32Array(readLen())
				require.NoError(t, err)
				assert.Equal(t, i32s, gi32)
				gu32, err := r.ReadUint32Array(readLen())
				require.NoError(t, err)
				assert.Equal(t, u32s, gu32)
				gi64, err := r.ReadInt64Array(readLen())
				require.NoError(t, err)
				assert.Equal(t, i64s, gi64)
				gu64, err := r.ReadUint64Array(readLen())
				require.NoError(t, err)
				assert.Equal(t, u64s, gu64)
				gf32, err := r.ReadFloat32Array(readLen())
				require.NoError(t, err)
				assert.Equal(t, f32s, gf32)
				gf64, err := r.ReadFloat64Array(readLen())
				require.NoError(t, err)
				assert.Equal(t, f64s, gf64)

				assert.Equal(t, r.Len(), r.Offset(), "decode should drain the stream")
			})
		}
	}
}

func TestRoundTripStrings(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"a",
		"hello, world",
		"héllo wörld",
		"日本語のテキスト",
		"mixed ascii + ünïcödé + 中文",
		strings.Repeat("x", 4096),
		strings.Repeat("✓", 1365), // 4095 bytes of 3 byte runes
	}

	for _, kind := range []EncapsulationKind{CDRBigEndian, CDRLittleEndian, CDR2LittleEndian} {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			w, err := NewWriter(kind)
			require.NoError(t, err)
			for _, s := range cases {
				require.NoError(t, w.WriteString(s))
			}

			r, err := NewReader(w.Data())
			require.NoError(t, err)
			for _, s := range cases {
				got, err := r.ReadString()
				require.NoError(t, err)
				require.Equal(t, s, got)
			}
		})
	}
}

// The bulk copy path and the elementwise path must produce identical
// bytes whenever the bulk precondition holds; writing the same data as
// individual scalars is the reference encoding.
func TestArrayBulkPathEquivalence(t *testing.T) {
	t.Parallel()

	const n = 16 // above bufferCopyThreshold

	for _, kind := range []EncapsulationKind{CDRBigEndian, CDRLittleEndian} {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			u16s := make([]uint16, n)
			u32s := make([]uint32, n)
			u64s := make([]uint64, n)
			f64s := make([]float64, n)
			for i := 0; i < n; i++ {
				u16s[i] = uint16(0x0102 * i)
				u32s[i] = uint32(0x01020304 * i)
				u64s[i] = uint64(i) * 0x0102030405060708
				f64s[i] = float64(i) * 1.125
			}

			array, err := NewWriter(kind)
			require.NoError(t, err)
			array.WriteUint16Array(u16s, false)
			array.WriteUint32Array(u32s, false)
			array.WriteUint64Array(u64s, false)
			array.WriteFloat64Array(f64s, false)

			scalar, err := NewWriter(kind)
			require.NoError(t, err)
			for _, v := range u16s {
				scalar.WriteUint16(v)
			}
			for _, v := range u32s {
				scalar.WriteUint32(v)
			}
			for _, v := range u64s {
				scalar.WriteUint64(v)
			}
			for _, v := range f64s {
				scalar.WriteFloat64(v)
			}

			assert.Equal(t, scalar.Data(), array.Data(),
				"array writes must match elementwise scalar writes byte for byte")
		})
	}
}

// After an encoded scalar of width W, (offset - origin) mod W must be 0,
// with W = 8 for 64 bit types under XCDR1 and 4 under XCDR2. Seeding the
// stream with a single byte forces maximal padding.
func TestAlignmentProperty(t *testing.T) {
	t.Parallel()

	type op struct {
		name  string
		width int
		write func(w *Writer) error
	}
	ops := []op{
		{"uint8", 1, func(w *Writer) error { return w.WriteUint8(1) }},
		{"uint16", 2, func(w *Writer) error { return w.WriteUint16(1) }},
		{"uint32", 4, func(w *Writer) error { return w.WriteUint32(1) }},
		{"float32", 4, func(w *Writer) error { return w.WriteFloat32(1) }},
		{"uint64", 8, func(w *Writer) error { return w.WriteUint64(1) }},
		{"float64", 8, func(w *Writer) error { return w.WriteFloat64(1) }},
	}

	for _, kind := range allKinds {
		for _, o := range ops {
			kind, o := kind, o
			t.Run(fmt.Sprintf("%s/%s", kind, o.name), func(t *testing.T) {
				t.Parallel()

				align := o.width
				if kind.XCDR2() && align == 8 {
					align = 4
				}

				w, err := NewWriter(kind)
				require.NoError(t, err)
				require.NoError(t, w.WriteUint8(0xFF))
				require.NoError(t, o.write(w))

				// origin is 4 here; the value ends aligned to its alignment
				end := w.Size() - 4
				assert.Zero(t, end%align, "value should end aligned")

				// Padding between the seed byte and the value is zero
				pad := w.Data()[5 : w.Size()-o.width]
				for i, b := range pad {
					assert.Zerof(t, b, "padding byte %d should be zero", i)
				}
				assert.Equal(t, 4+1+(align-1)+o.width, w.Size(),
					"a single seed byte forces align-1 padding bytes")
			})
		}
	}
}
