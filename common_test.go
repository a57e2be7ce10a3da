// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package cdr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testcase struct {
	// Name of this test case
	Name string

	// Encapsulation kind to construct the Writer with
	Kind EncapsulationKind

	// Write drives the Writer under test
	Write func(w *Writer) error

	// The expected encoding, including the 4 byte encapsulation header
	Bytes []byte

	// Error expected from Write. When set, Bytes and Read are ignored
	ErrorIs error

	// Read verifies the symmetric decode of the produced bytes; optional
	Read func(t *testing.T, r *Reader)
}

func runTestcases(t *testing.T, tcs []testcase) {
	t.Parallel()

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			w, err := NewWriter(tc.Kind)
			require.NoError(t, err, "NewWriter should succeed")

			err = tc.Write(w)
			if tc.ErrorIs != nil {
				require.Error(t, err, "Write should have returned an error")
				require.Truef(t, errors.Is(err, tc.ErrorIs),
					"Error expected to be %s, but was %s", tc.ErrorIs, err)
				return
			}
			require.NoError(t, err, "Write should succeed")
			assert.Equal(t, tc.Bytes, w.Data(), "Encoded bytes should match")
			assert.Equal(t, len(tc.Bytes), w.Size(), "Size should match")
			assert.Equal(t, tc.Kind, w.Kind(), "Kind should round-trip")

			if tc.Read != nil {
				r, err := NewReader(w.Data())
				require.NoError(t, err, "NewReader should succeed")
				assert.Equal(t, tc.Kind, r.Kind(), "Reader kind should match")
				tc.Read(t, r)
			}
		})
	}
}

// header builds the expected encapsulation header for kind
func header(kind EncapsulationKind) []byte {
	return []byte{0x00, byte(kind), 0x00, 0x00}
}

// cat concatenates byte slices into the expected stream
func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
