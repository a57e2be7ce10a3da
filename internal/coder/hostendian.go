// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import "encoding/binary"

// nativeLittleEndian reports whether this machine stores integers
// little-endian. Bulk copies between element slices and the stream are
// only legal when the stream byte order matches.
var nativeLittleEndian = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001
