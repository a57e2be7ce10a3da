// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

// Typed array writes. Every method optionally emits a sequence length
// prefix, then either takes the bulk copy path (stream byte order equals
// the native order and the element count clears bufferCopyThreshold) or
// falls back to elementwise scalar writes. Both paths produce identical
// bytes whenever the bulk precondition holds.

// bulkOK reports whether a bulk byte copy of n elements is both legal and
// worth the alignment bookkeeping
func (w *Writer) bulkOK(n int) bool {
	return bulkCopyOK && n >= bufferCopyThreshold && w.little == nativeLittleEndian
}

// WriteUint8Array writes vs as densely packed bytes
func (w *Writer) WriteUint8Array(vs []uint8, writeLength bool) error {
	if writeLength {
		if err := w.WriteSequenceLength(len(vs)); err != nil {
			return err
		}
	}
	copy(w.buf[w.prepare(1, len(vs)):], vs)
	return nil
}

// WriteInt8Array writes vs as densely packed bytes
func (w *Writer) WriteInt8Array(vs []int8, writeLength bool) error {
	if writeLength {
		if err := w.WriteSequenceLength(len(vs)); err != nil {
			return err
		}
	}
	o := w.prepare(1, len(vs))
	if bulkCopyOK {
		copy(w.buf[o:], sliceBytes(vs))
	} else {
		for i, v := range vs {
			w.buf[o+i] = uint8(v)
		}
	}
	return nil
}

func (w *Writer) WriteInt16Array(vs []int16, writeLength bool) error {
	if writeLength {
		if err := w.WriteSequenceLength(len(vs)); err != nil {
			return err
		}
	}
	if w.bulkOK(len(vs)) {
		copy(w.buf[w.prepare(2, 2*len(vs)):], sliceBytes(vs))
		return nil
	}
	for _, v := range vs {
		w.WriteInt16(v)
	}
	return nil
}

func (w *Writer) WriteUint16Array(vs []uint16, writeLength bool) error {
	if writeLength {
		if err := w.WriteSequenceLength(len(vs)); err != nil {
			return err
		}
	}
	if w.bulkOK(len(vs)) {
		copy(w.buf[w.prepare(2, 2*len(vs)):], sliceBytes(vs))
		return nil
	}
	for _, v := range vs {
		w.WriteUint16(v)
	}
	return nil
}

func (w *Writer) WriteInt32Array(vs []int32, writeLength bool) error {
	if writeLength {
		if err := w.WriteSequenceLength(len(vs)); err != nil {
			return err
		}
	}
	if w.bulkOK(len(vs)) {
		copy(w.buf[w.prepare(4, 4*len(vs)):], sliceBytes(vs))
		return nil
	}
	for _, v := range vs {
		w.WriteInt32(v)
	}
	return nil
}

func (w *Writer) WriteUint32Array(vs []uint32, writeLength bool) error {
	if writeLength {
		if err := w.WriteSequenceLength(len(vs)); err != nil {
			return err
		}
	}
	if w.bulkOK(len(vs)) {
		copy(w.buf[w.prepare(4, 4*len(vs)):], sliceBytes(vs))
		return nil
	}
	for _, v := range vs {
		w.WriteUint32(v)
	}
	return nil
}

func (w *Writer) WriteInt64Array(vs []int64, writeLength bool) error {
	if writeLength {
		if err := w.WriteSequenceLength(len(vs)); err != nil {
			return err
		}
	}
	if w.bulkOK(len(vs)) {
		copy(w.buf[w.prepare(w.align64(), 8*len(vs)):], sliceBytes(vs))
		return nil
	}
	for _, v := range vs {
		w.WriteInt64(v)
	}
	return nil
}

func (w *Writer) WriteUint64Array(vs []uint64, writeLength bool) error {
	if writeLength {
		if err := w.WriteSequenceLength(len(vs)); err != nil {
			return err
		}
	}
	if w.bulkOK(len(vs)) {
		copy(w.buf[w.prepare(w.align64(), 8*len(vs)):], sliceBytes(vs))
		return nil
	}
	for _, v := range vs {
		w.WriteUint64(v)
	}
	return nil
}

func (w *Writer) WriteFloat32Array(vs []float32, writeLength bool) error {
	if writeLength {
		if err := w.WriteSequenceLength(len(vs)); err != nil {
			return err
		}
	}
	if w.bulkOK(len(vs)) {
		copy(w.buf[w.prepare(4, 4*len(vs)):], sliceBytes(vs))
		return nil
	}
	for _, v := range vs {
		w.WriteFloat32(v)
	}
	return nil
}

func (w *Writer) WriteFloat64Array(vs []float64, writeLength bool) error {
	if writeLength {
		if err := w.WriteSequenceLength(len(vs)); err != nil {
			return err
		}
	}
	if w.bulkOK(len(vs)) {
		copy(w.buf[w.prepare(w.align64(), 8*len(vs)):], sliceBytes(vs))
		return nil
	}
	for _, v := range vs {
		w.WriteFloat64(v)
	}
	return nil
}
