// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

// Typed array reads, mirrors of the writer's fast path rules. Callers
// that encoded a sequence length prefix read it back with
// ReadSequenceLength and pass the count here. On a mid-array failure the
// cursor is restored to where the call began.

// bulkOK reports whether a bulk byte copy of n elements is legal and
// worth taking
func (r *Reader) bulkOK(n int) bool {
	return bulkCopyOK && n >= bufferCopyThreshold && r.little == nativeLittleEndian
}

// ReadUint8Array returns n bytes as a view aliasing the input buffer.
// Callers must copy if the bytes need to outlive the buffer.
func (r *Reader) ReadUint8Array(n int) ([]uint8, error) {
	o, err := r.prepare(1, n)
	if err != nil {
		return nil, err
	}
	return r.buf[o : o+n : o+n], nil
}

func (r *Reader) ReadInt8Array(n int) ([]int8, error) {
	o, err := r.prepare(1, n)
	if err != nil {
		return nil, err
	}
	out := make([]int8, n)
	if bulkCopyOK {
		copy(sliceBytes(out), r.buf[o:])
	} else {
		for i := range out {
			out[i] = int8(r.buf[o+i])
		}
	}
	return out, nil
}

func (r *Reader) ReadInt16Array(n int) ([]int16, error) {
	if r.bulkOK(n) {
		o, err := r.prepare(2, 2*n)
		if err != nil {
			return nil, err
		}
		out := make([]int16, n)
		copy(sliceBytes(out), r.buf[o:])
		return out, nil
	}
	save := r.offset
	out := make([]int16, n)
	for i := range out {
		v, err := r.ReadInt16()
		if err != nil {
			r.offset = save
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *Reader) ReadUint16Array(n int) ([]uint16, error) {
	if r.bulkOK(n) {
		o, err := r.prepare(2, 2*n)
		if err != nil {
			return nil, err
		}
		out := make([]uint16, n)
		copy(sliceBytes(out), r.buf[o:])
		return out, nil
	}
	save := r.offset
	out := make([]uint16, n)
	for i := range out {
		v, err := r.ReadUint16()
		if err != nil {
			r.offset = save
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *Reader) ReadInt32Array(n int) ([]int32, error) {
	if r.bulkOK(n) {
		o, err := r.prepare(4, 4*n)
		if err != nil {
			return nil, err
		}
		out := make([]int32, n)
		copy(sliceBytes(out), r.buf[o:])
		return out, nil
	}
	save := r.offset
	out := make([]int32, n)
	for i := range out {
		v, err := r.ReadInt32()
		if err != nil {
			r.offset = save
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *Reader) ReadUint32Array(n int) ([]uint32, error) {
	if r.bulkOK(n) {
		o, err := r.prepare(4, 4*n)
		if err != nil {
			return nil, err
		}
		out := make([]uint32, n)
		copy(sliceBytes(out), r.buf[o:])
		return out, nil
	}
	save := r.offset
	out := make([]uint32, n)
	for i := range out {
		v, err := r.ReadUint32()
		if err != nil {
			r.offset = save
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *Reader) ReadInt64Array(n int) ([]int64, error) {
	if r.bulkOK(n) {
		o, err := r.prepare(r.align64(), 8*n)
		if err != nil {
			return nil, err
		}
		out := make([]int64, n)
		copy(sliceBytes(out), r.buf[o:])
		return out, nil
	}
	save := r.offset
	out := make([]int64, n)
	for i := range out {
		v, err := r.ReadInt64()
		if err != nil {
			r.offset = save
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *Reader) ReadUint64Array(n int) ([]uint64, error) {
	if r.bulkOK(n) {
		o, err := r.prepare(r.align64(), 8*n)
		if err != nil {
			return nil, err
		}
		out := make([]uint64, n)
		copy(sliceBytes(out), r.buf[o:])
		return out, nil
	}
	save := r.offset
	out := make([]uint64, n)
	for i := range out {
		v, err := r.ReadUint64()
		if err != nil {
			r.offset = save
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *Reader) ReadFloat32Array(n int) ([]float32, error) {
	if r.bulkOK(n) {
		o, err := r.prepare(4, 4*n)
		if err != nil {
			return nil, err
		}
		out := make([]float32, n)
		copy(sliceBytes(out), r.buf[o:])
		return out, nil
	}
	save := r.offset
	out := make([]float32, n)
	for i := range out {
		v, err := r.ReadFloat32()
		if err != nil {
			r.offset = save
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *Reader) ReadFloat64Array(n int) ([]float64, error) {
	if r.bulkOK(n) {
		o, err := r.prepare(r.align64(), 8*n)
		if err != nil {
			return nil, err
		}
		out := make([]float64, n)
		copy(sliceBytes(out), r.buf[o:])
		return out, nil
	}
	save := r.offset
	out := make([]float64, n)
	for i := range out {
		v, err := r.ReadFloat64()
		if err != nil {
			r.offset = save
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
