package main

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// reader is a forward-only cursor over a little-endian buffer.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte, pos int) *reader {
	return &reader{data: data, pos: pos}
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

// take returns the next n bytes and advances the cursor, or fails without moving it.
func (r *reader) take(n int, field string) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, errors.WithStack(&TruncatedDataError{
			Field:  field,
			Offset: r.pos,
			Need:   n,
			Have:   r.remaining(),
		})
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u32(field string) (uint32, error) {
	b, err := r.take(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) f32(field string) (float32, error) {
	b, err := r.take(4, field)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func (r *reader) f64(field string) (float64, error) {
	b, err := r.take(8, field)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// skip consumes n opaque bytes and records them as an unparsed region.
func (r *reader) skip(n int, note string) (UnparsedRegion, error) {
	off := r.pos
	if _, err := r.take(n, note); err != nil {
		return UnparsedRegion{}, err
	}
	return UnparsedRegion{Offset: off, Length: n, Note: note}, nil
}

// count reads a u32 collection length and rejects counts whose minimum
// element size could not fit in the rest of the buffer.
func (r *reader) count(field string, minElem int) (int, error) {
	off := r.pos
	n, err := r.u32(field)
	if err != nil {
		return 0, err
	}
	if minElem > 0 && uint64(n)*uint64(minElem) > uint64(r.remaining()) {
		return 0, errors.WithStack(&TruncatedDataError{
			Field:  field,
			Offset: off,
			Need:   4 + int(min(uint64(n)*uint64(minElem), math.MaxInt32)),
			Have:   len(r.data) - off,
		})
	}
	return int(n), nil
}
