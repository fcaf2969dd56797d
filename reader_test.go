package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderScalars(t *testing.T) {
	data := (&blobBuilder{}).u32(42).f32(-0.5).f64(1e-3).bytes()
	r := newReader(data, 0)

	u, err := r.u32("u")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), u)

	f, err := r.f32("f")
	require.NoError(t, err)
	assert.Equal(t, float32(-0.5), f)

	d, err := r.f64("d")
	require.NoError(t, err)
	assert.Equal(t, 1e-3, d)

	assert.Equal(t, 16, r.pos)
	assert.Zero(t, r.remaining())
}

func TestReaderTruncated(t *testing.T) {
	r := newReader([]byte{1, 2, 3, 4, 5, 6}, 2)

	_, err := r.f64("value")
	require.Error(t, err)

	var trunc *TruncatedDataError
	require.True(t, errors.As(err, &trunc))
	assert.Equal(t, TruncatedDataError{Field: "value", Offset: 2, Need: 8, Have: 4}, *trunc)
	assert.Equal(t, 2, r.pos, "failed read must not move the cursor")

	v, err := r.u32("next")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x06050403), v)
}

func TestReaderSkip(t *testing.T) {
	r := newReader(make([]byte, 10), 3)

	u, err := r.skip(5, "reserved")
	require.NoError(t, err)
	assert.Equal(t, UnparsedRegion{Offset: 3, Length: 5, Note: "reserved"}, u)
	assert.Equal(t, 8, r.pos)

	_, err = r.skip(5, "reserved")
	var trunc *TruncatedDataError
	assert.True(t, errors.As(err, &trunc))
}

func TestReaderCount(t *testing.T) {
	data := (&blobBuilder{}).u32(3).zeros(12).bytes()

	n, err := newReader(data, 0).count("items", 4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = newReader(data, 0).count("items", 5)
	var trunc *TruncatedDataError
	require.True(t, errors.As(err, &trunc))
	assert.Equal(t, 0, trunc.Offset)
	assert.Equal(t, 19, trunc.Need)
	assert.Equal(t, 16, trunc.Have)
}
