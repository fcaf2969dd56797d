package main

import (
	"encoding/binary"
	"math"
)

// blobBuilder writes little-endian state blobs for tests.
type blobBuilder struct {
	buf []byte
}

func (b *blobBuilder) u32(vs ...uint32) *blobBuilder {
	for _, v := range vs {
		b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	}
	return b
}

func (b *blobBuilder) f32(vs ...float32) *blobBuilder {
	for _, v := range vs {
		b.buf = binary.LittleEndian.AppendUint32(b.buf, math.Float32bits(v))
	}
	return b
}

func (b *blobBuilder) f64(vs ...float64) *blobBuilder {
	for _, v := range vs {
		b.buf = binary.LittleEndian.AppendUint64(b.buf, math.Float64bits(v))
	}
	return b
}

func (b *blobBuilder) zeros(n int) *blobBuilder {
	b.buf = append(b.buf, make([]byte, n)...)
	return b
}

// links writes a count-prefixed list of u32 values.
func (b *blobBuilder) links(idx ...uint32) *blobBuilder {
	b.u32(uint32(len(idx)))
	return b.u32(idx...)
}

func (b *blobBuilder) bytes() []byte {
	return b.buf
}

const testHostPrefix = "FLhd\x06\x00\x00\x00FLdt\x00\x00\x00\x00plugin:"

// hostFile wraps blob the way the default host profile stores it.
func hostFile(blob []byte) []byte {
	data := []byte(testHostPrefix + DefaultMarker)
	data = append(data, make([]byte, FLStudioHeaderOffset-len(DefaultMarker))...)
	return append(data, blob...)
}

func testMarkerOffset() int {
	return len(testHostPrefix)
}

func testBlobOffset() int {
	return len(testHostPrefix) + FLStudioHeaderOffset
}

func testHost() HostProfile {
	return defaultHosts()[DefaultHost]
}

// emptyScalarV0 is a version 0 blob with no points, no LFOs and a zero matrix.
func emptyScalarV0() []byte {
	b := &blobBuilder{}
	b.u32(0)    // version
	b.u32(0, 0) // shape editors
	b.u32(0)    // LFOs
	b.zeros(bankTrailerSize + hostParamsSizeV0 + freqParamsSizeV0)
	b.zeros(matrixSize * matrixSize * 8)
	return b.bytes()
}

// richScalarV0 is a version 0 blob with points, links and two LFOs.
func richScalarV0() ([]byte, State) {
	b := &blobBuilder{}
	b.u32(0)

	// shape editor 1: two points, the second linked to LFOs 1 and 0 on y
	b.u32(2)
	b.u32(ShapePower).f32(0).links().f32(0).links().f32(0.5).links().f32(1)
	b.u32(ShapeSine).f32(1).links().f32(0.75).links(1, 0).f32(0.25).links(2).f32(3)
	// shape editor 2: one point
	b.u32(1)
	b.u32(ShapePower).f32(0.5).links(0).f32(0.5).links().f32(0.5).links().f32(2)

	// two LFOs
	b.u32(2)
	b.u32(1).u32(ShapeSine).f32(0.125).links().f32(1).links().f32(0.5).links().f32(1)
	b.u32(0)

	b.zeros(bankTrailerSize + hostParamsSizeV0 + freqParamsSizeV0)
	var m ModulationMatrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = float64(i) + float64(j)/100
			b.f64(m[i][j])
		}
	}

	blob := b.bytes()
	start := testBlobOffset()
	want := State{
		Host:         DefaultHost,
		MarkerOffset: testMarkerOffset(),
		BlobOffset:   start,
		Version:      Version{Encoding: EncodingScalar},
		ShapeEditors: [2]ShapeEditorState{
			{Points: []PointRecord{
				{Interpolation: ShapePower, X: 0, Y: 0, CurveCenter: 0.5, Omega: 1},
				{Interpolation: ShapeSine, X: 1, Y: 0.75, YLinks: []uint32{1, 0}, CurveCenter: 0.25, CurveCenterLinks: []uint32{2}, Omega: 3},
			}},
			{Points: []PointRecord{
				{Interpolation: ShapePower, X: 0.5, XLinks: []uint32{0}, Y: 0.5, CurveCenter: 0.5, Omega: 2},
			}},
		},
		Modulators: ModulatorBankState{
			Kind: KindLFO,
			Slots: []ModulationSlot{
				{Editor: ShapeEditorState{Points: []PointRecord{
					{Interpolation: ShapeSine, X: 0.125, Y: 1, CurveCenter: 0.5, Omega: 1},
				}}},
				{Editor: ShapeEditorState{Points: []PointRecord{}}},
			},
		},
		Matrix:    &m,
		EndOffset: start + len(blob),
	}
	matrixStart := len(blob) - matrixSize*matrixSize*8
	regionStart := start + matrixStart - (bankTrailerSize + hostParamsSizeV0 + freqParamsSizeV0)
	want.Unparsed = []UnparsedRegion{
		{Offset: regionStart, Length: bankTrailerSize, Note: "LFO bank trailer"},
		{Offset: regionStart + bankTrailerSize, Length: hostParamsSizeV0, Note: "host-saved parameters"},
		{Offset: regionStart + bankTrailerSize + hostParamsSizeV0, Length: freqParamsSizeV0, Note: "frequency parameters"},
	}
	return blob, want
}

// richTupleV100 is a version 1.0.0 blob with two envelopes.
func richTupleV100() ([]byte, State) {
	b := &blobBuilder{}
	b.u32(1, 0, 0)
	b.u32(DistortionMidSide)

	b.u32(1).f32(0.25, 0.5, 0.5).u32(ShapeSine).f32(2)
	b.u32(0)

	b.u32(2)
	// envelope 0: one point, one link
	b.u32(1).f32(0, 1, 0.5).u32(ShapePower).f32(1)
	b.u32(1).u32(0, 3, ModPosY).f32(0.5)
	// envelope 1: no points, no links
	b.u32(0)
	b.u32(0)
	// panels
	b.u32(1).u32(0).f64(2).u32(1).f64(0.5)
	b.u32(0).u32(0).f64(4).u32(1).f64(1.5)
	trailer := len(b.bytes())
	b.zeros(bankTrailerSize)

	blob := b.bytes()
	start := testBlobOffset()
	mode := DistortionMidSide
	want := State{
		Host:           DefaultHost,
		MarkerOffset:   testMarkerOffset(),
		BlobOffset:     start,
		Version:        Version{Encoding: EncodingTuple, Major: 1},
		DistortionMode: &mode,
		ShapeEditors: [2]ShapeEditorState{
			{Points: []PointRecord{{X: 0.25, Y: 0.5, CurveCenter: 0.5, Interpolation: ShapeSine, Omega: 2}}},
			{Points: []PointRecord{}},
		},
		Modulators: ModulatorBankState{
			Kind: KindEnvelope,
			Slots: []ModulationSlot{
				{
					Editor: ShapeEditorState{Points: []PointRecord{{X: 0, Y: 1, CurveCenter: 0.5, Interpolation: ShapePower, Omega: 1}}},
					Links:  []ModulationLinkRecord{{ShapeEditor: 0, Point: 3, Mode: ModPosY, Amount: 0.5}},
				},
				{
					Editor: ShapeEditorState{Points: []PointRecord{}},
					Links:  []ModulationLinkRecord{},
				},
			},
			Panels: []FrequencyPanelState{
				{ActiveMode: 1, Modes: [2]FrequencyMode{{Mode: 0, Value: 2}, {Mode: 1, Value: 0.5}}},
				{ActiveMode: 0, Modes: [2]FrequencyMode{{Mode: 0, Value: 4}, {Mode: 1, Value: 1.5}}},
			},
		},
		Unparsed:  []UnparsedRegion{{Offset: start + trailer, Length: bankTrailerSize, Note: "envelope bank trailer"}},
		EndOffset: start + len(blob),
	}
	return blob, want
}
