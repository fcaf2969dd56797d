package main

import (
	"fmt"
)

// VersionEncoding selects how the version tag is stored at the start of the blob.
type VersionEncoding string

const (
	// EncodingTuple stores major, minor and patch as three u32 values.
	EncodingTuple VersionEncoding = "tuple"
	// EncodingScalar stores a single increasing u32 version number.
	EncodingScalar VersionEncoding = "scalar"
)

func parseEncoding(s string) (VersionEncoding, error) {
	switch VersionEncoding(s) {
	case EncodingTuple, EncodingScalar:
		return VersionEncoding(s), nil
	}
	return "", fmt.Errorf("unknown version encoding %q (want %q or %q)", s, EncodingTuple, EncodingScalar)
}

type Version struct {
	Encoding VersionEncoding `json:"encoding" yaml:"encoding"`
	Major    uint32          `json:"major,omitempty" yaml:"major,omitempty"`
	Minor    uint32          `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch    uint32          `json:"patch,omitempty" yaml:"patch,omitempty"`
	Number   uint32          `json:"number,omitempty" yaml:"number,omitempty"`
}

func (v Version) String() string {
	if v.Encoding == EncodingTuple {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d", v.Number)
}

// Interpolation modes between two shape points.
const (
	ShapePower uint32 = iota
	ShapeSine
)

// Modulation modes of a link between a modulator and a shape point.
const (
	ModNone uint32 = iota
	ModCurveCenterY
	ModPosX
	ModPosY
)

// Distortion modes of the plugin.
const (
	DistortionUpDown uint32 = iota
	DistortionLeftRight
	DistortionMidSide
	DistortionPositiveNegative
)

var interpolationNames = []string{"power", "sine"}
var modulationModeNames = []string{"none", "curveCenterY", "posX", "posY"}
var distortionModeNames = []string{"upDown", "leftRight", "midSide", "positiveNegative"}

func enumName(names []string, v uint32) string {
	if int(v) < len(names) {
		return fmt.Sprintf("%d (%s)", v, names[v])
	}
	return fmt.Sprintf("%d (unknown)", v)
}

type PointRecord struct {
	Interpolation    uint32   `json:"interpolation" yaml:"interpolation"`
	X                float32  `json:"x" yaml:"x"`
	XLinks           []uint32 `json:"x_links,omitempty" yaml:"x_links,omitempty"`
	Y                float32  `json:"y" yaml:"y"`
	YLinks           []uint32 `json:"y_links,omitempty" yaml:"y_links,omitempty"`
	CurveCenter      float32  `json:"curve_center" yaml:"curve_center"`
	CurveCenterLinks []uint32 `json:"curve_center_links,omitempty" yaml:"curve_center_links,omitempty"`
	Omega            float32  `json:"omega" yaml:"omega"`
}

type ShapeEditorState struct {
	Points []PointRecord `json:"points" yaml:"points"`
}

type ModulationLinkRecord struct {
	ShapeEditor uint32  `json:"shape_editor" yaml:"shape_editor"`
	Point       uint32  `json:"point" yaml:"point"`
	Mode        uint32  `json:"mode" yaml:"mode"`
	Amount      float32 `json:"amount" yaml:"amount"`
}

type FrequencyMode struct {
	Mode  uint32  `json:"mode" yaml:"mode"`
	Value float64 `json:"value" yaml:"value"`
}

type FrequencyPanelState struct {
	ActiveMode uint32           `json:"active_mode" yaml:"active_mode"`
	Modes      [2]FrequencyMode `json:"modes" yaml:"modes"`
}

// ModulationSlot is one envelope or LFO: its editor and, where the layout
// stores them, its outgoing modulation links.
type ModulationSlot struct {
	Editor ShapeEditorState       `json:"editor" yaml:"editor"`
	Links  []ModulationLinkRecord `json:"links,omitempty" yaml:"links,omitempty"`
}

// ModulatorKind names the modulation source a bank holds.
type ModulatorKind string

const (
	KindEnvelope ModulatorKind = "envelope"
	KindLFO      ModulatorKind = "lfo"
)

type ModulatorBankState struct {
	Kind   ModulatorKind         `json:"kind" yaml:"kind"`
	Slots  []ModulationSlot      `json:"slots" yaml:"slots"`
	Panels []FrequencyPanelState `json:"panels,omitempty" yaml:"panels,omitempty"`
}

const matrixSize = 10

type ModulationMatrix [matrixSize][matrixSize]float64

// UnparsedRegion is a byte range the decoder steps over without interpreting.
type UnparsedRegion struct {
	Offset int    `json:"offset" yaml:"offset"`
	Length int    `json:"length" yaml:"length"`
	Note   string `json:"note" yaml:"note"`
}

// State is the decoded plugin state of one host file.
type State struct {
	Host           string              `json:"host" yaml:"host"`
	MarkerOffset   int                 `json:"marker_offset" yaml:"marker_offset"`
	BlobOffset     int                 `json:"blob_offset" yaml:"blob_offset"`
	Version        Version             `json:"version" yaml:"version"`
	DistortionMode *uint32             `json:"distortion_mode,omitempty" yaml:"distortion_mode,omitempty"`
	ShapeEditors   [2]ShapeEditorState `json:"shape_editors" yaml:"shape_editors"`
	Modulators     ModulatorBankState  `json:"modulators" yaml:"modulators"`
	Unparsed       []UnparsedRegion    `json:"unparsed" yaml:"unparsed"`
	Matrix         *ModulationMatrix   `json:"modulation_matrix,omitempty" yaml:"modulation_matrix,omitempty"`
	EndOffset      int                 `json:"end_offset" yaml:"end_offset"`
	TrailingBytes  int                 `json:"trailing_bytes" yaml:"trailing_bytes"`
}
