package main

import (
	"fmt"
)

// Sizes of fixed records, used to bound counts before allocating.
const (
	pointSizeV100    = 5 * 4
	pointMinSizeV0   = 5*4 + 3*4
	linkRecordSize   = 4 * 4
	panelSize        = 4 + 2*(4+8)
	envelopeMinV100  = 4 + 4 + panelSize
	lfoMinV0         = 4
	bankTrailerSize  = 4
	hostParamsSizeV0 = 132
	freqParamsSizeV0 = 30 * 4
)

// Version 1.0.0, tuple encoded:
//
//	distortion mode u32
//	shape editor 1, shape editor 2   (points: x, y, curve center, interpolation, omega)
//	envelope count u32
//	  per envelope: shape editor, modulation links
//	  per envelope: frequency panel
//	4 byte bank trailer
func decodeTupleV100(r *reader, s *State) error {
	mode, err := r.u32("distortion mode")
	if err != nil {
		return err
	}
	s.DistortionMode = &mode

	for i := range s.ShapeEditors {
		if s.ShapeEditors[i], err = decodeEditorV100(r, fmt.Sprintf("shape editor %d", i+1)); err != nil {
			return err
		}
	}

	n, err := r.count("envelope count", envelopeMinV100)
	if err != nil {
		return err
	}
	s.Modulators = ModulatorBankState{Kind: KindEnvelope, Slots: make([]ModulationSlot, n)}
	for i := range s.Modulators.Slots {
		name := fmt.Sprintf("envelope %d", i)
		slot := &s.Modulators.Slots[i]
		if slot.Editor, err = decodeEditorV100(r, name); err != nil {
			return err
		}
		if slot.Links, err = decodeLinkRecords(r, name); err != nil {
			return err
		}
	}
	s.Modulators.Panels = make([]FrequencyPanelState, n)
	for i := range s.Modulators.Panels {
		if s.Modulators.Panels[i], err = decodeFrequencyPanel(r, fmt.Sprintf("frequency panel %d", i)); err != nil {
			return err
		}
	}

	trailer, err := r.skip(bankTrailerSize, "envelope bank trailer")
	if err != nil {
		return err
	}
	s.Unparsed = append(s.Unparsed, trailer)
	return nil
}

func decodeEditorV100(r *reader, name string) (ShapeEditorState, error) {
	var ed ShapeEditorState
	n, err := r.count(name+" point count", pointSizeV100)
	if err != nil {
		return ed, err
	}
	ed.Points = make([]PointRecord, n)
	for i := range ed.Points {
		p := &ed.Points[i]
		field := fmt.Sprintf("%s point %d", name, i)
		if p.X, err = r.f32(field + " x-position"); err != nil {
			return ed, err
		}
		if p.Y, err = r.f32(field + " y-position"); err != nil {
			return ed, err
		}
		if p.CurveCenter, err = r.f32(field + " curve center"); err != nil {
			return ed, err
		}
		if p.Interpolation, err = r.u32(field + " interpolation mode"); err != nil {
			return ed, err
		}
		if p.Omega, err = r.f32(field + " omega"); err != nil {
			return ed, err
		}
	}
	return ed, nil
}

func decodeLinkRecords(r *reader, name string) ([]ModulationLinkRecord, error) {
	n, err := r.count(name+" modulation link count", linkRecordSize)
	if err != nil {
		return nil, err
	}
	links := make([]ModulationLinkRecord, n)
	for i := range links {
		l := &links[i]
		field := fmt.Sprintf("%s link %d", name, i)
		if l.ShapeEditor, err = r.u32(field + " shape editor"); err != nil {
			return nil, err
		}
		if l.Point, err = r.u32(field + " point index"); err != nil {
			return nil, err
		}
		if l.Mode, err = r.u32(field + " mode"); err != nil {
			return nil, err
		}
		if l.Amount, err = r.f32(field + " amount"); err != nil {
			return nil, err
		}
	}
	return links, nil
}

func decodeFrequencyPanel(r *reader, name string) (FrequencyPanelState, error) {
	var p FrequencyPanelState
	var err error
	if p.ActiveMode, err = r.u32(name + " active mode"); err != nil {
		return p, err
	}
	for i := range p.Modes {
		if p.Modes[i].Mode, err = r.u32(fmt.Sprintf("%s mode %d", name, i)); err != nil {
			return p, err
		}
		if p.Modes[i].Value, err = r.f64(fmt.Sprintf("%s mode %d value", name, i)); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Version 0, scalar encoded:
//
//	shape editor 1, shape editor 2   (points: interpolation, x, links, y, links, curve center, links, omega)
//	LFO count u32, per LFO: shape editor
//	4 byte bank trailer
//	132 bytes of host-saved parameters
//	30 u32 frequency parameters
//	10x10 f64 modulation matrix
func decodeScalarV0(r *reader, s *State) error {
	var err error
	for i := range s.ShapeEditors {
		if s.ShapeEditors[i], err = decodeEditorV0(r, fmt.Sprintf("shape editor %d", i+1)); err != nil {
			return err
		}
	}

	n, err := r.count("LFO count", lfoMinV0)
	if err != nil {
		return err
	}
	s.Modulators = ModulatorBankState{Kind: KindLFO, Slots: make([]ModulationSlot, n)}
	for i := range s.Modulators.Slots {
		if s.Modulators.Slots[i].Editor, err = decodeEditorV0(r, fmt.Sprintf("LFO %d", i)); err != nil {
			return err
		}
	}

	for _, region := range []struct {
		size int
		note string
	}{
		{bankTrailerSize, "LFO bank trailer"},
		{hostParamsSizeV0, "host-saved parameters"},
		{freqParamsSizeV0, "frequency parameters"},
	} {
		u, err := r.skip(region.size, region.note)
		if err != nil {
			return err
		}
		s.Unparsed = append(s.Unparsed, u)
	}

	var m ModulationMatrix
	for i := range m {
		for j := range m[i] {
			if m[i][j], err = r.f64(fmt.Sprintf("modulation amount [%d][%d]", i, j)); err != nil {
				return err
			}
		}
	}
	s.Matrix = &m
	return nil
}

func decodeEditorV0(r *reader, name string) (ShapeEditorState, error) {
	var ed ShapeEditorState
	n, err := r.count(name+" point count", pointMinSizeV0)
	if err != nil {
		return ed, err
	}
	ed.Points = make([]PointRecord, n)
	for i := range ed.Points {
		p := &ed.Points[i]
		field := fmt.Sprintf("%s point %d", name, i)
		if p.Interpolation, err = r.u32(field + " interpolation mode"); err != nil {
			return ed, err
		}
		if p.X, err = r.f32(field + " x-position"); err != nil {
			return ed, err
		}
		if p.XLinks, err = decodeLinkIndices(r, field+" x-position"); err != nil {
			return ed, err
		}
		if p.Y, err = r.f32(field + " y-position"); err != nil {
			return ed, err
		}
		if p.YLinks, err = decodeLinkIndices(r, field+" y-position"); err != nil {
			return ed, err
		}
		if p.CurveCenter, err = r.f32(field + " curve center"); err != nil {
			return ed, err
		}
		if p.CurveCenterLinks, err = decodeLinkIndices(r, field+" curve center"); err != nil {
			return ed, err
		}
		if p.Omega, err = r.f32(field + " omega"); err != nil {
			return ed, err
		}
	}
	return ed, nil
}

// decodeLinkIndices reads the LFO indices linked to the preceding parameter.
// An empty list decodes as nil.
func decodeLinkIndices(r *reader, name string) ([]uint32, error) {
	n, err := r.count(name+" link count", 4)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	idx := make([]uint32, n)
	for i := range idx {
		if idx[i], err = r.u32(fmt.Sprintf("%s link %d", name, i)); err != nil {
			return nil, err
		}
	}
	return idx, nil
}
