package main

import (
	"fmt"
	"io"
	"strings"
)

var (
	hline       = strings.Repeat("-", 50)
	hlineDashed = strings.Repeat("- ", 25)
)

// reportWriter keeps the first write error so the render code can stay linear.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func (rw *reportWriter) println(args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintln(rw.w, args...)
}

// Render writes a human readable report of s to w. Fields appear in the
// order they are stored in the file.
func Render(w io.Writer, s *State) error {
	rw := &reportWriter{w: w}

	rw.printf("UDShaper data found at byte %d (%s).\n", s.BlobOffset, s.Host)
	rw.printf("Version %s\n\n", s.Version)
	if s.DistortionMode != nil {
		rw.printf("Current distortion mode: %s\n\n", enumName(distortionModeNames, *s.DistortionMode))
	}

	// Tuple-encoded states store the interpolation mode after the curve center.
	interpLast := s.Version.Encoding == EncodingTuple

	for i := range s.ShapeEditors {
		rw.println(hline)
		rw.printf("ShapeEditor%d:\n\n", i+1)
		renderEditor(rw, &s.ShapeEditors[i], interpLast)
	}

	rw.println(hline)
	renderBank(rw, &s.Modulators, interpLast)
	rw.println(hline)

	if len(s.Unparsed) > 0 {
		rw.println("Unparsed regions:")
		for _, u := range s.Unparsed {
			rw.printf("\tbyte %d, %d bytes: %s\n", u.Offset, u.Length, u.Note)
		}
		rw.println()
	}

	if s.Matrix != nil {
		rw.println("Modulation amounts:")
		for _, row := range s.Matrix {
			cells := make([]string, len(row))
			for j, amount := range row {
				cells[j] = fmt.Sprintf("%1.2f", amount)
			}
			rw.printf("[%s]\n", strings.Join(cells, " "))
		}
	}

	if s.TrailingBytes == 0 {
		rw.println("End of file.")
	} else {
		rw.printf("remaining data:\n%d bytes\n", s.TrailingBytes)
	}
	return rw.err
}

func renderEditor(rw *reportWriter, ed *ShapeEditorState, interpLast bool) {
	rw.printf("\tNumber of points saved: %d\n", len(ed.Points))
	for i, p := range ed.Points {
		interp := enumName(interpolationNames, p.Interpolation)
		rw.printf("\tPoint %d:\n", i)
		if !interpLast {
			rw.printf("\t\tinterpolation mode: %s\n", interp)
		}
		rw.printf("\t\tx-position: %v\n", p.X)
		renderLinkIndices(rw, p.XLinks)
		rw.printf("\t\ty-position: %v\n", p.Y)
		renderLinkIndices(rw, p.YLinks)
		rw.printf("\t\tcurve center position: %v\n", p.CurveCenter)
		renderLinkIndices(rw, p.CurveCenterLinks)
		if interpLast {
			rw.printf("\t\tinterpolation mode: %s\n", interp)
		}
		rw.printf("\t\tomega: %v\n", p.Omega)
		rw.println()
	}
}

func renderLinkIndices(rw *reportWriter, idx []uint32) {
	if len(idx) == 0 {
		return
	}
	rw.printf("\t\t\tconnected to links: %v\n", idx)
}

func renderBank(rw *reportWriter, b *ModulatorBankState, interpLast bool) {
	title, slotName := "LFO", "LFO"
	plural := "LFOs"
	if b.Kind == KindEnvelope {
		title, slotName, plural = "EnvelopeManager", "Envelope", "Envelopes"
	}

	rw.printf("%s:\n\n", title)
	rw.printf("Number of active %s: %d\n\n", plural, len(b.Slots))

	for i := range b.Slots {
		slot := &b.Slots[i]
		rw.println(hlineDashed)
		rw.printf("%s %d:\n\n", slotName, i)
		renderEditor(rw, &slot.Editor, interpLast)
		if b.Kind == KindEnvelope {
			renderLinks(rw, slotName, slot.Links)
		}
	}
	rw.println(hlineDashed)

	if b.Kind != KindEnvelope {
		return
	}
	rw.println("FrequencyPanel states:")
	rw.println()
	for i, p := range b.Panels {
		rw.printf("Panel %d:\n\n", i)
		rw.printf("\tActive mode: %d\n", p.ActiveMode)
		for _, m := range p.Modes {
			rw.printf("\tmode: %d\n", m.Mode)
			rw.printf("\t\tvalue: %v\n", m.Value)
		}
		rw.println()
	}
}

func renderLinks(rw *reportWriter, owner string, links []ModulationLinkRecord) {
	rw.printf("\tNumber of modulation links of this %s: %d\n", owner, len(links))
	for i, l := range links {
		rw.printf("\tLink %d:\n", i)
		rw.printf("\t\tShapeEditor: %d\n", l.ShapeEditor)
		rw.printf("\t\tPoint idx: %d\n", l.Point)
		rw.printf("\t\tmode: %s\n", enumName(modulationModeNames, l.Mode))
		rw.printf("\t\tmodulation amount: %v\n", l.Amount)
		rw.println()
	}
	if len(links) == 0 {
		rw.println()
	}
}
