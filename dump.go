package main

import (
	"fmt"
	"io"
)

const dumpRowWidth = 16

// dumpBytes writes data as offset-prefixed hex rows. base is the file offset of data[0].
func dumpBytes(w io.Writer, label string, data []byte, base int) {
	fmt.Fprintf(w, "Dumping %d bytes of %s:\n", len(data), label)

	for row := 0; row < len(data); row += dumpRowWidth {
		end := min(row+dumpRowWidth, len(data))
		fmt.Fprintf(w, "%08X ", base+row)
		for _, b := range data[row:end] {
			fmt.Fprintf(w, " %02X", b)
		}
		fmt.Fprintf(w, "%*s  |", 3*(dumpRowWidth-(end-row)), "")
		for _, b := range data[row:end] {
			if b < 0x20 || b > 0x7E {
				b = '.'
			}
			fmt.Fprintf(w, "%c", b)
		}
		fmt.Fprintln(w, "|")
	}
}

// dumpBlob dumps the host header before the state and the state itself.
func dumpBlob(w io.Writer, data []byte, host HostProfile) error {
	marker, blob, err := Locate(data, host)
	if err != nil {
		return err
	}
	dumpBytes(w, "host header", data[marker:blob], marker)
	dumpBytes(w, "state", data[blob:], blob)
	return nil
}
