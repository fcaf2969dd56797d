package main

import (
	"fmt"
)

// NotFoundError reports that the plugin marker does not occur in the file.
type NotFoundError struct {
	Marker string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("plugin data not found: marker %q is absent", e.Marker)
}

// UnsupportedVersionError reports a version tag whose layout is not implemented.
type UnsupportedVersionError struct {
	Version Version
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported state version %s (%s encoding)", e.Version, e.Version.Encoding)
}

// TruncatedDataError reports a field or region that extends past the end of the buffer.
type TruncatedDataError struct {
	Field  string
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedDataError) Error() string {
	return fmt.Sprintf("truncated data reading %s at byte %d: need %d bytes, %d left", e.Field, e.Offset, e.Need, e.Have)
}
