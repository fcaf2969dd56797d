package main

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// layoutDecoder reads everything after the version tag for one state version.
type layoutDecoder func(r *reader, s *State) error

type layoutKey struct {
	encoding VersionEncoding
	version  string
}

// layouts is the closed set of state layouts the decoder understands.
// A layout that has shipped is never edited; a new format gets a new entry.
var layouts = map[layoutKey]layoutDecoder{
	{EncodingTuple, "1.0.0"}: decodeTupleV100,
	{EncodingScalar, "0"}:    decodeScalarV0,
}

func supportedVersions() []string {
	return []string{"tuple 1.0.0", "scalar 0"}
}

// Locate finds the plugin marker in data and returns its offset together with
// the offset of the state blob that follows the host header.
func Locate(data []byte, host HostProfile) (int, int, error) {
	marker := bytes.Index(data, []byte(host.Marker))
	if marker < 0 {
		return -1, -1, errors.WithStack(&NotFoundError{Marker: host.Marker})
	}
	blob := marker + host.HeaderOffset
	if blob > len(data) {
		return marker, -1, errors.WithStack(&TruncatedDataError{
			Field:  fmt.Sprintf("%s host header", host.Name),
			Offset: marker,
			Need:   host.HeaderOffset,
			Have:   len(data) - marker,
		})
	}
	return marker, blob, nil
}

func readVersion(r *reader, enc VersionEncoding) (Version, error) {
	v := Version{Encoding: enc}
	var err error
	switch enc {
	case EncodingTuple:
		if v.Major, err = r.u32("version major"); err != nil {
			return v, err
		}
		if v.Minor, err = r.u32("version minor"); err != nil {
			return v, err
		}
		if v.Patch, err = r.u32("version patch"); err != nil {
			return v, err
		}
	case EncodingScalar:
		if v.Number, err = r.u32("version"); err != nil {
			return v, err
		}
	default:
		return v, fmt.Errorf("unknown version encoding %q", enc)
	}
	return v, nil
}

// Decode locates and decodes the plugin state embedded in a host file.
// No partial state is returned on error.
func Decode(data []byte, host HostProfile, enc VersionEncoding) (*State, error) {
	marker, blob, err := Locate(data, host)
	if err != nil {
		return nil, err
	}

	r := newReader(data, blob)
	v, err := readVersion(r, enc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read state version")
	}

	decode, ok := layouts[layoutKey{enc, v.String()}]
	if !ok {
		return nil, errors.WithStack(&UnsupportedVersionError{Version: v})
	}

	s := &State{
		Host:         host.Name,
		MarkerOffset: marker,
		BlobOffset:   blob,
		Version:      v,
	}
	if err := decode(r, s); err != nil {
		return nil, errors.Wrapf(err, "failed to decode version %s state", v)
	}
	s.EndOffset = r.pos
	s.TrailingBytes = r.remaining()
	return s, nil
}
