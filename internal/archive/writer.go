package archive

import (
	"encoding/binary"
	"io"
	"math"

	"ozz-skel-runtime/internal/ozzerr"
)

// Writer encodes primitives into an archive byte stream. It is the mirror
// image of Reader and exists for offline tooling and round-trip tests.
type Writer struct {
	w       io.Writer
	scratch [8]byte
}

// NewWriter wraps w and writes the archive header for the given resource
// tag and version.
func NewWriter(w io.Writer, tag string, version uint32) (*Writer, error) {
	a := &Writer{w: w}
	if err := a.WriteString(tag); err != nil {
		return nil, err
	}
	if err := a.WriteUint32(version); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Writer) emit(n int, op string) error {
	if _, err := a.w.Write(a.scratch[:n]); err != nil {
		return ozzerr.IO(op, err)
	}
	return nil
}

// WriteUint32 writes a little-endian unsigned 32-bit integer.
func (a *Writer) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(a.scratch[:4], v)
	return a.emit(4, "write u32")
}

// WriteInt32 writes a little-endian signed 32-bit integer.
func (a *Writer) WriteInt32(v int32) error {
	return a.WriteUint32(uint32(v))
}

// WriteInt16 writes a little-endian signed 16-bit integer.
func (a *Writer) WriteInt16(v int16) error {
	binary.LittleEndian.PutUint16(a.scratch[:2], uint16(v))
	return a.emit(2, "write i16")
}

// WriteFloat32 writes a little-endian IEEE 754 32-bit float.
func (a *Writer) WriteFloat32(v float32) error {
	return a.WriteUint32(math.Float32bits(v))
}

// WriteFloat4 writes one 4-lane float group.
func (a *Writer) WriteFloat4(v [4]float32) error {
	for _, f := range v {
		if err := a.WriteFloat32(f); err != nil {
			return err
		}
	}
	return nil
}

// WriteString writes a length-prefixed UTF-8 string.
func (a *Writer) WriteString(s string) error {
	if err := a.WriteUint32(uint32(len(s))); err != nil {
		return err
	}
	if _, err := io.WriteString(a.w, s); err != nil {
		return ozzerr.IO("write string", err)
	}
	return nil
}

// WriteInt16s writes all values as consecutive signed 16-bit integers.
func (a *Writer) WriteInt16s(vs []int16) error {
	buf := make([]byte, 2*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(v))
	}
	if _, err := a.w.Write(buf); err != nil {
		return ozzerr.IO("write i16 array", err)
	}
	return nil
}
