// Package archive implements the versioned binary container used to
// persist runtime resources. A container starts with a length-prefixed
// tag string and a 32-bit version, followed by resource-specific data.
// All integers and floats are little-endian.
package archive

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"ozz-skel-runtime/internal/ozzerr"
)

// Strings on the wire are length-prefixed; anything near this limit is a
// corrupt or hostile stream, not a joint name.
const maxStringLen = 1 << 16

// Reader decodes primitives from an archive byte stream. The tag and
// version header is consumed at Open time.
type Reader struct {
	r       io.Reader
	tag     string
	version uint32
	scratch [8]byte
}

// Open wraps r and reads the archive header. It fails with an IO error if
// the header cannot be read; tag and version validation is left to the
// resource decoder, which knows what it expects.
func Open(r io.Reader) (*Reader, error) {
	a := &Reader{r: r}

	tag, err := a.ReadString()
	if err != nil {
		return nil, err
	}
	version, err := a.ReadUint32()
	if err != nil {
		return nil, err
	}

	a.tag = tag
	a.version = version
	return a, nil
}

// Tag returns the resource type tag read from the header.
func (a *Reader) Tag() string { return a.tag }

// Version returns the resource version read from the header.
func (a *Reader) Version() uint32 { return a.version }

func (a *Reader) fill(n int, op string) error {
	if _, err := io.ReadFull(a.r, a.scratch[:n]); err != nil {
		return ozzerr.IO(op, err)
	}
	return nil
}

// ReadUint32 reads a little-endian unsigned 32-bit integer.
func (a *Reader) ReadUint32() (uint32, error) {
	if err := a.fill(4, "read u32"); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(a.scratch[:4]), nil
}

// ReadInt32 reads a little-endian signed 32-bit integer.
func (a *Reader) ReadInt32() (int32, error) {
	v, err := a.ReadUint32()
	return int32(v), err
}

// ReadInt16 reads a little-endian signed 16-bit integer.
func (a *Reader) ReadInt16() (int16, error) {
	if err := a.fill(2, "read i16"); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(a.scratch[:2])), nil
}

// ReadFloat32 reads a little-endian IEEE 754 32-bit float.
func (a *Reader) ReadFloat32() (float32, error) {
	v, err := a.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat4 reads one 4-lane float group.
func (a *Reader) ReadFloat4() ([4]float32, error) {
	var out [4]float32
	for i := range out {
		v, err := a.ReadFloat32()
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadString reads a length-prefixed UTF-8 string.
func (a *Reader) ReadString() (string, error) {
	n, err := a.ReadUint32()
	if err != nil {
		return "", err
	}
	if n > maxStringLen {
		return "", ozzerr.IO("read string", fmt.Errorf("length %d exceeds limit %d", n, maxStringLen))
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(a.r, buf); err != nil {
		return "", ozzerr.IO("read string", err)
	}
	if !utf8.Valid(buf) {
		return "", ozzerr.UTF8(fmt.Sprintf("string of %d bytes", n))
	}
	return string(buf), nil
}

// ReadInt16s reads n consecutive signed 16-bit integers.
func (a *Reader) ReadInt16s(n int) ([]int16, error) {
	buf := make([]byte, 2*n)
	if _, err := io.ReadFull(a.r, buf); err != nil {
		return nil, ozzerr.IO("read i16 array", err)
	}
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	return out, nil
}
