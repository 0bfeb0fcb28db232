package archive

import (
	"bytes"
	"os"

	"github.com/klauspost/compress/zstd"

	"ozz-skel-runtime/internal/ozzerr"
)

// zstd frame magic, little-endian on disk.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// OpenPath reads an archive file into memory and returns a Reader over its
// contents. Files compressed as a zstd frame are decompressed
// transparently, so callers never distinguish ".ozz" from ".ozz.zst".
func OpenPath(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ozzerr.IO("open "+path, err)
	}

	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, ozzerr.IO("init zstd", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, ozzerr.IO("decompress "+path, err)
		}
	}

	return Open(bytes.NewReader(data))
}
