package hasher

import (
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to the given length. Catalog checksums use 16 hex chars
// (64 bits).
func ContentHash(data []byte, hexLen int) string {
	return truncHex(xxhash.Sum64(data), hexLen)
}

// ContentHashReader computes xxHash64 from a reader, streaming.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return truncHex(h.Sum64(), hexLen), nil
}

// Digest accumulates structured values into one xxHash64. Every field is
// length- or width-prefixed so that ("ab","c") and ("a","bc") differ.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// New returns an empty Digest.
func New() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteString adds a length-prefixed string.
func (d *Digest) WriteString(s string) {
	d.WriteUint64(uint64(len(s)))
	d.d.WriteString(s)
}

// WriteUint64 adds a fixed-width big-endian integer.
func (d *Digest) WriteUint64(v uint64) {
	putUint64(d.buf[:], v)
	d.d.Write(d.buf[:])
}

// WriteBytes adds raw bytes without a prefix.
func (d *Digest) WriteBytes(b ...byte) {
	d.d.Write(b)
}

// Hex returns the digest as hex, truncated to hexLen (0 = all 16 chars).
func (d *Digest) Hex(hexLen int) string {
	return truncHex(d.d.Sum64(), hexLen)
}

func truncHex(v uint64, hexLen int) string {
	b := make([]byte, 8)
	putUint64(b, v)
	full := hex.EncodeToString(b)
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

func putUint64(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}
