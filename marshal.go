package hllset

import (
	"bytes"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

const marshalVersion = 1

// ID returns the sketch's content hash: the hex SHA-1 digest of the
// registers serialized as little-endian bytes. Bit-identical registers
// always produce the same id, so it doubles as a cheap equality probe and a
// deduplication key. A nil sketch has the empty id.
func (s *Sketch) ID() string {
	if s == nil {
		return ""
	}
	sum := sha1.Sum(s.registerBytes())
	return hex.EncodeToString(sum[:])
}

func (s *Sketch) registerBytes() []byte {
	buf := make([]byte, 4*len(s.regs))
	for i, r := range s.regs {
		binary.LittleEndian.PutUint32(buf[4*i:], r)
	}
	return buf
}

// When marshalling a Sketch to JSON, we only marshal the precision and a
// compressed copy of the registers.
type jsonableSketch struct {
	P         uint8  `json:"p"`
	Registers string `json:"registers"`
}

// MarshalJSON converts the Sketch into JSON. Registers are serialized
// little-endian, snappy-compressed and base64-encoded; a mostly-empty
// sketch compresses to a few dozen bytes.
func (s *Sketch) MarshalJSON() ([]byte, error) {
	compressed, err := snappyB64(s.registerBytes())
	if err != nil {
		return nil, err
	}
	return json.Marshal(&jsonableSketch{s.p, string(compressed)})
}

// UnmarshalJSON restores a Sketch from the representation produced by
// MarshalJSON.
func (s *Sketch) UnmarshalJSON(buf []byte) error {
	j := jsonableSketch{}
	if err := json.Unmarshal(buf, &j); err != nil {
		return err
	}

	raw, err := unsnappyB64([]byte(j.Registers))
	if err != nil {
		return err
	}

	n, err := New(j.P)
	if err != nil {
		return err
	}
	if len(raw) != 4*len(n.regs) {
		return errors.Wrapf(ErrLengthMismatch, "register payload is %d bytes, want %d", len(raw), 4*len(n.regs))
	}
	for i := range n.regs {
		n.regs[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}

	*s = *n
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler: a version byte, the
// precision, then one uvarint per register. Varints keep sketches with
// mostly-small registers compact without a second compression pass, and the
// interface makes Sketch values usable with encoding/gob directly.
func (s *Sketch) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2, 2+binary.MaxVarintLen32*len(s.regs))
	buf[0] = marshalVersion
	buf[1] = s.p
	var tmp [binary.MaxVarintLen32]byte
	for _, r := range s.regs {
		n := binary.PutUvarint(tmp[:], uint64(r))
		buf = append(buf, tmp[:n]...)
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Sketch) UnmarshalBinary(buf []byte) error {
	r := bytes.NewReader(buf)

	version, err := r.ReadByte()
	if err != nil {
		return errors.Wrap(err, "reading version")
	}
	if version != marshalVersion {
		return errors.Errorf("hllset: unsupported serialization version %d", version)
	}

	p, err := r.ReadByte()
	if err != nil {
		return errors.Wrap(err, "reading precision")
	}
	n, err := New(p)
	if err != nil {
		return err
	}

	for i := range n.regs {
		v, err := binary.ReadUvarint(r)
		if err != nil {
			return errors.Wrapf(err, "reading register %d", i)
		}
		if v > math.MaxUint32 {
			return errors.Errorf("hllset: register %d does not fit in 32 bits", i)
		}
		n.regs[i] = uint32(v)
	}
	if r.Len() != 0 {
		return errors.Wrapf(ErrLengthMismatch, "%d trailing bytes after registers", r.Len())
	}

	*s = *n
	return nil
}

// Compress the input using snappy and encode the result using URL-safe base64.
func snappyB64(in []byte) ([]byte, error) {
	compressed := snappy.Encode(nil, in)
	outBuf := make([]byte, base64.URLEncoding.EncodedLen(len(compressed)))
	base64.URLEncoding.Encode(outBuf, compressed)
	return outBuf, nil
}

// The inverse of snappyB64.
func unsnappyB64(in []byte) ([]byte, error) {
	unBase64ed := make([]byte, base64.URLEncoding.DecodedLen(len(in)))
	n, err := base64.URLEncoding.Decode(unBase64ed, in)
	if err != nil {
		return nil, err
	}

	uncompressed, err := snappy.Decode(nil, unBase64ed[:n])
	if err != nil {
		return nil, err
	}
	return uncompressed, nil
}
