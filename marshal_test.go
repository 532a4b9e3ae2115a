package hllset

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	mrand "math/rand"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
)

func TestIDGolden(t *testing.T) {
	testCases := []struct {
		regs   []uint32
		expect string
	}{
		{make([]uint32, 16), "c8d7d0ef0eedfa82d2ea1aa592845b9a6d4b02b7"},
		{append([]uint32{1}, make([]uint32, 15)...), "9c8d8e5a31c9802b093c4116dfb0a23a311b8029"},
		{append([]uint32{1, 2, 3, 0xFFFFFFFF}, make([]uint32, 12)...), "1c8ff9539a63ed4eadf225ca0c021a5d1c69a146"},
	}

	for i, testCase := range testCases {
		s, err := Restore(testCase.regs, 4)
		assert.Equal(t, nil, err)
		assert.Equalf(t, testCase.expect, s.ID(), "case %d", i)
	}
}

func TestIDTracksEquality(t *testing.T) {
	a := streamSketch(t, 8, 1, 400)
	b := streamSketch(t, 8, 1, 400)
	assert.Equal(t, a.ID(), b.ID())
	assert.Equal(t, a.ID(), a.Copy().ID())

	// one extra register bit moves the id
	x, _ := Restore(append([]uint32{1}, make([]uint32, 15)...), 4)
	y, _ := Restore(append([]uint32{3}, make([]uint32, 15)...), 4)
	assert.T(t, x.ID() != y.ID())

	var nilSketch *Sketch
	assert.Equal(t, "", nilSketch.ID())
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	for _, p := range []uint8{4, 8, 12} {
		h := streamSketch(t, p, 1, 2000)

		jBuf, err := json.Marshal(h)
		assert.Equalf(t, nil, err, "%v", err)

		rt := &Sketch{}
		err = json.Unmarshal(jBuf, rt)
		assert.Equalf(t, nil, err, "%v", err)

		assert.T(t, rt.Equal(h))
		assert.Equal(t, h.ID(), rt.ID())
	}
}

func TestMarshalJSONShape(t *testing.T) {
	h := streamSketch(t, 4, 1, 100)

	jBuf, err := json.Marshal(h)
	assert.Equal(t, nil, err)

	m := map[string]interface{}{}
	assert.Equal(t, nil, json.Unmarshal(jBuf, &m))

	_, hasP := m["p"]
	_, hasRegisters := m["registers"]
	assert.T(t, hasP && hasRegisters)
	assert.Equal(t, float64(4), m["p"])
}

// Make sure that after roundtripping, a Sketch is still usable and behaves
// identically to the original.
func TestUsageAfterJSONRoundTrip(t *testing.T) {
	h, _ := New(8)
	Add(h, "before")

	jBuf, err := json.Marshal(h)
	assert.Equal(t, nil, err)
	rt := &Sketch{}
	assert.Equal(t, nil, json.Unmarshal(jBuf, rt))

	for i := uint64(0); i < 500; i++ {
		v := mix64(streamSalt ^ i)
		rt.AddHash(v)
		h.AddHash(v)
		assert.T(t, rt.Equal(h), i)
	}
}

func TestUnmarshalJSONErrors(t *testing.T) {
	h := streamSketch(t, 4, 1, 10)
	jBuf, err := json.Marshal(h)
	assert.Equal(t, nil, err)

	rt := &Sketch{}

	// precision lowered under the same register payload
	bad := bytes.Replace(jBuf, []byte(`"p":4`), []byte(`"p":3`), 1)
	assert.Equal(t, ErrInvalidPrecision, errors.Cause(rt.UnmarshalJSON(bad)))

	// precision raised: payload no longer covers 2^p registers
	bad = bytes.Replace(jBuf, []byte(`"p":4`), []byte(`"p":5`), 1)
	assert.Equal(t, ErrLengthMismatch, errors.Cause(rt.UnmarshalJSON(bad)))

	// registers that are not valid base64
	assert.T(t, rt.UnmarshalJSON([]byte(`{"p":4,"registers":"!!!"}`)) != nil)
}

func TestMarshalBinaryRoundTrip(t *testing.T) {
	for _, p := range []uint8{4, 10, 18} {
		h := streamSketch(t, p, 1, 3000)

		buf, err := h.MarshalBinary()
		assert.Equal(t, nil, err)

		rt := &Sketch{}
		assert.Equal(t, nil, rt.UnmarshalBinary(buf))
		assert.T(t, rt.Equal(h))
	}
}

func TestUnmarshalBinaryErrors(t *testing.T) {
	h := streamSketch(t, 4, 1, 50)
	buf, err := h.MarshalBinary()
	assert.Equal(t, nil, err)

	rt := &Sketch{}
	assert.T(t, rt.UnmarshalBinary(nil) != nil)
	assert.T(t, rt.UnmarshalBinary(buf[:1]) != nil)
	assert.T(t, rt.UnmarshalBinary(buf[:len(buf)-1]) != nil)

	bad := append([]byte{}, buf...)
	bad[0] = 9
	assert.T(t, rt.UnmarshalBinary(bad) != nil)

	trailing := append(append([]byte{}, buf...), 0)
	assert.Equal(t, ErrLengthMismatch, errors.Cause(rt.UnmarshalBinary(trailing)))
}

func TestMarshalGobRoundTrip(t *testing.T) {
	h := streamSketch(t, 8, 1, 1500)

	var val bytes.Buffer
	enc := gob.NewEncoder(&val)
	assert.Equal(t, nil, enc.Encode(h))

	dec := gob.NewDecoder(&val)
	rt := &Sketch{}
	assert.Equal(t, nil, dec.Decode(rt))

	assert.T(t, rt.Equal(h))
}

func TestCompression(t *testing.T) {
	const numTests = 1000

	rng := mrand.New(mrand.NewSource(1))
	for i := 0; i < numTests; i++ {
		buf := make([]byte, rng.Intn(99)+1)
		rng.Read(buf)

		compressed, err := snappyB64(buf)
		assert.Equal(t, nil, err)
		roundTripped, err := unsnappyB64(compressed)
		assert.Equal(t, nil, err)

		assert.Equal(t, buf, roundTripped)
	}
}
