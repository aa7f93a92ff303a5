package dbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNaturalToken64(t *testing.T) {
	v, ok := decodeNaturalToken64([]byte{0x00}, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(1), v)

	v, ok = decodeNaturalToken64([]byte{0xFF}, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(256), v)

	v, ok = decodeNaturalToken64([]byte{0x00, 0x00}, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(0x0101), v)

	_, ok = decodeNaturalToken64(nil, 0)
	assert.False(t, ok)

	_, ok = decodeNaturalToken64(make([]byte, 9), 0)
	assert.False(t, ok)

	_, ok = decodeNaturalToken64([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 1)
	assert.False(t, ok, "biased value overflows uint64")
}

func TestDecodeNaturalToken32(t *testing.T) {
	v, ok := decodeNaturalToken32([]byte{0x00}, 23)
	require.True(t, ok)
	assert.Equal(t, uint32(24), v)

	_, ok = decodeNaturalToken32(make([]byte, 5), 0)
	assert.False(t, ok, "payload longer than 4 bytes")

	_, ok = decodeNaturalToken32([]byte{0xFF, 0xFF, 0xFF, 0xFF}, 0)
	assert.False(t, ok, "does not fit in 32 bits")
}

func TestDecodeNaturalToken16(t *testing.T) {
	v, ok := decodeNaturalToken16([]byte{0x00}, 23)
	require.True(t, ok)
	assert.Equal(t, uint16(24), v)

	_, ok = decodeNaturalToken16([]byte{0xFE, 0xFE}, 1)
	assert.False(t, ok, "32-bit result does not fit in 16 bits")
}

func TestEncodeNaturalTokenZero(t *testing.T) {
	buf := make([]byte, 8)
	n := encodeNaturalToken(0, buf)
	assert.Equal(t, 0, n)
}

func TestEncodeNaturalTokenRoundTrip(t *testing.T) {
	values := []uint64{1, 2, 255, 256, 257, 0x10000, 0xFFFFFFFF, 0xFFFFFFFFFFFFFFFF}
	for _, v := range values {
		buf := make([]byte, 8)
		n := encodeNaturalToken(v, buf)
		require.Greater(t, n, 0)
		decoded, ok := decodeNaturalToken64(buf[:n], 0)
		require.True(t, ok)
		assert.Equal(t, v, decoded, "round trip of %d", v)
	}
}

func TestEncodeNaturalToken32And16RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	n := EncodeNaturalToken32(0xFFFFFFFF, buf)
	require.Greater(t, n, 0)
	v, ok := decodeNaturalToken32(buf[:n], 0)
	require.True(t, ok)
	assert.Equal(t, uint32(0xFFFFFFFF), v)

	n = EncodeNaturalToken16(0xFFFF, buf)
	require.Greater(t, n, 0)
	v16, ok := decodeNaturalToken16(buf[:n], 0)
	require.True(t, ok)
	assert.Equal(t, uint16(0xFFFF), v16)

	n = EncodeNaturalToken64(12345, buf)
	require.Greater(t, n, 0)
	v64, ok := decodeNaturalToken64(buf[:n], 0)
	require.True(t, ok)
	assert.Equal(t, uint64(12345), v64)
}

func TestEncodeNaturalTokenBufferTooSmall(t *testing.T) {
	buf := make([]byte, 1)
	n := encodeNaturalToken(0x10000, buf)
	assert.Equal(t, 0, n)
}

func FuzzNaturalTokenRoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(0xFFFFFFFF))
	f.Add(uint64(0xFFFFFFFFFFFFFFFF))
	f.Fuzz(func(t *testing.T, v uint64) {
		buf := make([]byte, 8)
		n := encodeNaturalToken(v, buf)
		if v == 0 {
			if n != 0 {
				t.Fatalf("expected 0 bytes for v=0, got %d", n)
			}
			return
		}
		decoded, ok := decodeNaturalToken64(buf[:n], 0)
		if !ok {
			t.Fatalf("decode failed for v=%d, n=%d", v, n)
		}
		if decoded != v {
			t.Fatalf("round trip mismatch: v=%d decoded=%d", v, decoded)
		}
	})
}
