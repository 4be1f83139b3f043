package worm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintCodecRoundTrip(t *testing.T) {
	for _, size := range []int{1, 2, 3, 4, 8} {
		for _, le := range []bool{false, true} {
			c := NewUintCodec(size, le)
			max := uint64(1)<<(8*uint(size)) - 1
			if size == 8 {
				max = ^uint64(0)
			}
			for _, v := range []uint64{0, 1, max} {
				buf := make([]byte, size)
				c.Write(buf, v)
				require.Equal(t, v, c.Read(buf), "size=%d littleEndian=%v value=%d", size, le, v)
			}
		}
	}
}

func TestUintCodecID(t *testing.T) {
	require.Equal(t, "AKAMAI-UINT-BE-2", NewUintCodec(2, false).ID())
	require.Equal(t, "AKAMAI-UINT-LE-8", NewUintCodec(8, true).ID())
}

func TestMinBytesForValue(t *testing.T) {
	require.Equal(t, 1, MinBytesForValue(0))
	require.Equal(t, 1, MinBytesForValue(255))
	require.Equal(t, 2, MinBytesForValue(256))
	require.Equal(t, 2, MinBytesForValue(65535))
	require.Equal(t, 3, MinBytesForValue(65536))
	require.Equal(t, 8, MinBytesForValue(^uint64(0)))
}
