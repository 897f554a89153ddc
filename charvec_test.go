package mueddi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeCharVec(t *testing.T) {
	cv := MakeCharVec([]rune("banana"), 'a')
	require.Equal(t, 6, cv.size)
	// a appears at indices 1, 3, 5
	require.Equal(t, uint32(1<<1|1<<3|1<<5), cv.bits)
	require.False(t, cv.HasFirstBitSet())
}

func TestMakeCharVecEmptyWindow(t *testing.T) {
	cv := MakeCharVec(nil, 'x')
	require.True(t, cv.IsEmpty())
}

func TestSubrange(t *testing.T) {
	cv := MakeCharVec([]rune("aabaa"), 'a')
	// bits: positions 0,1,3,4 set -> 0b11011
	require.Equal(t, uint32(0b11011), cv.bits)

	sub := cv.Subrange(3, 2) // window starting at index 1, width 3 -> bits 1,2,3 = 1,0,1
	require.Equal(t, 3, sub.size)
	require.Equal(t, uint32(0b101), sub.bits)
}

func TestIndexOfSetBit(t *testing.T) {
	cv := CharVec{bits: 0b1000, size: 4}
	require.Equal(t, 4, cv.IndexOfSetBit())
}

func TestIndexOfSetBitPanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() {
		CharVec{bits: 0, size: 4}.IndexOfSetBit()
	})
}
