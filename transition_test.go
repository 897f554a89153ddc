package mueddi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These exercise the elementary transition enumeration from spec.md §4.4
// directly, the "source of truth" the higher-level property tests build
// on.

func TestDeltaCaseIEmptyVector(t *testing.T) {
	p := newRelPos(2, 1)
	result := deltaCaseI(p, CharVec{})
	require.Equal(t, []RelPos{newRelPos(2, 2)}, result.positions)
}

func TestDeltaCaseISingleBitMatch(t *testing.T) {
	p := newRelPos(2, 1)
	cv := CharVec{bits: 1, size: 1}
	result := deltaCaseI(p, cv)
	require.Equal(t, []RelPos{newRelPos(3, 1)}, result.positions)
}

func TestDeltaCaseISingleBitMismatch(t *testing.T) {
	p := newRelPos(2, 1)
	cv := CharVec{bits: 0, size: 1}
	result := deltaCaseI(p, cv)
	require.ElementsMatch(t, []RelPos{newRelPos(2, 2), newRelPos(3, 2)}, result.positions)
}

func TestDeltaCaseIWideMatch(t *testing.T) {
	p := newRelPos(0, 0)
	cv := CharVec{bits: 0b101, size: 3}
	result := deltaCaseI(p, cv)
	require.Equal(t, []RelPos{newRelPos(1, 0)}, result.positions)
}

func TestDeltaCaseIWideMismatchWithJump(t *testing.T) {
	p := newRelPos(0, 0)
	cv := CharVec{bits: 0b100, size: 3} // lowest set bit at index 3 (1-based)
	result := deltaCaseI(p, cv)
	require.ElementsMatch(t,
		[]RelPos{newRelPos(0, 1), newRelPos(1, 1), newRelPos(3, 2)},
		result.positions)
}

func TestDeltaCaseIWideMismatchNoBitsSet(t *testing.T) {
	p := newRelPos(0, 0)
	cv := CharVec{bits: 0, size: 3}
	result := deltaCaseI(p, cv)
	require.ElementsMatch(t, []RelPos{newRelPos(0, 1), newRelPos(1, 1)}, result.positions)
}

func TestDeltaCaseIIMatch(t *testing.T) {
	p := newRelPos(4, 3)
	result := deltaCaseII(p, CharVec{bits: 1, size: 1})
	require.Equal(t, []RelPos{newRelPos(5, 3)}, result.positions)
}

func TestDeltaCaseIINoMatchYieldsEmpty(t *testing.T) {
	p := newRelPos(4, 3)
	result := deltaCaseII(p, CharVec{bits: 0, size: 1})
	require.True(t, result.isEmpty())
}

func TestRelPosWindowLen(t *testing.T) {
	// rl = min(n - edit + 1, w - i)
	require.Equal(t, 3, relPosWindowLen(2 /*n*/, 1 /*i*/, 10 /*w*/, 0))
	require.Equal(t, 2, relPosWindowLen(15, 1, 10, 14))
}
