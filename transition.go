package mueddi

// relPosWindowLen computes rl = min(n - edit + 1, w - i) from spec.md §4.4,
// the width of the characteristic-vector window a single position needs to
// transition. i is the absolute query index the position's offset has
// already been added to; w is the query length.
func relPosWindowLen(n, i, w int, edit int16) int {
	if w < i || edit < 0 {
		panic("mueddi: relPosWindowLen called with an invalid base/edit pair")
	}
	rl := n - int(edit) + 1
	if w-i < rl {
		rl = w - i
	}
	return rl
}

// deltaCaseI is elementary transition Case I (spec.md §4.4): p.edit < n,
// so an edit can still be absorbed.
func deltaCaseI(p RelPos, cv CharVec) *reducedUnion {
	result := newReducedUnion()

	if cv.IsEmpty() {
		result.addUnchecked(RelPos{offset: p.offset, edit: p.edit + 1})
		return result
	}

	if cv.size == 1 {
		if cv.HasFirstBitSet() {
			result.addUnchecked(RelPos{offset: p.offset + 1, edit: p.edit})
		} else {
			result.addUnchecked(RelPos{offset: p.offset, edit: p.edit + 1})
			result.addUnchecked(RelPos{offset: p.offset + 1, edit: p.edit + 1})
		}
		return result
	}

	if cv.HasFirstBitSet() {
		result.addUnchecked(RelPos{offset: p.offset + 1, edit: p.edit})
		return result
	}

	result.addUnchecked(RelPos{offset: p.offset, edit: p.edit + 1})
	result.addUnchecked(RelPos{offset: p.offset + 1, edit: p.edit + 1})
	if cv.bits != 0 {
		j := cv.IndexOfSetBit()
		result.addUnchecked(RelPos{offset: p.offset + int16(j), edit: p.edit + int16(j) - 1})
	}
	return result
}

// deltaCaseII is elementary transition Case II: p.edit == n, no edit
// budget left, so only an exact match can continue.
func deltaCaseII(p RelPos, cv CharVec) *reducedUnion {
	result := newReducedUnion()
	if cv.HasFirstBitSet() {
		result.addUnchecked(RelPos{offset: p.offset + 1, edit: p.edit})
	}
	return result
}

// elemDelta computes delta(p, chi) for a single position, slicing the
// full-window characteristic vector down to the position's own relevant
// sub-window first (spec.md §4.5).
func elemDelta(n, i, w int, p RelPos, full CharVec) *reducedUnion {
	rl := relPosWindowLen(n, i+int(p.offset), w, p.edit)

	cv := full
	if rl < full.size || p.offset > 0 {
		cv = full.Subrange(rl, 1+int(p.offset))
	}

	if int(p.edit) < n {
		return deltaCaseI(p, cv)
	}
	return deltaCaseII(p, cv)
}
