package codec

// runningIndex is the 64-slot pixel cache shared by the encoder and
// decoder, keyed by Pixel.Hash. It plays the same role QOI's "running
// array" plays in the reference implementation, and the same role
// ColorCache plays for VP8L lossless in the teacher codec: a small
// hash-addressed table of recently seen colors, checked before falling
// back to an explicit delta or literal.
//
// Unlike VP8L's ColorCache (which hashes the full 32-bit ARGB value
// with a multiplicative constant and only ever needs Insert/Contains),
// the QOI index is addressed by Pixel.Hash directly and is read at an
// opcode-chosen slot during INDEX decoding, so both Set-by-hash and
// Get-by-slot are needed.
type runningIndex struct {
	slots [hashSize]Pixel
}

// newRunningIndex returns an index with all 64 slots at the zero
// pixel (r=g=b=a=0) — not DefaultPixel, per the format's documented
// initial-alpha asymmetry.
func newRunningIndex() *runningIndex {
	return &runningIndex{}
}

// at returns the pixel stored at slot.
func (idx *runningIndex) at(slot uint8) Pixel {
	return idx.slots[slot]
}

// observe stores p at its own hash slot.
func (idx *runningIndex) observe(p Pixel) {
	idx.slots[p.Hash()] = p
}

// matches reports whether p is already the pixel stored at its hash
// slot, i.e. whether an INDEX opcode can stand in for p.
func (idx *runningIndex) matches(p Pixel) bool {
	return idx.slots[p.Hash()] == p
}
