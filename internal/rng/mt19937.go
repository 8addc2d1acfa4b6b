package rng

import "math"

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

// MT19937Source is the 32-bit Mersenne Twister. Its Uint32 stream matches
// std::mt19937 for the same seed.
type MT19937Source struct {
	mt  [mtN]uint32
	mti int
}

// NewMT19937 creates a Mersenne Twister seeded with seed.
func NewMT19937(seed uint32) *MT19937Source {
	mt := &MT19937Source{}
	mt.Seed(seed)
	return mt
}

// Seed reinitializes the generator state.
func (mt *MT19937Source) Seed(seed uint32) {
	mt.mt[0] = seed
	for i := 1; i < mtN; i++ {
		mt.mt[i] = 1812433253*(mt.mt[i-1]^(mt.mt[i-1]>>30)) + uint32(i)
	}
	mt.mti = mtN
}

// Uint32 returns the next tempered 32-bit output.
func (mt *MT19937Source) Uint32() uint32 {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	if mt.mti >= mtN {
		var kk int
		for kk = 0; kk < mtN-mtM; kk++ {
			y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
			mt.mt[kk] = mt.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < mtN-1; kk++ {
			y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
			mt.mt[kk] = mt.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
		}
		y = (mt.mt[mtN-1] & upperMask) | (mt.mt[0] & lowerMask)
		mt.mt[mtN-1] = mt.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
		mt.mti = 0
	}

	y = mt.mt[mt.mti]
	mt.mti++

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Float64 returns a float in [0, 1) with 53 bits of precision built from
// two consecutive outputs.
func (mt *MT19937Source) Float64() float64 {
	a := mt.Uint32() >> 5
	b := mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// IntN returns a uniform integer in [0, n) using multiply-and-reject, so
// there is no modulo bias.
func (mt *MT19937Source) IntN(n int) int {
	if n <= 0 || uint64(n) > math.MaxUint32 {
		panic("rng: invalid argument to IntN")
	}
	bound := uint32(n)
	m := uint64(mt.Uint32()) * uint64(bound)
	low := uint32(m)
	if low < bound {
		thresh := -bound % bound
		for low < thresh {
			m = uint64(mt.Uint32()) * uint64(bound)
			low = uint32(m)
		}
	}
	return int(m >> 32)
}
