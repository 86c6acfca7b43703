package curve3

// Morton (Z-order) codes interleave the bits of three coordinates, with bit
// 3i+0 of the code taken from bit i of x, bit 3i+1 from y and bit 3i+2 from
// z. Sorting by code yields a space-filling curve that keeps nearby
// coordinates in nearby keys.
//
// The default encoders and decoders are table driven, processing the
// coordinates in byte-sized chunks. The Magic variants compute the identical
// mapping with bit-mixing arithmetic; they exist for benchmarking and as a
// substitute on targets where the tables thrash the cache.
//
// None of the functions validate their input: coordinates beyond the
// documented bit width truncate. Callers clamp beforehand.

var (
	// mortonEncTable spreads the bits of a byte over every third bit.
	// mortonDecTable compacts bits 0, 3 and 6 of a 9-bit chunk; the bits of
	// the other two axes are recovered by pre-shifting the chunk.
	mortonEncTable [256]uint32
	mortonDecTable [512]uint8
)

func init() {
	for i := range mortonEncTable {
		mortonEncTable[i] = expand3(uint32(i))
	}
	for i := range mortonDecTable {
		mortonDecTable[i] = uint8(compact3(uint32(i)))
	}
}

// MortonEncode32 encodes three 10-bit coordinates into a 30-bit Morton code.
func MortonEncode32(x, y, z uint32) uint32 {
	hi := mortonEncTable[(x>>8)&0xff] |
		mortonEncTable[(y>>8)&0xff]<<1 |
		mortonEncTable[(z>>8)&0xff]<<2
	lo := mortonEncTable[x&0xff] |
		mortonEncTable[y&0xff]<<1 |
		mortonEncTable[z&0xff]<<2
	return hi<<24 | lo
}

// MortonDecode32 decodes a 30-bit Morton code back into its three 10-bit
// coordinates. It is the exact inverse of [MortonEncode32] over the valid
// domain.
func MortonDecode32(code uint32) (x, y, z uint32) {
	for i := uint(0); i < 4; i++ {
		chunk := (code >> (9 * i)) & 0x1ff
		x |= uint32(mortonDecTable[chunk]) << (3 * i)
		y |= uint32(mortonDecTable[chunk>>1]) << (3 * i)
		z |= uint32(mortonDecTable[chunk>>2]) << (3 * i)
	}
	return x, y, z
}

// MortonEncode64 encodes three 21-bit coordinates into a 63-bit Morton code.
func MortonEncode64(x, y, z uint32) uint64 {
	var code uint64
	for i := 3; i > 0; i-- {
		shift := uint(i-1) * 8
		code = code<<24 |
			uint64(mortonEncTable[(z>>shift)&0xff])<<2 |
			uint64(mortonEncTable[(y>>shift)&0xff])<<1 |
			uint64(mortonEncTable[(x>>shift)&0xff])
	}
	return code
}

// MortonDecode64 decodes a 63-bit Morton code back into its three 21-bit
// coordinates. It is the exact inverse of [MortonEncode64] over the valid
// domain.
func MortonDecode64(code uint64) (x, y, z uint32) {
	for i := uint(0); i < 7; i++ {
		chunk := uint32(code>>(9*i)) & 0x1ff
		x |= uint32(mortonDecTable[chunk]) << (3 * i)
		y |= uint32(mortonDecTable[chunk>>1]) << (3 * i)
		z |= uint32(mortonDecTable[chunk>>2]) << (3 * i)
	}
	return x, y, z
}

// MortonEncode32Magic is a bit-mixing implementation of [MortonEncode32].
func MortonEncode32Magic(x, y, z uint32) uint32 {
	return expand3(x) | expand3(y)<<1 | expand3(z)<<2
}

// MortonDecode32Magic is a bit-mixing implementation of [MortonDecode32].
func MortonDecode32Magic(code uint32) (x, y, z uint32) {
	return compact3(code), compact3(code >> 1), compact3(code >> 2)
}

// MortonEncode64Magic is a bit-mixing implementation of [MortonEncode64].
func MortonEncode64Magic(x, y, z uint32) uint64 {
	return part1By2(uint64(x)) | part1By2(uint64(y))<<1 | part1By2(uint64(z))<<2
}

// MortonDecode64Magic is a bit-mixing implementation of [MortonDecode64].
func MortonDecode64Magic(code uint64) (x, y, z uint32) {
	return uint32(compact1By2(code)),
		uint32(compact1By2(code >> 1)),
		uint32(compact1By2(code >> 2))
}

// expand3 spreads the low 10 bits of v over every third bit.
func expand3(v uint32) uint32 {
	v = (v | v<<16) & 0x030000FF
	v = (v | v<<8) & 0x0300F00F
	v = (v | v<<4) & 0x030C30C3
	v = (v | v<<2) & 0x09249249
	return v
}

// compact3 is the inverse of expand3, gathering every third bit.
func compact3(v uint32) uint32 {
	v &= 0x09249249
	v = (v ^ v>>2) & 0x030C30C3
	v = (v ^ v>>4) & 0x0300F00F
	v = (v ^ v>>8) & 0x030000FF
	v = (v ^ v>>16) & 0x000003FF
	return v
}

// part1By2 spreads the low 21 bits of v over every third bit.
func part1By2(v uint64) uint64 {
	v &= 0x1fffff
	v = (v | v<<32) & 0x1f00000000ffff
	v = (v | v<<16) & 0x1f0000ff0000ff
	v = (v | v<<8) & 0x100f00f00f00f00f
	v = (v | v<<4) & 0x10c30c30c30c30c3
	v = (v | v<<2) & 0x1249249249249249
	return v
}

// compact1By2 is the inverse of part1By2, gathering every third bit.
func compact1By2(v uint64) uint64 {
	v &= 0x1249249249249249
	v = (v ^ v>>2) & 0x10c30c30c30c30c3
	v = (v ^ v>>4) & 0x100f00f00f00f00f
	v = (v ^ v>>8) & 0x1f0000ff0000ff
	v = (v ^ v>>16) & 0x1f00000000ffff
	v = (v ^ v>>32) & 0x1fffff
	return v
}
