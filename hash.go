// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz32 authors

package lz32

// hash40 hashes the low 40 bits of seq into a table index width bits wide.
// The multiplier is the hash40Prime shifted left 12 bits; multiplying a
// 64-bit value by it and shifting right spreads the low 40 input bits
// across the high bits of the product, which are then taken as the index.
func hash40(seq uint64, width uint) int {
	h := seq << 12
	h *= hash40Multiplier
	h >>= 64 - width
	return int(h)
}
