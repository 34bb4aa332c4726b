// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz32 authors

package lz32

import (
	"encoding/binary"
	"math/bits"
)

// readLE16/readLE32/readLE64 read unaligned little-endian integers. Go's
// encoding/binary always interprets bytes in the named order regardless of
// host architecture, so there is no separate big-endian code path to keep
// in sync — unlike a C implementation built on native-endian pointer casts.
func readLE16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func readLE32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func readLE64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func writeLE32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// countCommonBytes returns the number of low-order zero bytes in xdif, i.e.
// the number of matching bytes at the front of the two little-endian words
// that were XORed together to produce it.
func countCommonBytes(xdif uint64) int {
	return bits.TrailingZeros64(xdif) >> 3
}

// countMatch compares buf[mPos:] against buf[cPos:] and returns the number
// of leading equal bytes, capped at 255 and at cPos's distance to limPos.
// It compares 8 bytes at a time via XOR + countCommonBytes, falling back to
// narrower comparisons for the tail.
func countMatch(buf []byte, mPos, cPos, limPos int) int {
	limit := limPos - cPos
	if limit > 255 {
		limit = 255
	}

	n := 0
	for limit > 7 {
		xdif := readLE64(buf[mPos:]) ^ readLE64(buf[cPos:])
		if xdif != 0 {
			return n + countCommonBytes(xdif)
		}
		mPos += 8
		cPos += 8
		limit -= 8
		n += 8
	}

	if limit > 3 && readLE32Eq(buf, mPos, cPos) {
		mPos += 4
		cPos += 4
		limit -= 4
		n += 4
	}

	if limit > 1 && readLE16(buf[mPos:]) == readLE16(buf[cPos:]) {
		mPos += 2
		cPos += 2
		limit -= 2
		n += 2
	}

	if limit != 0 && buf[mPos] == buf[cPos] {
		n++
	}

	return n
}

func readLE32Eq(buf []byte, a, b int) bool {
	return binary.LittleEndian.Uint32(buf[a:]) == binary.LittleEndian.Uint32(buf[b:])
}
