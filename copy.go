// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz32 authors

package lz32

// ceil16 rounds n up to the next multiple of 16; floor16 rounds down.
func ceil16(n int) int  { return floor16(n + 15) }
func floor16(n int) int { return n &^ 15 }

// copyCeil16 copies ceil16(n) bytes from src to dst. The extra bytes past n
// (up to 15 of them) are read and written but never meaningfully observed:
// callers only use this where the block's emission guard already reserved
// that slack on both sides (see compress_balanced.go/compress_high.go).
func copyCeil16(dst, src []byte, n int) {
	m := ceil16(n)
	copy(dst[:m], src[:m])
}

// copyExact copies exactly n bytes from src to dst.
func copyExact(dst, src []byte, n int) {
	copy(dst[:n], src[:n])
}

// copyBackRef copies length bytes from dst[outputPos-dist:] to
// dst[outputPos:]. When dist < length the source and destination ranges
// overlap and the copy must expand forward: seed one dist-sized chunk, then
// repeatedly double the already-written region until length bytes have been
// produced. Used by the safe decompressor, which must never over-read past
// either buffer's true bounds the way the unsafe wildcopy path may.
func copyBackRef(dst []byte, outputPos, dist, length int) {
	mPos := outputPos - dist
	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return
	}

	copy(dst[outputPos:outputPos+dist], dst[mPos:outputPos])
	copied := dist
	for copied < length {
		n := copy(dst[outputPos+copied:outputPos+length], dst[outputPos:outputPos+copied])
		copied += n
	}
}

// fillUint32 sets every element of s to v using doubling copies, which is
// faster than a byte-by-byte loop for the table sizes used here.
func fillUint32(s []uint32, v uint32) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for i := 1; i < len(s); i *= 2 {
		copy(s[i:], s[:i])
	}
}

// fillUint16 is fillUint32 for []uint16.
func fillUint16(s []uint16, v uint16) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for i := 1; i < len(s); i *= 2 {
		copy(s[i:], s[:i])
	}
}
