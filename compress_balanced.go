// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz32 authors

package lz32

// compressBalanced implements the balanced engine (spec'd compression
// level 1-3): a single hash table of the most recent position for each
// 40-bit hash, searched one candidate deep. consumed is how many bytes of
// src were encoded; headLen/tailLen are the sizes of the literal region
// (growing from dst[0]) and the token region (growing backward from
// dst[len(dst)]) that were written.
func compressBalanced(src, dst []byte) (consumed, headLen, tailLen int) {
	t := acquireBalancedTables()
	defer releaseBalancedTables(t)
	htb := t.htb[:]

	inpEnd := len(src)
	inpLim := inpEnd - 15
	inpLit := 0
	cur := 0

	outEnd := len(dst)
	outLit := 0
	outTkn := outEnd

	outTkn -= 4
	writeLE32(dst[outTkn:], 0)

	for cur < inpLim {
		litLen := cur - inpLit
		if outLit+litLen+15 > outTkn {
			break
		}

		// A literal run this long must be flushed as a forced, maximal
		// literal token before it can grow any further: the token's LL
		// field is a single byte, and a repeated byte at its logical cap
		// here means the carry token copies 256 literal bytes but only
		// retires 255 of them, leaving 1 for the next token.
		if litLen == 256 {
			copyExact(dst[outLit:], src[inpLit:], 256)
			inpLit += 255
			outLit += 255
			writeLE32(dst[outTkn:], encodeToken(255, 0, 0))
			outTkn -= 4
			writeLE32(dst[outTkn:], 0)
			litLen -= 255
		}

		seq := readLE64(src[cur:])
		idx := hash40(seq, hashLogBalanced)
		prev := htb[idx]
		htb[idx] = uint32(cur)

		matchLen := 0
		matchOff := 0
		if prev != htbNoMatch {
			off := cur - int(prev)
			if off < windowLimit {
				matchLen = countMatch(src, int(prev), cur, inpLim)
				matchOff = off
			}
		}

		if matchLen > minMatchLen {
			if outLit+litLen+matchLen+15 > outTkn {
				break
			}

			copyCeil16(dst[outLit:], src[inpLit:], litLen)
			inpLit += litLen
			outLit += litLen
			inpLit += matchLen

			writeLE32(dst[outTkn:], encodeToken(litLen, matchLen, matchOff))
			outTkn -= 4
			writeLE32(dst[outTkn:], 0)

			updCnt := matchLen - 1
			for updCnt > 3 {
				base := cur
				seq = readLE64(src[base+1:])
				cur += 4

				i0 := hash40(seq, hashLogBalanced)
				seq >>= 8
				i1 := hash40(seq, hashLogBalanced)
				seq >>= 8
				i2 := hash40(seq, hashLogBalanced)
				seq >>= 8
				i3 := hash40(seq, hashLogBalanced)

				htb[i0] = uint32(base + 1)
				htb[i1] = uint32(base + 2)
				htb[i2] = uint32(base + 3)
				htb[i3] = uint32(base + 4)

				updCnt -= 4
			}
			for updCnt > 0 {
				cur++
				seq = readLE64(src[cur:])
				htb[hash40(seq, hashLogBalanced)] = uint32(cur)
				updCnt--
			}
		}

		cur++
	}

	return inpLit, outLit, outEnd - outTkn
}
