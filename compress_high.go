// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz32 authors

package lz32

// compressHigh implements the high-ratio engine (spec'd compression level
// 4-9): a hash table of the most recent position per 40-bit hash, plus a
// chain table keyed by window-relative slot that links each position back
// to the previous one that hashed to the same bucket, letting the search walk further
// back in the window than a single hash-table hit would reach. Signature
// and return values mirror compressBalanced.
func compressHigh(src, dst []byte) (consumed, headLen, tailLen int) {
	t := acquireHighTables()
	defer releaseHighTables(t)
	htb := t.htb[:]
	ctb := t.ctb[:]

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
		idx := hash40(seq, hashLogHigh)
		prev := htb[idx]
		htb[idx] = uint32(cur)

		ctbIdx := cur & (windowLimit - 1)
		ctbNext := ctbNoMatch

		matchLen := 0
		matchOff := 0
		if prev != htbNoMatch {
			mtcPos := int(prev)
			off := cur - mtcPos
			if off < windowLimit {
				ctbNext = uint16(off)
			}

			for off < windowLimit {
				l := countMatch(src, mtcPos, cur, inpLim)
				if l > matchLen {
					matchLen = l
					matchOff = off
				}

				d := ctb[mtcPos&(windowLimit-1)]
				if d == ctbNoMatch {
					break
				}
				mtcPos -= int(d)
				off += int(d)
			}
		}
		ctb[ctbIdx] = ctbNext

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
			for updCnt > 0 {
				cur++
				seq = readLE64(src[cur:])
				idx = hash40(seq, hashLogHigh)
				prevAtPos := htb[idx]
				htb[idx] = uint32(cur)

				nextAtPos := ctbNoMatch
				if prevAtPos != htbNoMatch {
					off := cur - int(prevAtPos)
					if off < windowLimit {
						nextAtPos = uint16(off)
					}
				}
				ctb[cur&(windowLimit-1)] = nextAtPos

				updCnt--
			}
		}

		cur++
	}

	return inpLit, outLit, outEnd - outTkn
}
