// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz32 authors

package lz32

// engineFunc is the shape shared by compressBalanced and compressHigh.
type engineFunc func(src, dst []byte) (consumed, headLen, tailLen int)

// CompressBound returns the destination capacity guaranteed to hold any
// compression of an input of length srcLen, including the worst case where
// the block falls back to a raw copy plus alignment padding.
func CompressBound(srcLen int) (int, error) {
	if srcLen < rawSizeMin {
		return 0, ErrInvalidInput
	}
	if srcLen > rawSizeMax {
		srcLen = rawSizeMax
	}
	return ceil16(srcLen + 4), nil
}

// CompressFast compresses src into dst using the balanced engine. dst's
// capacity (rounded down to a multiple of 16) is the destination budget;
// it should be at least as large as CompressBound(len(src)) to guarantee
// the whole input is consumed. Returns the number of source bytes consumed
// and the number of destination bytes produced.
func CompressFast(src, dst []byte) (consumed, produced int, err error) {
	return compressPublic(src, dst, compressBalanced)
}

// CompressHigh is CompressFast using the high-ratio engine.
func CompressHigh(src, dst []byte) (consumed, produced int, err error) {
	return compressPublic(src, dst, compressHigh)
}

func compressPublic(src, dst []byte, engine engineFunc) (int, int, error) {
	if src == nil || dst == nil {
		return 0, 0, ErrInvalidInput
	}

	scap := len(src)
	if scap < rawSizeMin {
		return 0, 0, ErrInvalidInput
	}
	if scap > rawSizeMax {
		scap = rawSizeMax
	}
	src = src[:scap]

	dcap := floor16(len(dst))
	if dcap > blockSizeMax {
		dcap = floor16(blockSizeMax)
	}
	if dcap < blockSizeMin {
		return 0, 0, ErrInvalidInput
	}
	dst = dst[:dcap]

	if scap < rawSizeProcMin || dcap < blockSizeProcMin {
		// Too little data for a match search to be worth running: go
		// straight to the raw-copy fallback below without ever running an
		// engine (which would otherwise leave headLen/tailLen with no
		// token region at all, not even a terminator, to gap-fill around).
		return rawFallback(src, dst, scap, dcap)
	}

	consumed, headLen, tailLen := engine(src, dst)

	plen := dcap - (headLen + tailLen)
	tail := scap - consumed
	if tail > plen {
		tail = plen
	}
	if tail > 0 {
		copyExact(dst[headLen:], src[consumed:], tail)
		plen -= tail
	}

	mlen := floor16(plen)
	plen -= mlen
	if plen > 0 {
		clear(dst[headLen+tail : headLen+tail+plen])
	}
	if tailLen > 0 {
		copyExact(dst[headLen+tail+plen:], dst[dcap-tailLen:], tailLen)
	}

	slen := consumed + tail
	dlen := headLen + tail + plen + tailLen

	if slen+4 >= dlen {
		return slen, dlen, nil
	}

	// Compression didn't earn its keep: fall back to a raw copy.
	return rawFallback(src, dst, scap, dcap)
}

// rawFallback overwrites dst with an all-literal block: as much of src as
// fits, 16-byte-aligned, terminated by a 4-byte zero word (a token region
// containing only the sentinel, i.e. no matches at all).
func rawFallback(src, dst []byte, scap, dcap int) (int, int, error) {
	slen := scap
	if slen > dcap-4 {
		slen = dcap - 4
	}
	copyExact(dst, src, slen)
	dlen := ceil16(slen + 4)
	clear(dst[slen:dlen])
	return slen, dlen, nil
}

// Compress allocates a destination buffer sized by CompressBound and
// compresses all of src into it using the engine opts.Level selects. opts
// may be nil (default level 1, balanced engine).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	bound, err := CompressBound(len(src))
	if err != nil {
		return nil, err
	}

	dst := make([]byte, bound)
	consumed, produced, err := compressPublic(src, dst, engineForLevel(opts.Level))
	if err != nil {
		return nil, err
	}
	if consumed != len(src) {
		// CompressBound's budget always lets the raw-fallback path absorb
		// whatever the engine didn't consume; reaching here means the
		// budget math above and this call disagree.
		return nil, ErrInternal
	}

	return dst[:produced], nil
}
