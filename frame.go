// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz32 authors

package lz32

import (
	"github.com/cespare/xxhash/v2"
)

// FrameEncode compresses src and wraps it with an 8-byte header (magic
// number, total framed length) and an 8-byte footer (raw length, a 32-bit
// integrity checksum), so a reader can recover both lengths and verify the
// payload without any external metadata. opts may be nil (default level 1).
//
// This wrapper corresponds to the lz32d_compress_fast/lz32d_compress_high
// boundary: the source leaves their bodies unimplemented and only fixes the
// header/footer layout, which this fills in with a working implementation.
func FrameEncode(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	bound, err := CompressBound(len(src))
	if err != nil {
		return nil, err
	}

	buf := make([]byte, frameHeaderSize+bound+frameFooterSize)
	consumed, produced, err := compressPublic(src, buf[frameHeaderSize:frameHeaderSize+bound], engineForLevel(opts.Level))
	if err != nil {
		return nil, err
	}
	if consumed != len(src) {
		return nil, ErrInternal
	}

	total := frameHeaderSize + produced + frameFooterSize
	out := buf[:total]

	writeLE32(out[0:4], frameMagic)
	writeLE32(out[4:8], uint32(total))

	footer := out[total-frameFooterSize:]
	writeLE32(footer[0:4], uint32(len(src)))
	writeLE32(footer[4:8], uint32(xxhash.Sum64(src)))

	return out, nil
}

// FrameDecodeSize reads only the header and footer of a framed block,
// returning the total framed length and the raw (decompressed) length
// without touching the compressed payload in between. Mirrors
// lz32d_decompress_size exactly.
func FrameDecodeSize(framed []byte) (blockLen, rawLen int, err error) {
	if len(framed) < frameHeaderSize+frameFooterSize {
		return 0, 0, ErrInvalidInput
	}

	if readLE32(framed[0:4]) != frameMagic {
		return 0, 0, ErrInvalidInput
	}

	blen := int(readLE32(framed[4:8]))
	if blen < frameHeaderSize+frameFooterSize+blockSizeMin || blen > blockSizeMax || blen%16 != 0 {
		return 0, 0, ErrInvalidInput
	}
	if blen > len(framed) {
		return 0, 0, ErrInvalidInput
	}

	rlen := int(readLE32(framed[blen-frameFooterSize : blen-frameFooterSize+4]))
	if rlen < rawSizeMin || rlen > rawSizeMax {
		return 0, 0, ErrInvalidInput
	}

	return blen, rlen, nil
}

// FrameDecode validates and decompresses a block produced by FrameEncode,
// including recomputing the integrity checksum over the recovered payload.
// A checksum mismatch is reported as ErrCorruptBlock even though the inner
// block itself decoded without error.
func FrameDecode(framed []byte) ([]byte, error) {
	blen, rawLen, err := FrameDecodeSize(framed)
	if err != nil {
		return nil, err
	}
	framed = framed[:blen]

	inner := framed[frameHeaderSize : blen-frameFooterSize]
	out, err := Decompress(inner, rawLen)
	if err != nil {
		return nil, err
	}

	wantSum := readLE32(framed[blen-4 : blen])
	if uint32(xxhash.Sum64(out)) != wantSum {
		return nil, wrapCorrupt(ErrChecksumMismatch)
	}

	return out, nil
}
