// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz32 authors

/*
Package lz32 implements a block compressor and decompressor built around a
reversed token stream: literals grow forward from the start of a block while
32-bit match tokens grow backward from its end, meeting in a gap that is
either raw tail bytes or zero padding. Every compressed block is a multiple
of 16 bytes; its tokens are read backward starting from the block's last 4
bytes, and the stream ends at a single zero token.

Two compression engines share the same wire format. The balanced engine
(level <= 3) uses one hash table; the high-ratio engine (level >= 4) adds a
chain table of 16-bit back-distances to search further back in the window
for a longer match.

# Compress

	out, err := lz32.Compress(data, nil)                         // level 1, balanced
	out, err := lz32.Compress(data, &lz32.CompressOptions{Level: 9}) // high-ratio

Block-level entry points are also available for callers that manage their
own buffers:

	dstLen, err := lz32.CompressBound(len(data))
	dst := make([]byte, dstLen)
	consumed, produced, err := lz32.CompressHigh(data, dst)

# Decompress

	out, err := lz32.Decompress(compressed, rawLen)

DecompressSafe validates every token before trusting it and never reads or
writes outside either buffer, even on corrupt input. DecompressFast skips
that validation for already-trusted data.

# Framing

FrameEncode/FrameDecode wrap a compressed block with a small header and
footer (magic number, block length, raw length, integrity checksum) so a
reader can recover both lengths and verify the payload without external
metadata.
*/
package lz32
