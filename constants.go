// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz32 authors

package lz32

// Block and raw-length bounds. A raw input above rawSizeMax is truncated to
// it before compression; a destination above blockSizeMax is truncated too.
const (
	rawSizeMin = 1
	rawSizeMax = 1 << 30

	blockSizeMin = 16
	blockSizeMax = 1 << 30

	// Below these thresholds the compressor skips both engines and emits a
	// raw (possibly padded) block directly; a match search over that little
	// data isn't worth its own setup cost.
	rawSizeProcMin   = 1 << 8
	blockSizeProcMin = 1 << 6
)

// Compression levels. Anything <= levelHigh-1 selects the balanced engine;
// levelHigh and above selects the high-ratio engine.
const (
	levelMin  = 1
	levelMax  = 9
	levelHigh = 4
)

// Hash table sizes (entries, not bytes) for each engine, and the shared
// window limit both engines search within.
const (
	hashLogBalanced = 14 // 16384 entries
	hashLogHigh     = 15 // 32768 entries
	windowLog       = 16
	windowLimit     = 1 << windowLog // also the chain table's entry count
)

// Sentinel values stored in empty hash/chain table slots.
const (
	htbNoMatch uint32 = 0xFFFFFFFF
	ctbNoMatch uint16 = 0xFFFF
)

// minMatchLen is the shortest match worth emitting as a token instead of
// literal bytes; both engines require strictly more than this many bytes.
const minMatchLen = 4

// hash40Prime and hash40Multiplier parametrize hash40 (see hash.go).
const (
	hash40Prime      uint64 = 0xF78DBDB1EF
	hash40Multiplier uint64 = hash40Prime << 12
)

// offMap maps a match offset below 16 to the byte distance the read cursor
// must be repositioned to after the first unrolled 16-byte expansion step
// of a short-offset match copy. Index 0 is unreachable (offset 0 only ever
// occurs together with match length 0, which never reaches a match copy).
var offMap = [16]int{0, 16, 16, 18, 16, 20, 18, 21, 16, 18, 20, 22, 24, 26, 28, 30}

// frameMagic identifies a framed (lz32d) block.
const frameMagic uint32 = 0xCDF69D2D

// Frame header is 8 bytes (magic, total length); footer is 8 bytes (raw
// length, checksum). Total framing overhead is always 16 bytes.
const (
	frameHeaderSize = 8
	frameFooterSize = 8
	frameOverhead   = frameHeaderSize + frameFooterSize
)
