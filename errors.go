// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz32 authors

package lz32

import "errors"

// Public sentinel errors, one per the three result codes a caller can act
// on (invalid arguments, corrupt data, and the internal-error code that a
// correct build never actually returns).
var (
	// ErrInvalidInput is returned for precondition violations: nil buffers,
	// lengths outside their documented ranges, or a compressed block whose
	// length is not a multiple of 16.
	ErrInvalidInput = errors.New("lz32: invalid input")

	// ErrCorruptBlock is returned by DecompressSafe when a token fails
	// validation. errors.Is also matches the more specific sentinel below
	// that actually caused it.
	ErrCorruptBlock = errors.New("lz32: corrupt block")

	// ErrInternal marks a condition a correct implementation should never
	// reach; kept for interface parity with the source's EUNKNOWN code.
	ErrInternal = errors.New("lz32: internal error")
)

// Specific conditions folded into ErrCorruptBlock. The first three are the
// internal decode failures DecompressSafe detects; ErrChecksumMismatch comes
// from FrameDecode.
var (
	// ErrInvalidSequenceToken is returned when a token violates the
	// offset/length invariant (offset == 0 iff matchLen == 0, offset != 0
	// implies matchLen >= 5).
	ErrInvalidSequenceToken = errors.New("invalid sequence token")

	// ErrDataCopyOverlap is returned when a literal copy would read into the
	// source's token region, a match copy would read before the start of
	// the destination, or either copy would write past the destination's
	// end.
	ErrDataCopyOverlap = errors.New("data copy overlap")

	// ErrStreamOverlap is returned when the raw tail needed to fill the rest
	// of the destination after the token loop is longer than the source
	// bytes left between the literal cursor and the token region.
	ErrStreamOverlap = errors.New("stream overlap")

	// ErrChecksumMismatch is returned by FrameDecode when the recovered
	// payload's checksum doesn't match the footer's reserved hash field.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)
