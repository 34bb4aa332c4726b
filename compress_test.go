package lz32

import (
	"bytes"
	"fmt"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lz32 test")},
		{name: "513-distinct-bytes", data: distinctBytes(513)},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run-1024", data: bytes.Repeat([]byte{0x41}, 1024)},
		{name: "two-copies-300", data: append(distinctBytes(300), distinctBytes(300)...)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "forced-256-literal-run", data: distinctBytes(600)},
	}
}

// distinctBytes returns n bytes that step through all 256 byte values with
// stride 251 (the largest prime below 256), so the sequence repeats only
// every 256 bytes: no match is found closer than that, and a long enough
// input exercises the forced 256-literal flush.
func distinctBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte((i * 251) % 256)
	}
	return out
}

func TestCompressDecompress_RoundTripAcrossLevels(t *testing.T) {
	levels := []int{-7, 0, 1, 2, 3, 4, 5, 9, 15}

	for _, in := range testInputSet() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", in.name, level)
			t.Run(name, func(t *testing.T) {
				cmp, err := Compress(in.data, &CompressOptions{Level: level})
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}
				if len(cmp)%16 != 0 {
					t.Fatalf("compressed block length %d is not 16-byte aligned", len(cmp))
				}
				// Tokens are read backward from the block's last 4 bytes; the
				// scan must reach a zero terminator word inside the block.
				term := -1
				for p := len(cmp) - 4; p >= 0; p -= 4 {
					if readLE32(cmp[p:]) == 0 {
						term = p
						break
					}
				}
				if term < 0 {
					t.Fatalf("missing zero terminator token: % x", cmp)
				}

				out, err := Decompress(cmp, len(in.data))
				if err != nil {
					t.Fatalf("DecompressSafe failed: %v", err)
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("safe round-trip mismatch: got=%d want=%d", len(out), len(in.data))
				}

				dst := make([]byte, len(in.data))
				n, err := DecompressFast(cmp, dst)
				if err != nil {
					t.Fatalf("DecompressFast failed: %v", err)
				}
				if !bytes.Equal(dst[:n], in.data) {
					t.Fatalf("fast round-trip mismatch: got=%d want=%d", n, len(in.data))
				}
			})
		}
	}
}

func TestCompress_DefaultAndExplicitLevels(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	cmpDefault, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress default failed: %v", err)
	}
	cmpLevel1, err := Compress(data, &CompressOptions{Level: 1})
	if err != nil {
		t.Fatalf("Compress level=1 failed: %v", err)
	}
	if !bytes.Equal(cmpDefault, cmpLevel1) {
		t.Fatal("default compression should match level=1")
	}

	cmpLevel2, err := Compress(data, &CompressOptions{Level: 2})
	if err != nil {
		t.Fatalf("Compress level=2 failed: %v", err)
	}
	if !bytes.Equal(cmpLevel1, cmpLevel2) {
		t.Fatal("levels 1-3 should all select the balanced engine")
	}

	cmpLevel4, err := Compress(data, &CompressOptions{Level: 4})
	if err != nil {
		t.Fatalf("Compress level=4 failed: %v", err)
	}
	out, err := Decompress(cmpLevel4, len(data))
	if err != nil {
		t.Fatalf("Decompress of high-ratio output failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch for high-ratio engine")
	}
}

func TestCompress_LevelClamping(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 4096)

	cmpNeg, err := Compress(data, &CompressOptions{Level: -100})
	if err != nil {
		t.Fatalf("Compress level=-100 failed: %v", err)
	}
	cmpOne, err := Compress(data, &CompressOptions{Level: 1})
	if err != nil {
		t.Fatalf("Compress level=1 failed: %v", err)
	}
	if !bytes.Equal(cmpNeg, cmpOne) {
		t.Fatal("a negative level should be clamped to level 1")
	}

	cmpHigh, err := Compress(data, &CompressOptions{Level: 100})
	if err != nil {
		t.Fatalf("Compress level=100 failed: %v", err)
	}
	cmpNine, err := Compress(data, &CompressOptions{Level: 9})
	if err != nil {
		t.Fatalf("Compress level=9 failed: %v", err)
	}
	if !bytes.Equal(cmpHigh, cmpNine) {
		t.Fatal("a level above 9 should be clamped to level 9")
	}
}

func TestCompress_OneByteRawFallback(t *testing.T) {
	cmp, err := Compress([]byte{0x42}, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(cmp) != 16 {
		t.Fatalf("expected the minimum 16-byte block, got %d", len(cmp))
	}
	if cmp[0] != 0x42 {
		t.Fatalf("expected raw byte preserved at offset 0, got %#x", cmp[0])
	}
	if !bytes.Equal(cmp[1:], make([]byte, 15)) {
		t.Fatalf("expected zero padding after the single raw byte: % x", cmp[1:])
	}

	out, err := Decompress(cmp, 1)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte{0x42}) {
		t.Fatalf("round-trip mismatch: got=% x", out)
	}
}

func TestCompressBound_MonotonicAndAligned(t *testing.T) {
	for _, n := range []int{1, 2, 15, 16, 17, 255, 256, 257, 1 << 20} {
		bound, err := CompressBound(n)
		if err != nil {
			t.Fatalf("CompressBound(%d) failed: %v", n, err)
		}
		if bound%16 != 0 {
			t.Fatalf("CompressBound(%d) = %d is not 16-byte aligned", n, bound)
		}
		if bound < n+4 {
			t.Fatalf("CompressBound(%d) = %d is smaller than the minimum raw-fallback size", n, bound)
		}
	}

	if _, err := CompressBound(0); err == nil {
		t.Fatal("expected an error for a zero-length input")
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(9))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(7))

	f.Fuzz(func(t *testing.T, data []byte, level uint8) {
		if len(data) == 0 {
			t.Skip("compression requires at least one byte of input")
		}
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, err := Compress(data, &CompressOptions{Level: int(level%9) + 1})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(cmp, len(data))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
