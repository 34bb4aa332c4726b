package lz32

import (
	"bytes"
	"fmt"
	"testing"
)

// TestCompatibility_CrossEngineCorpus checks the one compatibility property
// the wire format actually promises: balanced and high-ratio output are both
// just sequences of tokens over the same reversed-stream layout, so every
// combination of {engine that produced the block} x {decoder that reads it}
// must agree on the original bytes. There is no independent reference corpus
// for this format, so this plays that role internally.
func TestCompatibility_CrossEngineCorpus(t *testing.T) {
	corpus := map[string][]byte{
		"text-repeat":      bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 200),
		"binary-cycle":     bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0xFF}, 900),
		"long-run":         bytes.Repeat([]byte{0x7A}, 4096),
		"mixed-distinct":   distinctBytes(2000),
		"nested-repeats":   bytes.Repeat(append(bytes.Repeat([]byte("AB"), 50), bytes.Repeat([]byte("CD"), 50)...), 20),
		"single-byte-edge": {0x00},
	}

	engines := map[string]int{
		"balanced":  1,
		"high-low":  4,
		"high-best": 9,
	}

	for corpusName, data := range corpus {
		for engineName, level := range engines {
			name := fmt.Sprintf("%s/%s", corpusName, engineName)
			t.Run(name, func(t *testing.T) {
				cmp, err := Compress(data, &CompressOptions{Level: level})
				if err != nil {
					t.Fatalf("compress failed: %v", err)
				}

				safeOut, err := Decompress(cmp, len(data))
				if err != nil {
					t.Fatalf("DecompressSafe failed: %v", err)
				}
				if !bytes.Equal(safeOut, data) {
					t.Fatalf("DecompressSafe mismatch for %s", name)
				}

				fastDst := make([]byte, len(data))
				n, err := DecompressFast(cmp, fastDst)
				if err != nil {
					t.Fatalf("DecompressFast failed: %v", err)
				}
				if !bytes.Equal(fastDst[:n], data) {
					t.Fatalf("DecompressFast mismatch for %s", name)
				}

				framed, err := FrameEncode(data, &CompressOptions{Level: level})
				if err != nil {
					t.Fatalf("FrameEncode failed: %v", err)
				}
				framedOut, err := FrameDecode(framed)
				if err != nil {
					t.Fatalf("FrameDecode failed: %v", err)
				}
				if !bytes.Equal(framedOut, data) {
					t.Fatalf("FrameDecode mismatch for %s", name)
				}
			})
		}
	}
}
