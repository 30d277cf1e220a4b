// SPDX-License-Identifier: Unlicense OR MIT

package colorspace

import "testing"

func TestEncodeTableShape(t *testing.T) {
	for _, gamma := range []float64{1 / 2.2, 1 / 2.4} {
		table := EncodeTable(gamma)
		if table[0] != 0 {
			t.Errorf("gamma %v: table[0] = %d, want 0", gamma, table[0])
		}
		if table[255] != 255 {
			t.Errorf("gamma %v: table[255] = %d, want 255", gamma, table[255])
		}
		for i := 1; i < 256; i++ {
			if table[i] < table[i-1] {
				t.Fatalf("gamma %v: table not monotonic at %d: %d < %d", gamma, i, table[i], table[i-1])
			}
		}
	}
}

func TestDecodeTableShape(t *testing.T) {
	for _, gamma := range []float64{2.2, 2.4} {
		table := DecodeTable(gamma)
		if table[0] != 0 {
			t.Errorf("gamma %v: table[0] = %d, want 0", gamma, table[0])
		}
		if table[255] != 255 {
			t.Errorf("gamma %v: table[255] = %d, want 255", gamma, table[255])
		}
		for i := 1; i < 256; i++ {
			if table[i] < table[i-1] {
				t.Fatalf("gamma %v: table not monotonic at %d: %d < %d", gamma, i, table[i], table[i-1])
			}
		}
	}
}

func TestGammaRoundTrip(t *testing.T) {
	decode := DecodeTable(2.2)
	encode := EncodeTable(1 / 2.2)
	// Quantization costs up to a couple of code values in mid range.
	for v := 30; v <= 230; v++ {
		got := int(encode[decode[v]])
		if diff := got - v; diff < -2 || diff > 2 {
			t.Errorf("round trip %d -> %d, want within 2", v, got)
		}
	}
}

func TestEncodeTableBadGammaPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EncodeTable(2.2) did not panic")
		}
	}()
	EncodeTable(2.2)
}

func TestDecodeTableBadGammaPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DecodeTable(0.45) did not panic")
		}
	}()
	DecodeTable(0.45)
}

var tableSink Table

func BenchmarkDecodeTable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tableSink = DecodeTable(2.2)
	}
}
