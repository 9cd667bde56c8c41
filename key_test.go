package pcol

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"testing"
)

func TestFromBytesCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	k := FromBytes(src)
	src[0] = 9
	if bytes.Equal(k.Bytes(), src) {
		t.Fatalf("FromBytes did not copy input: got %v, want original unaffected %v", k.Bytes(), src)
	}
}

func TestFromBytesNilProducesEmpty(t *testing.T) {
	k := FromBytes(nil)
	if !k.IsEmpty() {
		t.Fatalf("FromBytes(nil) expected empty key")
	}
}

func TestFromStringNormalization(t *testing.T) {
	precomposed := "ä"
	decomposed := "ä"
	p := FromString(precomposed)
	d := FromString(decomposed)
	if p != d {
		t.Fatalf("normalization mismatch: %v vs %v", p.Bytes(), d.Bytes())
	}
}

func TestIntEncodingOrderPreserving(t *testing.T) {
	const offset = uint64(1) << 63

	v32 := int32(0x01020304)
	k32 := FromInt32(v32)
	if len(k32.Bytes()) != 8 {
		t.Fatalf("FromInt32 should produce 8 bytes, got %d", len(k32.Bytes()))
	}
	got32 := int32(int64(binary.BigEndian.Uint64(k32.Bytes()) - offset))
	if got32 != v32 {
		t.Fatalf("round-trip int32 mismatch: got=%#x want=%#x", got32, v32)
	}

	if !FromInt32(-5).LessThan(FromInt32(5)) {
		t.Fatalf("expected -5 to sort before 5")
	}
	if FromInt(-5) != FromInt32(-5) {
		t.Fatalf("FromInt and FromInt32 should agree for values in range")
	}
}

func TestUintOrdering(t *testing.T) {
	if !FromUint8(1).LessThan(FromUint8(2)) {
		t.Fatalf("expected 1 < 2")
	}
	if FromUint8(255).LessThan(FromUint8(0)) {
		t.Fatalf("expected 255 not less than 0")
	}
}

func TestNormalizedKeyAsMapKey(t *testing.T) {
	m := EmptyMap[NormalizedKey, int]()
	m = m.Add(FromString("a"), 1, nil)
	m = m.Add(FromString("b"), 2, nil)
	v, ok := m.Get(FromString("a"))
	if !ok || v != 1 {
		t.Fatalf("expected a -> 1, got %v, %v", v, ok)
	}
}

func TestRuneRoundTrip(t *testing.T) {
	r := rune(0x03BB) // lambda
	k := FromRune(r)
	if string(k.Bytes()) != string(r) {
		t.Fatalf("expected rune to encode as its utf8 bytes, got %q", k.Bytes())
	}
}

func ExampleFromString() {
	a := FromString("cafe")
	b := FromString("cafe")
	fmt.Println(a == b)
	// Output:
	// true
}
