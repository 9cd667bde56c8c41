package pcol

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizedKey is a comparable byte-string key representation, the
// façade's adaptation of the teacher's Key type. The teacher's Key is a
// byte slice ([]byte) compared with a hand-written Equal/LessThan pair
// because Go slices are not comparable and so cannot key a Go map or a
// CHAMP trie (whose K type parameter requires `comparable`); NormalizedKey
// keeps the teacher's construction and ordering semantics but is backed
// by a string, which is comparable and directly hashable by
// github.com/dolthub/maphash.
//
// Integer encoding policy
// -----------------------
// Every integer constructor produces an 8-byte big-endian representation
// (most-significant byte first), offset by 1<<63 before encoding so that
// lexicographic (and hence NormalizedKey ==/< ) comparison matches numeric
// ordering across both signed and unsigned inputs and across integer
// widths: FromInt32(x) == FromInt64(x) for the same numeric x. Unsigned
// values of 1<<63 or more are the exception: the offset wraps them
// around, so they sort before 0.
type NormalizedKey string

// FromBytes returns a NormalizedKey containing a copy of b's bytes.
func FromBytes(b []byte) NormalizedKey {
	return NormalizedKey(string(b))
}

// FromString returns a NormalizedKey from s after normalizing it to
// Unicode NFC. FromString does not alter case or trim spaces.
func FromString(s string) NormalizedKey {
	return NormalizedKey(norm.NFC.String(s))
}

const int64Offset = uint64(1) << 63

func encodeUint64(u uint64) NormalizedKey {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u)
	return NormalizedKey(b[:])
}

// FromInt converts an int to an order-preserving 8-byte NormalizedKey.
func FromInt(i int) NormalizedKey { return encodeUint64(uint64(int64(i)) + int64Offset) }

// FromInt64 converts an int64 to an order-preserving 8-byte NormalizedKey.
func FromInt64(i int64) NormalizedKey { return encodeUint64(uint64(i) + int64Offset) }

// FromInt32 converts an int32 to an order-preserving 8-byte NormalizedKey.
func FromInt32(i int32) NormalizedKey { return encodeUint64(uint64(int64(i)) + int64Offset) }

// FromInt16 converts an int16 to an order-preserving 8-byte NormalizedKey.
func FromInt16(i int16) NormalizedKey { return encodeUint64(uint64(int64(i)) + int64Offset) }

// FromInt8 converts an int8 to an order-preserving 8-byte NormalizedKey.
func FromInt8(i int8) NormalizedKey { return encodeUint64(uint64(int64(i)) + int64Offset) }

// FromUint converts a uint to an 8-byte NormalizedKey, order-preserving
// for values below 1<<63.
func FromUint(u uint) NormalizedKey { return encodeUint64(uint64(u) + int64Offset) }

// FromUint64 converts a uint64 to an 8-byte NormalizedKey,
// order-preserving for values below 1<<63.
func FromUint64(u uint64) NormalizedKey { return encodeUint64(u + int64Offset) }

// FromUint32 converts a uint32 to an order-preserving 8-byte NormalizedKey.
func FromUint32(u uint32) NormalizedKey { return encodeUint64(uint64(u) + int64Offset) }

// FromUint16 converts a uint16 to an order-preserving 8-byte NormalizedKey.
func FromUint16(u uint16) NormalizedKey { return encodeUint64(uint64(u) + int64Offset) }

// FromUint8 converts a uint8 to an order-preserving 8-byte NormalizedKey.
func FromUint8(u uint8) NormalizedKey { return encodeUint64(uint64(u) + int64Offset) }

// FromByte is an alias for FromUint8.
func FromByte(b byte) NormalizedKey { return FromUint8(b) }

// FromRune converts a rune to its UTF-8 encoding as a NormalizedKey.
func FromRune(r rune) NormalizedKey {
	return NormalizedKey(string(r))
}

// Bytes returns a copy of k's contents.
func (k NormalizedKey) Bytes() []byte { return []byte(k) }

// String returns the key as a string of uppercase hex byte pairs
// separated by commas and surrounded by `[]`, e.g. `[01,AB,00]`.
func (k NormalizedKey) String() string {
	if len(k) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	const hex = "0123456789ABCDEF"
	for i := 0; i < len(k); i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		b := k[i]
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}

// LessThan reports whether k is lexicographically less than other.
func (k NormalizedKey) LessThan(other NormalizedKey) bool { return k < other }

// IsEmpty reports whether k is empty.
func (k NormalizedKey) IsEmpty() bool { return len(k) == 0 }
