// Package codec holds the byte-level primitives shared by the product
// drivers: big-endian integer assembly, fixed-point scaling and float32
// reconstruction.
package codec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// Fixed-point divisors used by the uplink layouts.
const (
	TiltDivisor        = 10
	BatteryDivisor     = 1000
	TemperatureDivisor = 100
	GPSDivisor         = 10000
)

// U16 assembles two bytes, most significant first.
func U16(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// U16At reads a big-endian uint16 at offset.
func U16At(b []byte, offset int) uint16 {
	return binary.BigEndian.Uint16(b[offset : offset+2])
}

// U32 assembles four bytes, most significant first.
func U32(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

// U32At reads a big-endian uint32 at offset.
func U32At(b []byte, offset int) uint32 {
	return binary.BigEndian.Uint32(b[offset : offset+4])
}

// I32At reads a big-endian two's complement int32 at offset.
func I32At(b []byte, offset int) int32 {
	return int32(U32At(b, offset))
}

// Scale divides a raw integer by a power-of-ten divisor.
func Scale[T ~uint8 | ~uint16 | ~uint32 | ~int32](raw T, divisor float64) float64 {
	return float64(raw) / divisor
}

// Float32LE rebuilds an IEEE-754 single from exactly four bytes packed
// little-endian, as the SDI-12 logger emits them.
func Float32LE(b []byte) (float32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("float32 requires 4 bytes, got %d", len(b))
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// HexPadded renders bytes as lowercase hex with two digits per byte.
func HexPadded(b []byte) string {
	return hex.EncodeToString(b)
}

// HexCompact renders each byte as lowercase hex without zero padding, so
// 0x0A 0x03 becomes "a3".
func HexCompact(b []byte) string {
	out := make([]byte, 0, len(b)*2)
	for _, by := range b {
		out = fmt.Appendf(out, "%x", by)
	}
	return string(out)
}
