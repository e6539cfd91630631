package hx711

import "time"

// Scale24To32 interprets v as a 24-bit two's complement conversion
// result, MSB first, and shifts it into the upper three bytes of a
// signed 32-bit value. The result equals the true reading times 256;
// the spare low byte keeps a fraction of resolution for the smoothing
// filter.
func Scale24To32(v uint32) int32 {
	// bit 23 lands on bit 31, so the sign comes out in the shift
	return int32((v & 0xFFFFFF) << 8)
}

// wallMillis returns a monotonic millisecond counter derived from the
// runtime clock. The counter wraps at 32 bits; elapsed-time math in
// Poll uses unsigned subtraction and is unaffected.
func wallMillis() func() uint32 {
	start := time.Now()
	return func() uint32 {
		return uint32(time.Since(start).Milliseconds())
	}
}
