package ledc

// computeDuty quantizes a duty fraction at a timer resolution of bits. The
// duty range is 1<<bits and the result is floor(range*fraction); truncation
// is part of the contract, never round-to-nearest.
//
// fraction == 1.0 yields the full range value 1<<bits, which the hardware
// drives as a constantly-high output. A nonzero request that truncates to
// zero is rejected instead of silently parking the output low; the caller
// needs a larger fraction or a wider timer resolution.
func computeDuty(bits uint8, fraction float64) (uint32, error) {
	rng := uint64(1) << bits
	value := int64(float64(rng) * fraction)
	if fraction > 1.0 || value <= 0 {
		return 0, ErrDuty
	}
	return uint32(value), nil
}
