package dwt

// Policy selects how detail coefficients are attenuated.
type Policy int

const (
	// Hard zeroes coefficients below the magnitude and keeps the rest.
	Hard Policy = iota

	// Soft zeroes coefficients below the magnitude and shrinks the rest
	// toward zero by the magnitude (shrinkage, not clipping).
	Soft

	// ZeroAll zeroes every coefficient regardless of magnitude.
	ZeroAll
)

// Threshold applies a policy to one coefficient band in place.
// A negative magnitude is treated as zero. With Hard and magnitude zero
// the band is left untouched, which is what a "no attenuation" round trip
// relies on.
func Threshold(coeffs []int16, policy Policy, magnitude int16) {
	if magnitude < 0 {
		magnitude = 0
	}
	mag := int32(magnitude)

	switch policy {
	case Hard:
		for i, c := range coeffs {
			v := int32(c)
			if v < 0 {
				v = -v
			}
			if v < mag {
				coeffs[i] = 0
			}
		}

	case Soft:
		for i, c := range coeffs {
			v := int32(c)
			switch {
			case v >= mag:
				coeffs[i] = int16(v - mag)
			case v <= -mag:
				coeffs[i] = int16(v + mag)
			default:
				coeffs[i] = 0
			}
		}

	case ZeroAll:
		for i := range coeffs {
			coeffs[i] = 0
		}
	}
}
