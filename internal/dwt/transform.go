package dwt

// rshift performs a rounded arithmetic right shift by q bits.
// Rounding to nearest keeps the per-stage quantization unbiased; a plain
// floor shift loses roughly half an LSB per stage and the bias compounds
// across cascade levels.
func rshift(v int32, q uint8) int32 {
	if q == 0 {
		return v
	}
	return (v + 1<<(q-1)) >> q
}

// Forward computes one analysis level of the transform.
//
// The input of even length n produces n/2 approximation and n/2 detail
// coefficients. The boundary is periodic: tap j of output i reads input
// index (2i - j + n) mod n, so the signal wraps instead of being extended.
// Accumulation is int32; each accumulator is shifted down by qFormat once
// and truncated to int16.
//
// Returns false without touching the outputs when the input is shorter
// than the kernel or of odd length. A too-short input is the designed
// cascade terminator, not an error.
func Forward(input, approx, detail []int16, bank *FilterBank, qFormat uint8) bool {
	n := len(input)
	if n < bank.Taps || n%2 != 0 {
		return false
	}

	half := n / 2
	for i := 0; i < half; i++ {
		var lo, hi int32
		for j := 0; j < bank.Taps; j++ {
			k := (2*i - j + n) % n
			s := int32(input[k])
			lo += s * int32(bank.H0[j])
			hi += s * int32(bank.H1[j])
		}
		approx[i] = int16(rshift(lo, qFormat))
		detail[i] = int16(rshift(hi, qFormat))
	}

	return true
}

// Inverse computes one synthesis level of the transform.
//
// The approximation and detail bands of length m reconstruct an output of
// length 2m using the same periodic convention on the longer axis: tap j
// of input i contributes to output index (2i - j + 2m) mod 2m, and both
// bands overlap-add into the same positions.
//
// Each contribution is quantized per tap, (a*g)>>qFormat, before it is
// summed. Summing first and shifting once changes the rounding and breaks
// bit-reproducibility against Forward, so the order is load-bearing.
//
// Returns false without touching the output when the output would be
// shorter than the kernel.
func Inverse(approx, detail, output []int16, bank *FilterBank, qFormat uint8) bool {
	m := len(approx)
	n := 2 * m
	if m == 0 || len(detail) != m || len(output) < n || n < bank.Taps {
		return false
	}

	acc := make([]int32, n)
	for i := 0; i < m; i++ {
		a := int32(approx[i])
		d := int32(detail[i])
		for j := 0; j < bank.Taps; j++ {
			k := (2*i - j + n) % n
			acc[k] += rshift(a*int32(bank.G0[j]), qFormat)
			acc[k] += rshift(d*int32(bank.G1[j]), qFormat)
		}
	}

	for k := 0; k < n; k++ {
		output[k] = int16(acc[k])
	}

	return true
}
