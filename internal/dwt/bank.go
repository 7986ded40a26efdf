// Package dwt implements the single-level discrete wavelet transform used
// by the filtering cascade. All arithmetic is integer fixed-point: kernel
// taps are stored in Q14 and accumulation happens in int32 before the
// result is shifted back down to the 16-bit sample range.
package dwt

// Family identifies a wavelet filter bank.
// The zero value is Daubechies4, so an uninitialized or out-of-range
// selector fails closed to the DB4 bank in Lookup.
type Family int

const (
	// Daubechies4 is the 4-tap Daubechies wavelet (good general default).
	Daubechies4 Family = iota

	// Daubechies6 is the 6-tap Daubechies wavelet (smoother, wider support).
	Daubechies6

	// Haar is the 2-tap Haar wavelet (cheapest, blockiest).
	Haar

	numFamilies
)

// KernelQFormat is the fixed-point scale the kernel tables are stored in.
// Transforms reconstruct at unity gain when called with this Q-format.
const KernelQFormat = 14

// MaxKernelTaps is the longest kernel in the registry.
const MaxKernelTaps = 6

// FilterBank holds the four kernels of one wavelet family: analysis
// low-pass h0, analysis high-pass h1, synthesis low-pass g0 and synthesis
// high-pass g1, all of the same tap count.
//
// h1 is the alternating-sign time reversal of h0 (quadrature mirror
// relationship). The synthesis pair equals the analysis pair because the
// inverse transform applies the kernels in correlation form, which is the
// matched filter for an orthonormal bank.
type FilterBank struct {
	H0   []int16
	H1   []int16
	G0   []int16
	G1   []int16
	Taps int
}

// Kernel tables in Q14. h1[j] = (-1)^j * h0[taps-1-j].
var (
	haarH0 = []int16{11585, 11585}
	haarH1 = []int16{11585, -11585}

	db4H0 = []int16{7913, 13705, 3672, -2120}
	db4H1 = []int16{-2120, -3672, 13705, -7913}

	db6H0 = []int16{5450, 13220, 7535, -2212, -1400, 577}
	db6H1 = []int16{577, 1400, -2212, -7535, 13220, -5450}
)

var banks = [numFamilies]FilterBank{
	Daubechies4: {H0: db4H0, H1: db4H1, G0: db4H0, G1: db4H1, Taps: 4},
	Daubechies6: {H0: db6H0, H1: db6H1, G0: db6H0, G1: db6H1, Taps: 6},
	Haar:        {H0: haarH0, H1: haarH1, G0: haarH0, G1: haarH1, Taps: 2},
}

// Lookup returns the filter bank for a family. Unknown values fall back to
// Daubechies4; callers that want strict validation do it before calling.
func Lookup(f Family) *FilterBank {
	if f < 0 || f >= numFamilies {
		f = Daubechies4
	}
	return &banks[f]
}
