// Package sigstat provides small signal measurement helpers shared by the
// command-line tools and the test suite: reconstruction error metrics and
// spectrum magnitudes for before/after comparisons. Metrics are computed
// in float64; the filter itself never touches floating point.
package sigstat

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// MSE returns the mean squared error between two signals. Slices of
// different lengths are compared over the shorter one; two empty signals
// have zero error.
func MSE(a, b []int16) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	sq := make([]float64, n)
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sq[i] = d * d
	}
	return f64.Sum(sq) / float64(n)
}

// SNR returns the signal-to-noise ratio in dB of a processed signal
// against its reference. Returns +Inf for a bit-exact match.
func SNR(processed, reference []int16) float64 {
	n := len(processed)
	if len(reference) < n {
		n = len(reference)
	}
	if n == 0 {
		return math.Inf(1)
	}

	sig := make([]float64, n)
	noise := make([]float64, n)
	for i := 0; i < n; i++ {
		r := float64(reference[i])
		d := float64(processed[i]) - r
		sig[i] = r * r
		noise[i] = d * d
	}

	noisePower := f64.Sum(noise)
	if noisePower == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(f64.Sum(sig)/noisePower)
}

// Spectrum returns the normalized magnitude spectrum of the signal,
// len(x)/2+1 bins from DC to Nyquist.
func Spectrum(x []int16) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	seq := make([]float64, n)
	for i, s := range x {
		seq[i] = float64(s)
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, seq)

	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}
	f64.Scale(mags, mags, 1/float64(n))
	return mags
}

// PeakBin returns the index of the strongest non-DC spectrum bin.
func PeakBin(mags []float64) int {
	best := 1
	for i := 2; i < len(mags); i++ {
		if mags[i] > mags[best] {
			best = i
		}
	}
	if len(mags) < 2 {
		return 0
	}
	return best
}

// Sine synthesizes n samples of amp*sin(2*pi*cycles*i/n) rounded to int16.
// It is the test-signal generator used by the demos and the test suite.
func Sine(n int, cycles, amp float64) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(math.Round(amp * math.Sin(2*math.Pi*cycles*float64(i)/float64(n))))
	}
	return out
}
