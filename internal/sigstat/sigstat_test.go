package sigstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name string
		a    []int16
		b    []int16
		want float64
	}{
		{"identical", []int16{1, -2, 3}, []int16{1, -2, 3}, 0},
		{"known_difference", []int16{1, 2}, []int16{3, 2}, 2},
		{"constant_offset", []int16{10, 10, 10, 10}, []int16{13, 13, 13, 13}, 9},
		{"both_empty", nil, nil, 0},
		{"shorter_slice_wins", []int16{5, 5, 999}, []int16{5, 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MSE(tt.a, tt.b), 1e-12)
		})
	}
}

func TestSNR(t *testing.T) {
	reference := []int16{10, 10, 10, 10}

	exact := SNR(reference, reference)
	assert.True(t, math.IsInf(exact, 1), "bit-exact match should be +Inf")

	// Signal power 400, noise power 4: 10*log10(100) = 20 dB.
	offByOne := []int16{11, 11, 11, 11}
	assert.InDelta(t, 20.0, SNR(offByOne, reference), 1e-9)

	assert.True(t, math.IsInf(SNR(nil, nil), 1), "empty signals have no noise")
}

// TestSpectrum_SinePeak verifies that a pure tone peaks at its own bin
// and carries no DC.
func TestSpectrum_SinePeak(t *testing.T) {
	const (
		n      = 64
		cycles = 4
	)

	x := Sine(n, cycles, 1000)
	mags := Spectrum(x)

	require.Len(t, mags, n/2+1)
	assert.Equal(t, cycles, PeakBin(mags))
	assert.Less(t, mags[0], 1.0, "pure tone should have no DC component")
}

func TestSpectrum_Empty(t *testing.T) {
	assert.Nil(t, Spectrum(nil))
}

func TestPeakBin_Degenerate(t *testing.T) {
	assert.Equal(t, 0, PeakBin(nil))
	assert.Equal(t, 0, PeakBin([]float64{1.0}))
}

func TestSine(t *testing.T) {
	x := Sine(4, 1, 100)

	require.Len(t, x, 4)
	assert.Equal(t, []int16{0, 100, 0, -100}, x)
}
