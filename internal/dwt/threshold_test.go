package dwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreshold_Hard(t *testing.T) {
	coeffs := []int16{5, -5, 99, -99, 100, -100, 150, -150, 0}
	Threshold(coeffs, Hard, 100)

	assert.Equal(t, []int16{0, 0, 0, 0, 100, -100, 150, -150, 0}, coeffs,
		"hard keeps coefficients at or above the magnitude unchanged")
}

func TestThreshold_Soft(t *testing.T) {
	coeffs := []int16{5, -5, 99, -99, 100, -100, 150, -150, 0}
	Threshold(coeffs, Soft, 100)

	assert.Equal(t, []int16{0, 0, 0, 0, 0, 0, 50, -50, 0}, coeffs,
		"soft shrinks surviving coefficients toward zero by the magnitude")
}

func TestThreshold_ZeroAll(t *testing.T) {
	coeffs := []int16{5, -5, 32767, -32768, 0}
	Threshold(coeffs, ZeroAll, 0)

	assert.Equal(t, []int16{0, 0, 0, 0, 0}, coeffs)
}

// TestThreshold_NegativeMagnitude verifies the clamp to zero: hard and
// soft become identity maps.
func TestThreshold_NegativeMagnitude(t *testing.T) {
	original := []int16{5, -5, 100, -100, 0}

	for _, policy := range []Policy{Hard, Soft} {
		coeffs := make([]int16, len(original))
		copy(coeffs, original)

		Threshold(coeffs, policy, -50)

		assert.Equal(t, original, coeffs, "policy %d modified coefficients", policy)
	}
}

func TestThreshold_ZeroMagnitudeHardIsIdentity(t *testing.T) {
	original := []int16{17, -345, 0, 32767, -32768}
	coeffs := make([]int16, len(original))
	copy(coeffs, original)

	Threshold(coeffs, Hard, 0)

	assert.Equal(t, original, coeffs)
}

// TestThreshold_SoftNeverExceedsHard verifies the shrinkage ordering:
// after soft thresholding no coefficient magnitude exceeds its hard
// counterpart.
func TestThreshold_SoftNeverExceedsHard(t *testing.T) {
	original := []int16{5, -5, 99, -99, 100, -100, 150, -150, 1000, -1000, 0, 32767, -32768}

	hard := make([]int16, len(original))
	soft := make([]int16, len(original))
	copy(hard, original)
	copy(soft, original)

	Threshold(hard, Hard, 100)
	Threshold(soft, Soft, 100)

	for i := range original {
		h, s := int32(hard[i]), int32(soft[i])
		if h < 0 {
			h = -h
		}
		if s < 0 {
			s = -s
		}
		assert.LessOrEqual(t, s, h, "coefficient %d (%d)", i, original[i])
	}
}

// TestThreshold_Idempotent verifies that applying the same policy twice
// changes nothing after the first pass.
func TestThreshold_Idempotent(t *testing.T) {
	for _, policy := range []Policy{Hard, ZeroAll} {
		coeffs := []int16{5, -5, 99, 100, -150, 0}
		Threshold(coeffs, policy, 100)

		once := make([]int16, len(coeffs))
		copy(once, coeffs)

		Threshold(coeffs, policy, 100)
		assert.Equal(t, once, coeffs, "policy %d", policy)
	}
}
