package wavelet

import (
	"fmt"

	"github.com/tphakala/go-wavelet-filter/internal/dwt"
)

// ForwardTransform computes one analysis level: the input of even length n
// produces approximation and detail bands of length n/2 each.
//
// The boundary is periodic, so the first outputs fold in samples from the
// end of the buffer. The input must be at least as long as the family's
// kernel; unlike the cascade, which treats a too-short input as its
// terminator, the standalone transform reports it as an error.
func ForwardTransform(input []int16, family Family, qFormat uint8) (approx, detail []int16, err error) {
	if err := validateTransformArgs(family, qFormat); err != nil {
		return nil, nil, err
	}

	n := len(input)
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidSignal, n)
	}
	if n%2 != 0 {
		return nil, nil, fmt.Errorf("%w: length %d is odd", ErrInvalidSignal, n)
	}

	bank := dwt.Lookup(bankFamily(family))
	if n < bank.Taps {
		return nil, nil, fmt.Errorf("%w: length %d is shorter than the %s kernel (%d taps)",
			ErrInvalidSignal, n, family, bank.Taps)
	}

	approx = make([]int16, n/2)
	detail = make([]int16, n/2)
	dwt.Forward(input, approx, detail, bank, qFormat)
	return approx, detail, nil
}

// InverseTransform reconstructs a signal of length 2m from approximation
// and detail bands of length m each, using the same periodic convention
// as ForwardTransform.
func InverseTransform(approx, detail []int16, family Family, qFormat uint8) ([]int16, error) {
	if err := validateTransformArgs(family, qFormat); err != nil {
		return nil, err
	}

	m := len(approx)
	if m == 0 {
		return nil, fmt.Errorf("%w: empty coefficient bands", ErrInvalidSignal)
	}
	if len(detail) != m {
		return nil, fmt.Errorf("%w: band lengths differ (approx %d, detail %d)", ErrInvalidSignal, m, len(detail))
	}

	bank := dwt.Lookup(bankFamily(family))
	if 2*m < bank.Taps {
		return nil, fmt.Errorf("%w: output length %d is shorter than the %s kernel (%d taps)",
			ErrInvalidSignal, 2*m, family, bank.Taps)
	}

	output := make([]int16, 2*m)
	dwt.Inverse(approx, detail, output, bank, qFormat)
	return output, nil
}

// ApplyThreshold attenuates one coefficient band in place. An
// out-of-range policy leaves the band unchanged.
func ApplyThreshold(coeffs []int16, policy ThresholdPolicy, magnitude int16) {
	if policy < ThresholdHard || policy > ThresholdZeroAll {
		return
	}
	dwt.Threshold(coeffs, bankPolicy(policy), magnitude)
}

func validateTransformArgs(family Family, qFormat uint8) error {
	if family < FamilyDaubechies4 || family > FamilyHaar {
		return fmt.Errorf("%w: unknown wavelet family %d", ErrInvalidConfig, int(family))
	}
	if qFormat > maxQFormat {
		return fmt.Errorf("%w: q-format must be 0-%d, got %d", ErrInvalidConfig, maxQFormat, qFormat)
	}
	return nil
}
