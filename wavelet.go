package wavelet

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-wavelet-filter/internal/cascade"
	"github.com/tphakala/go-wavelet-filter/internal/dwt"
)

// Family enumerates the supported wavelet filter banks.
type Family int

const (
	// FamilyDaubechies4 is the 4-tap Daubechies wavelet, the default.
	FamilyDaubechies4 Family = iota

	// FamilyDaubechies6 is the 6-tap Daubechies wavelet.
	FamilyDaubechies6

	// FamilyHaar is the 2-tap Haar wavelet.
	FamilyHaar
)

// String returns the conventional short name of the family.
func (f Family) String() string {
	switch f {
	case FamilyDaubechies4:
		return "db4"
	case FamilyDaubechies6:
		return "db6"
	case FamilyHaar:
		return "haar"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// ThresholdPolicy enumerates the coefficient attenuation strategies.
type ThresholdPolicy int

const (
	// ThresholdHard zeroes detail coefficients below the magnitude and
	// leaves the rest untouched.
	ThresholdHard ThresholdPolicy = iota

	// ThresholdSoft zeroes detail coefficients below the magnitude and
	// shrinks the rest toward zero by the magnitude.
	ThresholdSoft

	// ThresholdZeroAll zeroes every detail coefficient, and in the
	// end-to-end filter also the deepest approximation band.
	ThresholdZeroAll
)

// String returns the policy name.
func (p ThresholdPolicy) String() string {
	switch p {
	case ThresholdHard:
		return "hard"
	case ThresholdSoft:
		return "soft"
	case ThresholdZeroAll:
		return "zero"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Config holds the parameters of one filtering operation. It is
// caller-owned and read-only for the duration of a Filter call.
type Config struct {
	// Family selects the wavelet filter bank.
	Family Family

	// Policy selects how detail coefficients are attenuated.
	Policy ThresholdPolicy

	// Threshold is the attenuation magnitude. Ignored by ThresholdZeroAll.
	Threshold int16

	// Levels is the requested decomposition depth, 1..MaxDecompositionLevels.
	// The effective depth shrinks automatically when the signal is too
	// short to halve that many times.
	Levels int

	// QFormat is the fixed-point shift applied after each convolution.
	// Use DefaultQFormat (the kernel table scale) for unity gain.
	QFormat uint8

	// Parallel thresholds the per-level detail bands concurrently.
	// Results are identical to sequential mode; only worthwhile when
	// calls are frequent and levels deep.
	Parallel bool
}

// Common errors returned by the filter.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid filter configuration")

	// ErrInvalidSignal indicates an unusable signal or coefficient buffer.
	ErrInvalidSignal = errors.New("invalid signal buffer")
)

// DefaultConfig returns the stock configuration: Daubechies-4, hard
// thresholding at magnitude 100, 6 decomposition levels, Q14.
func DefaultConfig() Config {
	return Config{
		Family:    FamilyDaubechies4,
		Policy:    ThresholdHard,
		Threshold: DefaultThreshold,
		Levels:    DefaultLevels,
		QFormat:   DefaultQFormat,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Family < FamilyDaubechies4 || c.Family > FamilyHaar {
		return fmt.Errorf("%w: unknown wavelet family %d", ErrInvalidConfig, int(c.Family))
	}

	if c.Policy < ThresholdHard || c.Policy > ThresholdZeroAll {
		return fmt.Errorf("%w: unknown threshold policy %d", ErrInvalidConfig, int(c.Policy))
	}

	if c.Levels < 1 || c.Levels > MaxDecompositionLevels {
		return fmt.Errorf("%w: levels must be 1-%d, got %d", ErrInvalidConfig, MaxDecompositionLevels, c.Levels)
	}

	if c.QFormat > maxQFormat {
		return fmt.Errorf("%w: q-format must be 0-%d, got %d", ErrInvalidConfig, maxQFormat, c.QFormat)
	}

	return nil
}

// Filter denoises the signal in place: multi-level decomposition,
// per-level detail thresholding, reconstruction.
//
// On any validation error the signal is left untouched. A signal too
// short for even one transform level is not an error; the call returns
// nil with the signal unchanged, mirroring the cascade's shrink-and-
// continue behavior for intermediate levels.
func Filter(signal []int16, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil configuration", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(signal) == 0 {
		return fmt.Errorf("%w: empty signal", ErrInvalidSignal)
	}
	if len(signal) > MaxSignalLength {
		return fmt.Errorf("%w: signal length %d exceeds maximum %d", ErrInvalidSignal, len(signal), MaxSignalLength)
	}

	cascade.Run(signal, cascade.Params{
		Bank:      dwt.Lookup(bankFamily(cfg.Family)),
		Policy:    bankPolicy(cfg.Policy),
		Threshold: cfg.Threshold,
		Levels:    cfg.Levels,
		QFormat:   cfg.QFormat,
		Parallel:  cfg.Parallel,
	})

	return nil
}

// bankFamily converts the public family selector to the engine's.
func bankFamily(f Family) dwt.Family {
	switch f {
	case FamilyDaubechies6:
		return dwt.Daubechies6
	case FamilyHaar:
		return dwt.Haar
	default:
		return dwt.Daubechies4
	}
}

// bankPolicy converts the public threshold policy to the engine's.
func bankPolicy(p ThresholdPolicy) dwt.Policy {
	switch p {
	case ThresholdSoft:
		return dwt.Soft
	case ThresholdZeroAll:
		return dwt.ZeroAll
	default:
		return dwt.Hard
	}
}
