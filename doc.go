// Package wavelet provides fixed-point wavelet denoising for 16-bit
// signals in pure Go.
//
// The filter decomposes a signal into approximation/detail coefficient
// bands with a multi-level discrete wavelet transform, attenuates the
// detail coefficients with a thresholding policy, and reconstructs the
// signal in place. All arithmetic is integer (Q-format fixed point), so
// the engine behaves identically on targets without an FPU.
//
// # Features
//
//   - Haar, Daubechies-4 and Daubechies-6 filter banks in Q14 fixed point
//   - Hard, soft and zero-all coefficient thresholding
//   - Configurable decomposition depth with automatic clamping for short
//     signals
//   - Periodic (circular) boundary handling, no signal extension buffers
//   - Optional parallel per-level thresholding with bit-identical results
//   - Pure Go, no floating point in the signal path, no CGO
//
// # Quick Start
//
// One-shot denoising with the default configuration (Daubechies-4, hard
// threshold 100, 6 levels, Q14):
//
//	if err := wavelet.Denoise(samples); err != nil {
//	    log.Fatal(err)
//	}
//
// Full control over the filter:
//
//	cfg := wavelet.Config{
//	    Family:    wavelet.FamilyDaubechies6,
//	    Policy:    wavelet.ThresholdSoft,
//	    Threshold: 400,
//	    Levels:    5,
//	    QFormat:   wavelet.DefaultQFormat,
//	}
//	if err := wavelet.Filter(samples, &cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// The single-level transform pair is exposed for callers that manage
// their own cascade:
//
//	approx, detail, err := wavelet.ForwardTransform(samples, wavelet.FamilyHaar, wavelet.DefaultQFormat)
//	...
//	rebuilt, err := wavelet.InverseTransform(approx, detail, wavelet.FamilyHaar, wavelet.DefaultQFormat)
//
// # Fixed-Point Scaling
//
// Kernel tables are stored in Q14. With QFormat 14 the analysis/synthesis
// round trip has unity gain and reconstruction error of at most a few
// LSBs. Other Q-format values rescale the output by 2^(14-q) per pass and
// are only useful when the caller wants that gain on purpose.
//
// Coefficient magnitudes grow by up to sqrt(2) per decomposition level,
// so deep cascades need input headroom below the int16 limits.
//
// Failed calls never modify the signal buffer: validation errors are
// reported through sentinel errors (ErrInvalidSignal, ErrInvalidConfig)
// and the buffer is written only after all scratch storage is in place.
package wavelet
