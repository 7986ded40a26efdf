package wavelet

// Denoise filters the signal in place with the default configuration
// (Daubechies-4, hard threshold 100, 6 levels, Q14).
func Denoise(signal []int16) error {
	cfg := DefaultConfig()
	return Filter(signal, &cfg)
}

// FilterCopy is like Filter but leaves the input untouched and returns
// the filtered signal as a new slice.
func FilterCopy(signal []int16, cfg *Config) ([]int16, error) {
	out := make([]int16, len(signal))
	copy(out, signal)
	if err := Filter(out, cfg); err != nil {
		return nil, err
	}
	return out, nil
}
