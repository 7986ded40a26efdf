package wavelet

// Compile-time limits of the filter. Callers must stay within them; the
// end-to-end Filter rejects signals and level counts that exceed them.
const (
	// MaxSignalLength is the longest signal Filter accepts, in samples.
	MaxSignalLength = 256

	// MaxDecompositionLevels is the deepest cascade Filter accepts.
	MaxDecompositionLevels = 8
)

// Defaults used by DefaultConfig.
const (
	// DefaultThreshold is the default thresholding magnitude.
	DefaultThreshold = 100

	// DefaultLevels is the default decomposition depth.
	DefaultLevels = 6

	// DefaultQFormat is the Q-format the kernel tables are stored in.
	// Transforms have unity gain at this setting.
	DefaultQFormat = 14
)

// maxQFormat bounds the configurable Q-format shift; beyond the kernel
// scale plus one bit every coefficient quantizes to zero anyway.
const maxQFormat = 15
