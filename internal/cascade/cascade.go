// Package cascade implements the multi-level decomposition, thresholding
// and reconstruction pipeline on top of the single-level transform.
//
// One filtering run owns all of its scratch storage: the coefficient
// pyramid lives in a single arena partitioned into per-level band slices,
// and reconstruction ping-pongs between two halves of a second region.
// The caller's signal buffer is written exactly once, by the final
// level-0 inverse transform, so an early exit never leaves it half
// modified.
package cascade

import (
	"sync"

	"github.com/tphakala/go-wavelet-filter/internal/dwt"
)

// Params configures one filtering run. Validation happens in the public
// package; everything here assumes the values are usable.
type Params struct {
	Bank      *dwt.FilterBank
	Policy    dwt.Policy
	Threshold int16
	Levels    int
	QFormat   uint8
	Parallel  bool
}

// band is one level of the coefficient pyramid. Both slices are views
// into the shared arena.
type band struct {
	approx []int16
	detail []int16
}

// Plan walks the requested level count and returns the band length of
// each level that can actually be transformed. The cascade terminates
// early when the running length drops below 2, becomes odd, or falls
// below the kernel tap count; fewer effective levels than requested is
// normal operation, not a failure.
func Plan(n, levels, taps int) []int {
	if taps < 2 {
		taps = 2
	}
	lengths := make([]int, 0, levels)
	cur := n
	for lvl := 0; lvl < levels; lvl++ {
		if cur < 2 || cur%2 != 0 || cur < taps {
			break
		}
		cur /= 2
		lengths = append(lengths, cur)
	}
	return lengths
}

// Run filters the signal in place and returns the effective level count.
// A result of zero means the signal was too short for even one level and
// was left untouched.
func Run(signal []int16, p Params) int {
	lengths := Plan(len(signal), p.Levels, p.Bank.Taps)
	active := len(lengths)
	if active == 0 {
		return 0
	}

	bands := carveArena(lengths)

	// Decomposition: level 0 consumes the signal, each deeper level
	// consumes the previous approximation band.
	src := signal
	for lvl := 0; lvl < active; lvl++ {
		dwt.Forward(src, bands[lvl].approx, bands[lvl].detail, p.Bank, p.QFormat)
		src = bands[lvl].approx
	}

	thresholdBands(bands, p)

	// ZeroAll also clears the deepest approximation band, the behavior
	// the legacy spike filter exposed; other policies never touch
	// approximation coefficients.
	if p.Policy == dwt.ZeroAll {
		deepest := bands[active-1].approx
		for i := range deepest {
			deepest[i] = 0
		}
	}

	reconstruct(signal, bands, p)

	return active
}

// carveArena allocates one contiguous scratch region for the whole
// pyramid and slices it into per-level (approx, detail) pairs.
func carveArena(lengths []int) []band {
	total := 0
	for _, l := range lengths {
		total += 2 * l
	}

	arena := make([]int16, total)
	bands := make([]band, len(lengths))
	off := 0
	for lvl, l := range lengths {
		bands[lvl].approx = arena[off : off+l : off+l]
		bands[lvl].detail = arena[off+l : off+2*l : off+2*l]
		off += 2 * l
	}
	return bands
}

// thresholdBands attenuates every detail band. The bands are disjoint, so
// parallel mode fans one goroutine out per level with identical results
// to the sequential path.
func thresholdBands(bands []band, p Params) {
	if p.Parallel && len(bands) > 1 {
		var wg sync.WaitGroup
		for lvl := range bands {
			wg.Add(1)
			go func(coeffs []int16) {
				defer wg.Done()
				dwt.Threshold(coeffs, p.Policy, p.Threshold)
			}(bands[lvl].detail)
		}
		wg.Wait()
		return
	}

	for lvl := range bands {
		dwt.Threshold(bands[lvl].detail, p.Policy, p.Threshold)
	}
}

// reconstruct walks the pyramid deepest-first. Each step combines the
// running reconstruction with that level's detail band into a buffer of
// twice the length; the level-0 step writes straight into the caller's
// signal buffer.
func reconstruct(signal []int16, bands []band, p Params) {
	active := len(bands)

	// Two ping-pong halves sized for the largest intermediate output
	// (level 1's, which is half the signal). The deepest step reads its
	// approximation band directly from the pyramid, so input and output
	// never alias.
	var ping, pong []int16
	if active > 1 {
		widest := len(bands[0].approx)
		region := make([]int16, 2*widest)
		ping = region[:widest]
		pong = region[widest:]
	}

	recon := bands[active-1].approx
	for lvl := active - 1; lvl >= 0; lvl-- {
		var out []int16
		if lvl == 0 {
			out = signal
		} else {
			out = ping[:2*len(bands[lvl].approx)]
			ping, pong = pong, ping
		}
		dwt.Inverse(recon, bands[lvl].detail, out, p.Bank, p.QFormat)
		recon = out
	}
}
