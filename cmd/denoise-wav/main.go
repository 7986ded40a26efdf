// Command denoise-wav applies the wavelet filter to 16-bit PCM WAV files.
//
// The signal is processed block by block (the filter operates on bounded
// in-memory buffers), each channel independently.
//
// Usage:
//
//	denoise-wav -threshold 400 input.wav output.wav
//	denoise-wav -wavelet db6 -policy soft -threshold 300 input.wav output.wav
//	denoise-wav -parallel=false input.wav output.wav   # sequential channels
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	wavelet "github.com/tphakala/go-wavelet-filter"
)

const (
	// Frames per channel read in one chunk. A multiple of the filter's
	// block size so blocks inside a chunk line up exactly.
	chunkFrames = 64 * wavelet.MaxSignalLength

	bitsPerSample16 = 16
	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	family := flag.String("wavelet", "db4", "Wavelet family: haar, db4, db6")
	policy := flag.String("policy", "hard", "Threshold policy: hard, soft, zero")
	threshold := flag.Int("threshold", wavelet.DefaultThreshold, "Threshold magnitude")
	levels := flag.Int("levels", wavelet.DefaultLevels, "Decomposition levels")
	qFormat := flag.Int("q", wavelet.DefaultQFormat, "Q-format shift (14 = unity gain)")
	parallel := flag.Bool("parallel", true, "Process channels concurrently")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -threshold 400 noisy.wav clean.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -wavelet haar -policy soft speech.wav out.wav\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	cfg, err := buildConfig(*family, *policy, *threshold, *levels, *qFormat)
	if err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Filter: wavelet=%s policy=%s threshold=%d levels=%d q=%d",
			cfg.Family, cfg.Policy, cfg.Threshold, cfg.Levels, cfg.QFormat)
	}

	start := time.Now()
	stats, err := denoiseWAV(inputPath, outputPath, cfg, *parallel, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d frames\n",
		stats.rate, stats.channels, stats.bitDepth, stats.frames)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.frames)/float64(stats.rate)/elapsed.Seconds())

	return nil
}

// buildConfig maps the CLI flags onto a filter configuration and
// validates it once up front.
func buildConfig(family, policy string, threshold, levels, qFormat int) (*wavelet.Config, error) {
	cfg := wavelet.DefaultConfig()

	switch strings.ToLower(family) {
	case "haar":
		cfg.Family = wavelet.FamilyHaar
	case "db4":
		cfg.Family = wavelet.FamilyDaubechies4
	case "db6":
		cfg.Family = wavelet.FamilyDaubechies6
	default:
		return nil, fmt.Errorf("unknown wavelet %q (use haar, db4 or db6)", family)
	}

	switch strings.ToLower(policy) {
	case "hard":
		cfg.Policy = wavelet.ThresholdHard
	case "soft":
		cfg.Policy = wavelet.ThresholdSoft
	case "zero":
		cfg.Policy = wavelet.ThresholdZeroAll
	default:
		return nil, fmt.Errorf("unknown policy %q (use hard, soft or zero)", policy)
	}

	if threshold < 0 || threshold > 32767 {
		return nil, fmt.Errorf("threshold %d out of int16 range", threshold)
	}
	cfg.Threshold = int16(threshold)
	cfg.Levels = levels
	if qFormat < 0 || qFormat > 255 {
		return nil, fmt.Errorf("q-format %d out of range", qFormat)
	}
	cfg.QFormat = uint8(qFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type wavStats struct {
	rate     int
	channels int
	bitDepth int
	frames   int64
}

// denoiseWAV streams the input file chunk by chunk through the filter.
func denoiseWAV(inputPath, outputPath string, cfg *wavelet.Config, parallel, verbose bool) (stats *wavStats, err error) {
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	if input.bitDepth != bitsPerSample16 {
		return nil, fmt.Errorf("only 16-bit PCM is supported, input is %d-bit", input.bitDepth)
	}

	output, err := createWAVOutput(outputPath, input.rate, input.channels)
	if err != nil {
		return nil, err
	}
	// Capture close errors on the success path; the encoder finalizes
	// the WAV header on Close.
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	buffers := newChunkBuffers(input.channels, input.format)
	stats = &wavStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
	}

	for {
		n, err := input.decoder.PCMBuffer(buffers.intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		frames := n / input.channels
		stats.frames += int64(frames)

		deinterleave(buffers.intBuffer.Data[:n], buffers.channels, input.channels)

		if err := filterChannels(buffers.channels, frames, cfg, parallel); err != nil {
			return nil, err
		}

		interleave(buffers.channels, buffers.intBuffer.Data[:n], input.channels, frames)

		if err := output.WriteChunk(buffers.intBuffer, n); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		buffers.intBuffer.Data = buffers.intBuffer.Data[:cap(buffers.intBuffer.Data)]
	}

	return stats, nil
}
