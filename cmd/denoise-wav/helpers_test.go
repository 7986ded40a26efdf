package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wavelet "github.com/tphakala/go-wavelet-filter"
)

func TestOpenWAVInput_FileNotFound(t *testing.T) {
	_, err := openWAVInput("/nonexistent/file.wav", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpenWAVInput_InvalidWAV(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.wav")
	err := os.WriteFile(invalidFile, []byte("not a wav file"), 0o644)
	require.NoError(t, err)

	_, err = openWAVInput(invalidFile, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestBuildConfig(t *testing.T) {
	cfg, err := buildConfig("db6", "soft", 300, 5, 14)
	require.NoError(t, err)

	assert.Equal(t, wavelet.FamilyDaubechies6, cfg.Family)
	assert.Equal(t, wavelet.ThresholdSoft, cfg.Policy)
	assert.Equal(t, int16(300), cfg.Threshold)
	assert.Equal(t, 5, cfg.Levels)
	assert.Equal(t, uint8(14), cfg.QFormat)
}

func TestBuildConfig_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		family    string
		policy    string
		threshold int
		levels    int
		qFormat   int
	}{
		{"unknown_wavelet", "db8", "hard", 100, 6, 14},
		{"unknown_policy", "db4", "medium", 100, 6, 14},
		{"negative_threshold", "db4", "hard", -1, 6, 14},
		{"threshold_overflow", "db4", "hard", 40000, 6, 14},
		{"zero_levels", "db4", "hard", 100, 0, 14},
		{"too_many_levels", "db4", "hard", 100, 9, 14},
		{"q_format_too_large", "db4", "hard", 100, 6, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildConfig(tt.family, tt.policy, tt.threshold, tt.levels, tt.qFormat)
			assert.Error(t, err)
		})
	}
}

func TestDeinterleaveInterleave_RoundTrip(t *testing.T) {
	const (
		numChannels = 2
		frames      = 5
	)

	interleaved := []int{10, -10, 20, -20, 30, -30, 40, -40, 50, -50}
	channels := [][]int16{make([]int16, frames), make([]int16, frames)}

	deinterleave(interleaved, channels, numChannels)

	assert.Equal(t, []int16{10, 20, 30, 40, 50}, channels[0])
	assert.Equal(t, []int16{-10, -20, -30, -40, -50}, channels[1])

	restored := make([]int, len(interleaved))
	interleave(channels, restored, numChannels, frames)
	assert.Equal(t, interleaved, restored)
}

func TestNewChunkBuffers(t *testing.T) {
	bufs := newChunkBuffers(2, nil)

	require.NotNil(t, bufs.intBuffer)
	assert.Len(t, bufs.intBuffer.Data, chunkFrames*2)
	assert.Equal(t, bitsPerSample16, bufs.intBuffer.SourceBitDepth)

	require.Len(t, bufs.channels, 2)
	for ch := range bufs.channels {
		assert.Len(t, bufs.channels[ch], chunkFrames)
	}
}

// TestFilterBlocks_ShortTailPassesThrough verifies that a tail shorter
// than one transform level comes back unchanged while full blocks are
// still filtered.
func TestFilterBlocks_ShortTailPassesThrough(t *testing.T) {
	cfg := wavelet.DefaultConfig()
	cfg.Threshold = 0

	samples := make([]int16, 3)
	copy(samples, []int16{100, -200, 300})

	require.NoError(t, filterBlocks(samples, &cfg))
	assert.Equal(t, []int16{100, -200, 300}, samples)
}

func TestFilterChannels_ParallelMatchesSequential(t *testing.T) {
	const frames = 3 * wavelet.MaxSignalLength

	base := make([]int16, frames)
	for i := range base {
		base[i] = int16((i*37)%2000 - 1000)
	}
	base[100] += 5000
	base[500] -= 5000

	mkChannels := func() [][]int16 {
		chans := make([][]int16, 2)
		for ch := range chans {
			chans[ch] = make([]int16, frames)
			copy(chans[ch], base)
		}
		return chans
	}

	cfg := wavelet.DefaultConfig()
	cfg.Threshold = 400

	sequential := mkChannels()
	parallel := mkChannels()

	require.NoError(t, filterChannels(sequential, frames, &cfg, false))
	require.NoError(t, filterChannels(parallel, frames, &cfg, true))

	assert.Equal(t, sequential, parallel)
}
