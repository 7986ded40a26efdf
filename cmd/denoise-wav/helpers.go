package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	wavelet "github.com/tphakala/go-wavelet-filter"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, decoder.BitDepth)
	}

	return &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		format:   format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
}

// createWAVOutput creates the output file and its 16-bit PCM encoder.
func createWAVOutput(path string, sampleRate, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	encoder := wav.NewEncoder(outputFile, sampleRate, bitsPerSample16, channels, 1)
	return &wavOutputWriter{
		file:    outputFile,
		encoder: encoder,
	}, nil
}

// WriteChunk writes the first n samples of the buffer.
func (w *wavOutputWriter) WriteChunk(buf *audio.IntBuffer, n int) error {
	full := buf.Data
	buf.Data = buf.Data[:n]
	err := w.encoder.Write(buf)
	buf.Data = full
	return err
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// chunkBuffers holds the preallocated buffers reused for every chunk.
type chunkBuffers struct {
	intBuffer *audio.IntBuffer
	channels  [][]int16
}

// newChunkBuffers allocates the interleaved read buffer and one filter
// buffer per channel.
func newChunkBuffers(channels int, format *audio.Format) *chunkBuffers {
	bufs := &chunkBuffers{
		intBuffer: &audio.IntBuffer{
			Data:           make([]int, chunkFrames*channels),
			Format:         format,
			SourceBitDepth: bitsPerSample16,
		},
		channels: make([][]int16, channels),
	}
	for ch := range bufs.channels {
		bufs.channels[ch] = make([]int16, chunkFrames)
	}
	return bufs
}

// deinterleave splits interleaved samples into per-channel buffers.
func deinterleave(data []int, channels [][]int16, numChannels int) {
	frames := len(data) / numChannels
	for i := 0; i < frames; i++ {
		base := i * numChannels
		for ch := 0; ch < numChannels; ch++ {
			channels[ch][i] = int16(data[base+ch])
		}
	}
}

// interleave merges per-channel buffers back into the interleaved buffer.
func interleave(channels [][]int16, data []int, numChannels, frames int) {
	for i := 0; i < frames; i++ {
		base := i * numChannels
		for ch := 0; ch < numChannels; ch++ {
			data[base+ch] = int(channels[ch][i])
		}
	}
}

// filterChannels runs the wavelet filter over every channel's samples,
// concurrently when parallel mode is on.
func filterChannels(channels [][]int16, frames int, cfg *wavelet.Config, parallel bool) error {
	if parallel && len(channels) > 1 {
		var wg sync.WaitGroup
		var filterErr error
		var errMu sync.Mutex

		for ch := range channels {
			wg.Add(1)
			go func(channel int) {
				defer wg.Done()
				if err := filterBlocks(channels[channel][:frames], cfg); err != nil {
					errMu.Lock()
					if filterErr == nil {
						filterErr = fmt.Errorf("filtering failed on channel %d: %w", channel, err)
					}
					errMu.Unlock()
				}
			}(ch)
		}
		wg.Wait()
		return filterErr
	}

	for ch := range channels {
		if err := filterBlocks(channels[ch][:frames], cfg); err != nil {
			return fmt.Errorf("filtering failed on channel %d: %w", ch, err)
		}
	}
	return nil
}

// filterBlocks applies the filter in place over consecutive blocks of at
// most MaxSignalLength samples. A short tail block that cannot support a
// single decomposition level passes through unchanged, which is the
// filter's own degenerate-input behavior.
func filterBlocks(samples []int16, cfg *wavelet.Config) error {
	for off := 0; off < len(samples); off += wavelet.MaxSignalLength {
		end := off + wavelet.MaxSignalLength
		if end > len(samples) {
			end = len(samples)
		}
		if err := wavelet.Filter(samples[off:end], cfg); err != nil {
			return err
		}
	}
	return nil
}
