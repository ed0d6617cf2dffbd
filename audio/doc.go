// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core audio processing building blocks:
//   - Source interface for audio input
//   - CombFilter, a FIR/IIR comb filter built on per-channel delay lines
//   - Resampler for sample rate conversion
//   - MonoMixer, which averages all channels into one
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Comb Filtering
//
// CombFilter mixes each sample with a delayed copy of the input (FIR) or of
// its own output (IIR):
//
//	comb, err := audio.NewCombFilter(source, audio.FIR, 0.5, 0.25, 0)
//	buf := make([]float32, 4096)
//	n, err := comb.ReadSamples(buf)
//
// Every channel gets its own ringbuffer.RingBuffer sized for the maximum
// delay. The read cursor trails the write cursor by the delay, so each
// sample is one Pop and one Push.
//
// # Resampling
//
// The Resampler changes the sample rate of audio using cubic interpolation:
//
//	resampler, err := audio.NewResampler(source, 16000)
//
// The four-frame interpolation window of every channel is a ring buffer as
// well. N input frames at a ratio of src/dst produce ceil(N*dst/src) frames.
//
// # Downmixing
//
// MonoMixer reports a single channel and averages every frame of its source:
//
//	mono, err := audio.NewMonoMixer(source)
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("input.wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Filters may push samples past full scale; converting back to integer PCM
// clamps.
//
// # Error Handling
//
// Processing functions return io.EOF when no more data is available.
// Constructors validate their parameters and return errors that can be
// matched with errors.Is (ErrInvalidDelay, ErrInvalidGain, ...):
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
