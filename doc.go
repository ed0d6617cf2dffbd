// SPDX-License-Identifier: EPL-2.0

// Package audring strings together the decoders, ring-buffer based filters
// and sinks of this module into ready-made pipelines.
//
// The building blocks live in subpackages:
//   - ringbuffer: the fixed-size RingBuffer[T] with streaming (Push/Pop) and
//     delay-line (Put/Peek/Get with movable cursors) access
//   - audio: Source, Decoder and Registry, plus the CombFilter, Resampler
//     and MonoMixer stages
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders
//     (and a 16-bit WAV writer)
//   - formats/txt: one text row per frame
//
// DumpText decodes a stream into text rows:
//
//	f, _ := os.Open("in.wav")
//	dec, _ := audring.DefaultRegistry().Lookup("in.wav")
//	src, _ := dec.Decode(f)
//	audring.DumpText(out, src, audring.DefaultDumpSeconds*src.SampleRate(), 0)
//
// ProcessComb applies a feed-forward or feedback comb filter and returns
// 16-bit PCM ready for WAV output:
//
//	pcm, err := audring.ProcessComb(src, audring.DefaultCombConfig(), 4096)
//	...
//	err = pcm.WriteWAV(outFile)
//
// Compare checks two renderings of the same audio against each other and
// reports the largest and RMS difference per channel:
//
//	cmp, err := audring.Compare(a, b, 0)
//	if err == nil && !cmp.Identical() {
//		fmt.Println(cmp.Diff)
//	}
package audring
