// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math/bits"
	"testing"

	"github.com/ik5/audring/audio"
	"github.com/ik5/audring/internal/audiotest"
)

// extended80 encodes a positive integer sample rate as the IEEE 754 80-bit
// extended float AIFF stores in the COMM chunk.
func extended80(rate int) [10]byte {
	var b [10]byte
	e := bits.Len64(uint64(rate)) - 1
	binary.BigEndian.PutUint16(b[0:], uint16(16383+e))
	binary.BigEndian.PutUint64(b[2:], uint64(rate)<<(63-e))
	return b
}

// createAIFFFile builds a FORM/COMM/SSND file with big-endian samples.
func createAIFFFile(sampleRate, channels, bitsPerSample int, samples []int32) []byte {
	bytesPerSample := bitsPerSample / 8
	frames := 0
	if channels > 0 {
		frames = len(samples) / channels
	}

	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, uint16(channels))
	binary.Write(comm, binary.BigEndian, uint32(frames))
	binary.Write(comm, binary.BigEndian, uint16(bitsPerSample))
	rate := extended80(sampleRate)
	comm.Write(rate[:])

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		for b := bytesPerSample - 1; b >= 0; b-- {
			ssnd.WriteByte(byte(uint32(s) >> (8 * b)))
		}
	}

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	binary.Write(body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func TestExtended80(t *testing.T) {
	t.Parallel()

	got := extended80(44100)
	want := [10]byte{0x40, 0x0E, 0xAC, 0x44, 0, 0, 0, 0, 0, 0}

	if got != want {
		t.Errorf("extended80(44100) = % x, want % x", got, want)
	}
}

func TestDecoder_Valid(t *testing.T) {
	t.Parallel()

	samples := []int32{0, 16384, -16384, -32768, 8192, 0}
	data := createAIFFFile(44100, 2, 16, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if bd, ok := src.(audio.BitDepther); !ok || bd.BitDepth() != 16 {
		t.Error("source does not report a 16-bit depth")
	}

	got, err := audiotest.ReadAll(src, 4)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []float32{0, 0.5, -0.5, -1, 0.25, 0}
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// plainReader hides the Seek method of the wrapped reader.
type plainReader struct{ r io.Reader }

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := createAIFFFile(8000, 1, 16, []int32{100, -100, 200})

	src, err := Decoder{}.Decode(plainReader{r: bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Errorf("got %d Hz, %d channels; want 8000 Hz, 1 channel", src.SampleRate(), src.Channels())
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "not aiff", data: []byte("This is not AIFF data, only some text"), wantErr: ErrNotAiffFile},
		{name: "empty", data: nil, wantErr: ErrNotAiffFile},
		{name: "24-bit", data: createAIFFFile(8000, 1, 24, []int32{1, 2, 3}), wantErr: ErrUnsupportedBitDepth},
		{name: "8-bit", data: createAIFFFile(8000, 1, 8, []int32{1, 2, 3}), wantErr: ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
