// SPDX-License-Identifier: EPL-2.0

package audring

import (
	"github.com/ik5/audring/audio"
	"github.com/ik5/audring/formats/aiff"
	"github.com/ik5/audring/formats/mp3"
	"github.com/ik5/audring/formats/vorbis"
	"github.com/ik5/audring/formats/wav"
)

// DefaultRegistry returns a registry with every decoder this module ships,
// keyed by file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})

	return r
}
