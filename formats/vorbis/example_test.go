// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ik5/audring/formats/vorbis"
)

func ExampleDecoder_Decode_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(strings.NewReader("not an ogg file"))

	fmt.Println(errors.Is(err, vorbis.ErrNotVorbisFile))
	// Output: true
}
