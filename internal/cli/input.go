// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/ik5/audring/audio"
)

// input is a decoded file. Close releases the decoder and the file.
type input struct {
	audio.Source
	file *os.File
}

func (in *input) Close() error {
	var result error
	if err := in.Source.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("closing decoder: %w", err))
	}
	if err := in.file.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("closing %s: %w", in.file.Name(), err))
	}
	return result
}

// openInput picks a decoder from the extension of path and decodes the file.
func (a *app) openInput(path string) (*input, error) {
	dec, err := a.registry.Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		var result error = fmt.Errorf("decoding %s: %w", path, err)
		if cerr := f.Close(); cerr != nil {
			result = multierror.Append(result, cerr)
		}
		return nil, result
	}

	fields := []zap.Field{
		zap.String("path", path),
		zap.Int("sample_rate", src.SampleRate()),
		zap.Int("channels", src.Channels()),
	}
	if info, err := f.Stat(); err == nil {
		fields = append(fields, zap.String("size", humanize.Bytes(uint64(info.Size()))))
	}
	if bd, ok := src.(audio.BitDepther); ok {
		fields = append(fields, zap.Int("bit_depth", bd.BitDepth()))
	}
	a.logger.Info("opened input", fields...)

	return &input{Source: src, file: f}, nil
}

// closeAll closes every closer and joins their errors onto result.
func closeAll(result error, closers ...interface{ Close() error }) error {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}
