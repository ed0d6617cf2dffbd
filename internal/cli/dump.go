// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/audring"
)

func (a *app) dumpCommand() *cobra.Command {
	var (
		seconds    float64
		bufferSize int
	)

	cmd := &cobra.Command{
		Use:   "dump <input> <output.txt>",
		Short: "Write normalised samples as text, one frame per line",
		Long: `Decode <input> and write its samples to <output.txt>, one frame per
line with the value of every channel followed by a space. Samples are
normalised to [-1, 1] by the full scale of the input bit depth.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDump(args[0], args[1], seconds, bufferSize)
		},
	}

	cmd.Flags().Float64Var(&seconds, "seconds", audring.DefaultDumpSeconds, "Seconds of audio to dump, 0 for all")
	cmd.Flags().IntVar(&bufferSize, "buffer-size", 4096, "Samples read per decoder call")

	return cmd
}

func (a *app) runDump(inPath, outPath string, seconds float64, bufferSize int) (result error) {
	if seconds < 0 {
		return fmt.Errorf("--seconds must not be negative, got %v", seconds)
	}

	in, err := a.openInput(inPath)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return closeAll(err, in)
	}
	defer func() {
		result = closeAll(result, out, in)
	}()

	maxFrames := int(seconds * float64(in.SampleRate()))
	if seconds > 0 && maxFrames == 0 {
		maxFrames = 1
	}
	a.logger.Debug("dumping", zap.Int("max_frames", maxFrames), zap.Int("buffer_size", bufferSize))

	frames, err := audring.DumpText(out, in, maxFrames, bufferSize)
	if err != nil {
		return fmt.Errorf("dumping %s: %w", inPath, err)
	}

	if maxFrames > 0 && frames < maxFrames {
		a.logger.Warn("input ended early",
			zap.String("frames", humanize.Comma(int64(frames))),
			zap.String("requested", humanize.Comma(int64(maxFrames))),
		)
	}
	a.logger.Info("wrote text dump",
		zap.String("path", outPath),
		zap.String("frames", humanize.Comma(int64(frames))),
	)

	return nil
}
