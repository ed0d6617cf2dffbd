// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/audring"
)

// errTooDifferent is returned when --tolerance is exceeded.
var errTooDifferent = errors.New("inputs differ by more than the tolerance")

type diffOptions struct {
	output     string
	tolerance  float64
	bufferSize int
}

func (a *app) diffCommand() *cobra.Command {
	var opts diffOptions

	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare two audio files sample by sample",
		Long: `Decode <a> and <b> and report the largest and the RMS difference of a-b
on every channel. Both inputs must have the same sample rate, channel count
and length.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDiff(cmd, args[0], args[1], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Also write a-b to this file as text rows")
	flags.Float64Var(&opts.tolerance, "tolerance", -1, "Fail when any difference is larger than this, negative to only report")
	flags.IntVar(&opts.bufferSize, "buffer-size", 4096, "Samples read per decoder call")

	return cmd
}

func (a *app) runDiff(cmd *cobra.Command, pathA, pathB string, opts diffOptions) (result error) {
	inA, err := a.openInput(pathA)
	if err != nil {
		return err
	}
	inB, err := a.openInput(pathB)
	if err != nil {
		return closeAll(err, inA)
	}
	defer func() {
		result = closeAll(result, inA, inB)
	}()

	var cmp *audring.Comparison
	if opts.output == "" {
		cmp, err = audring.Compare(inA, inB, opts.bufferSize)
	} else {
		cmp, err = a.compareTo(opts.output, inA, inB, opts.bufferSize)
	}
	if err != nil {
		return fmt.Errorf("comparing %s and %s: %w", pathA, pathB, err)
	}

	w := cmd.OutOrStdout()
	for c, d := range cmp.Diff {
		if _, err := fmt.Fprintf(w, "channel %d: max %g rms %g\n", c+1, d.Max, d.RMS); err != nil {
			return err
		}
	}

	a.logger.Info("compared inputs",
		zap.Int("sample_rate", cmp.SampleRate),
		zap.Int("channels", cmp.Channels),
		zap.String("frames", humanize.Comma(int64(cmp.Frames))),
		zap.Float64("max_diff", cmp.MaxDiff()),
		zap.Bool("identical", cmp.Identical()),
	)

	if opts.tolerance >= 0 && cmp.MaxDiff() > opts.tolerance {
		return fmt.Errorf("%w: %g > %g", errTooDifferent, cmp.MaxDiff(), opts.tolerance)
	}

	return nil
}

func (a *app) compareTo(outPath string, inA, inB *input, bufferSize int) (cmp *audring.Comparison, result error) {
	out, err := os.Create(outPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		result = closeAll(result, out)
	}()

	cmp, err = audring.CompareTo(out, inA, inB, bufferSize)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("wrote difference", zap.String("path", outPath))
	return cmp, nil
}
