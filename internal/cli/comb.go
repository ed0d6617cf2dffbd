// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ik5/audring"
	"github.com/ik5/audring/audio"
)

// filterKindVar lets --type be validated while flags are parsed.
type filterKindVar struct {
	kind *audio.FilterKind
}

var _ pflag.Value = filterKindVar{}

func (v filterKindVar) Set(in string) error {
	kind, err := audio.ParseFilterKind(in)
	if err != nil {
		return err
	}
	*v.kind = kind
	return nil
}

func (v filterKindVar) Type() string { return "fir|iir" }
func (v filterKindVar) String() string {
	if v.kind == nil {
		return ""
	}
	return v.kind.String()
}

func (a *app) combCommand() *cobra.Command {
	cfg := audring.DefaultCombConfig()
	var bufferSize int

	cmd := &cobra.Command{
		Use:   "comb <input> <output.wav>",
		Short: "Apply a FIR or IIR comb filter and write 16-bit WAV",
		Long: `Decode <input>, optionally downmix and resample it, run it through a
comb filter and write the result to <output.wav> as 16-bit PCM.

  fir: y[n] = x[n] + gain * x[n-D]
  iir: y[n] = x[n] + gain * y[n-D]

D is --delay seconds at the working sample rate.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runComb(args[0], args[1], cfg, bufferSize)
		},
	}

	flags := cmd.Flags()
	flags.Var(filterKindVar{kind: &cfg.Kind}, "type", "Comb filter type")
	flags.Float32Var(&cfg.Gain, "gain", cfg.Gain, "Gain applied to the delayed signal, within [-1, 1]")
	flags.Float64Var(&cfg.Delay, "delay", cfg.Delay, "Delay in seconds")
	flags.Float64Var(&cfg.MaxDelay, "max-delay", 0, "Longest delay in seconds the filter is sized for, 0 for --delay")
	flags.IntVar(&cfg.TargetRate, "rate", 0, "Resample to this rate in Hz before filtering, 0 to keep the input rate")
	flags.BoolVar(&cfg.Mono, "mono", false, "Average all channels before filtering")
	flags.IntVar(&bufferSize, "buffer-size", 4096, "Samples read per decoder call")

	return cmd
}

func (a *app) runComb(inPath, outPath string, cfg audring.CombConfig, bufferSize int) (result error) {
	in, err := a.openInput(inPath)
	if err != nil {
		return err
	}

	a.logger.Debug("filtering",
		zap.Stringer("type", cfg.Kind),
		zap.Float32("gain", cfg.Gain),
		zap.Float64("delay", cfg.Delay),
		zap.Float64("max_delay", cfg.MaxDelay),
		zap.Int("rate", cfg.TargetRate),
		zap.Bool("mono", cfg.Mono),
	)

	pcm, err := audring.ProcessComb(in, cfg, bufferSize)
	if err != nil {
		return closeAll(fmt.Errorf("filtering %s: %w", inPath, err), in)
	}
	if err := in.Close(); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		result = closeAll(result, out)
	}()

	if err := pcm.WriteWAV(out); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	a.logger.Info("wrote filtered audio",
		zap.String("path", outPath),
		zap.Int("sample_rate", pcm.SampleRate),
		zap.Int("channels", pcm.Channels),
		zap.String("frames", humanize.Comma(int64(pcm.Frames()))),
		zap.String("size", humanize.Bytes(uint64(44+2*len(pcm.Samples)))),
	)

	return nil
}
