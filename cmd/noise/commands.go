package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nozzle/noise"
)

func (a *app) seedCmd() *cobra.Command {
	var (
		realSeed float64
		n        int
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "expand a real seed into a state vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			states, err := a.config.library().States(realSeed, n)
			if err != nil {
				return err
			}
			a.logger.Debug().Float64("realSeed", realSeed).Int("n", n).Msg("expanded seed")
			for _, s := range states {
				if err := writeLine(cmd.OutOrStdout(), strconv.FormatInt(int64(s), 10)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&realSeed, "real", 0, "real-valued seed (>= 0)")
	cmd.Flags().IntVarP(&n, "states", "n", 2, "length of the state vector")
	return cmd
}

func (a *app) shuffleCmd() *cobra.Command {
	var seed uint32
	cmd := &cobra.Command{
		Use:   "shuffle X...",
		Short: "map values to pseudo-random values in [0, 1]",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				x, err := parseFloat(arg)
				if err != nil {
					return err
				}
				y, err := noise.ShuffleDouble(x, seed)
				if err != nil {
					return err
				}
				if err := writeLine(cmd.OutOrStdout(), formatFloat(y)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&seed, "seed", 0, "shuffle seed")
	return cmd
}

func (a *app) combineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combine A B",
		Short: "combine two integer seeds into one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x1, err := parseInt32(args[0])
			if err != nil {
				return err
			}
			x2, err := parseInt32(args[1])
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), strconv.FormatInt(int64(noise.CombineSeedLCG(x1, x2)), 10))
		},
	}
}

func (a *app) sampleCmd() *cobra.Command {
	var (
		input  string
		output string
		seed   uint32
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "shuffle every value of a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return errors.New("--input is required")
			}

			data, err := loadCSV(input)
			if err != nil {
				return errors.Wrap(err, "loading data")
			}
			a.logger.Debug().Str("input", input).Int("rows", len(data)).Msg("loaded data")

			flat, shape := flatten(data)
			shuffled, err := a.config.library().Shuffle(cmd.Context(), flat, seed)
			if err != nil {
				return err
			}

			if err := saveCSV(output, reshape(shuffled, shape)); err != nil {
				return errors.Wrap(err, "saving output")
			}

			s := noise.Summarize(shuffled)
			a.logger.Info().
				Str("output", output).
				Int("n", s.N).
				Float64("mean", s.Mean).
				Float64("stddev", s.StdDev).
				Float64("min", s.Min).
				Float64("max", s.Max).
				Int("ones", s.Ones).
				Msg("shuffled sample")
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "input CSV file (required)")
	cmd.Flags().StringVar(&output, "output", "shuffled.csv", "output CSV file")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "shuffle seed")
	return cmd
}

func (a *app) dumpConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dumpconfig PATH",
		Short: "write the default configuration to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeNoiseConfig(defaultNoiseConfig(), args[0])
		},
	}
}
