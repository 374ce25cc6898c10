package main

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	configFlag     = "config"
	globalSeedFlag = "global-seed"
	localSeedFlag  = "local-seed"
	nameFlag       = "name"
	autoLocalFlag  = "auto-local-seed"
	workersFlag    = "workers"
	verboseFlag    = "verbose"
)

type app struct {
	configFile string
	config     noiseConfig
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{config: defaultNoiseConfig()}

	root := &cobra.Command{
		Use:           "noise",
		Short:         "deterministic seed expansion and value shuffling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, configFlag, "", "TOML config file")
	pf.Int32(globalSeedFlag, a.config.Seeds.Global, "global seed")
	pf.Int32(localSeedFlag, a.config.Seeds.Local, "local seed")
	pf.String(nameFlag, "", "generator instance name")
	pf.Bool(autoLocalFlag, false, "derive the local seed from --name")
	pf.Int(workersFlag, 0, "number of workers (0 = all CPUs)")
	pf.Bool(verboseFlag, false, "verbose logging")

	root.AddCommand(
		a.seedCmd(),
		a.shuffleCmd(),
		a.combineCmd(),
		a.sampleCmd(),
		a.dumpConfigCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.configFile != "" {
		config, err := loadNoiseConfig(a.configFile)
		if err != nil {
			return err
		}
		a.config = config
	}
	if err := applyFlags(cmd.Flags(), &a.config); err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if a.config.Log.Verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).With().Timestamp().Logger()

	a.logger.Debug().
		Int32("globalSeed", a.config.Seeds.Global).
		Int32("localSeed", a.config.library().LocalSeedValue()).
		Str("name", a.config.Seeds.Name).
		Int("workers", a.config.Run.Workers).
		Msg("configuration loaded")

	return a.config.library().Validate()
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	return v, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid int32 %q", s)
	}
	return int32(v), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
