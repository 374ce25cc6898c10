package main

import (
	"io/ioutil"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/nozzle/noise"
)

const tomlConfigVersion = "1.0.0"

type noiseConfig struct {
	Version string
	Seeds   seedsConfig
	Run     runConfig
	Log     logConfig
}

type seedsConfig struct {
	Global    int32
	Local     int32
	Name      string
	Automatic bool
}

type runConfig struct {
	Workers int
}

type logConfig struct {
	Verbose bool
}

func defaultNoiseConfig() noiseConfig {
	def := noise.DefaultConfig()
	return noiseConfig{
		Version: tomlConfigVersion,
		Seeds: seedsConfig{
			Global:    def.GlobalSeed,
			Local:     def.LocalSeed,
			Name:      def.Name,
			Automatic: def.UseAutomaticLocalSeed,
		},
		Run: runConfig{Workers: def.NumWorkers},
	}
}

func loadNoiseConfig(file string) (noiseConfig, error) {
	config := defaultNoiseConfig()
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return noiseConfig{}, err
	}
	if err := toml.Unmarshal(b, &config); err != nil {
		return noiseConfig{}, errors.Wrapf(err, "parse %s", file)
	}
	if config.Version != tomlConfigVersion {
		return noiseConfig{}, errors.Errorf("unsupported config version %q (expected %q)", config.Version, tomlConfigVersion)
	}
	return config, nil
}

func writeNoiseConfig(config noiseConfig, file string) error {
	b, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(file, b, 0644)
}

// applyFlags overrides config with every flag set on the command line.
func applyFlags(fs *pflag.FlagSet, config *noiseConfig) error {
	if fs.Changed(globalSeedFlag) {
		v, err := fs.GetInt32(globalSeedFlag)
		if err != nil {
			return err
		}
		config.Seeds.Global = v
	}
	if fs.Changed(localSeedFlag) {
		v, err := fs.GetInt32(localSeedFlag)
		if err != nil {
			return err
		}
		config.Seeds.Local = v
	}
	if fs.Changed(nameFlag) {
		v, err := fs.GetString(nameFlag)
		if err != nil {
			return err
		}
		config.Seeds.Name = v
	}
	if fs.Changed(autoLocalFlag) {
		v, err := fs.GetBool(autoLocalFlag)
		if err != nil {
			return err
		}
		config.Seeds.Automatic = v
	}
	if fs.Changed(workersFlag) {
		v, err := fs.GetInt(workersFlag)
		if err != nil {
			return err
		}
		config.Run.Workers = v
	}
	if fs.Changed(verboseFlag) {
		v, err := fs.GetBool(verboseFlag)
		if err != nil {
			return err
		}
		config.Log.Verbose = v
	}
	return nil
}

func (c noiseConfig) library() noise.Config {
	return noise.Config{
		GlobalSeed:            c.Seeds.Global,
		LocalSeed:             c.Seeds.Local,
		Name:                  c.Seeds.Name,
		UseAutomaticLocalSeed: c.Seeds.Automatic,
		NumWorkers:            c.Run.Workers,
	}
}
