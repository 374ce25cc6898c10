package noise

import (
	"context"

	"github.com/pkg/errors"
)

// Config configures how a caller seeds its noise generators.
type Config struct {
	// GlobalSeed is shared by every generator of a run.
	// Default: 67867967
	GlobalSeed int32

	// LocalSeed distinguishes one generator from another.
	// Ignored when UseAutomaticLocalSeed is set.
	// Default: 10
	LocalSeed int32

	// Name identifies the generator instance, for example its block path.
	// Required when UseAutomaticLocalSeed is set.
	// Default: ""
	Name string

	// UseAutomaticLocalSeed derives the local seed from Name with StringSeed.
	// Default: false
	UseAutomaticLocalSeed bool

	// NumWorkers for batch shuffling.
	// 0 = auto-detect based on CPU cores.
	// Default: 0
	NumWorkers int
}

// DefaultConfig returns the default seeding configuration.
func DefaultConfig() Config {
	return Config{
		GlobalSeed:            67867967,
		LocalSeed:             10,
		Name:                  "",
		UseAutomaticLocalSeed: false,
		NumWorkers:            0,
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.UseAutomaticLocalSeed && c.Name == "" {
		return errors.New("automatic local seed requires a name")
	}
	if c.NumWorkers < 0 {
		return errors.Errorf("negative worker count %d", c.NumWorkers)
	}
	return nil
}

// LocalSeedValue returns the effective local seed.
func (c Config) LocalSeedValue() int32 {
	if c.UseAutomaticLocalSeed {
		return StringSeed(c.Name)
	}
	return c.LocalSeed
}

// States expands realSeed into a state vector of length n using the
// configured seeds.
func (c Config) States(realSeed float64, n int) ([]int32, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return ExpandSeed(c.LocalSeedValue(), c.GlobalSeed, realSeed, n)
}

// Shuffle runs ShuffleAll with the configured worker count.
func (c Config) Shuffle(ctx context.Context, xs []float64, seed uint32) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return ShuffleAll(ctx, xs, seed, c.NumWorkers)
}
