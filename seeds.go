package noise

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

// StringSeed derives a seed in [0, math.MaxInt32) from an instance name,
// typically the hierarchical path of the block that owns a generator.
// Equal names always give equal seeds.
func StringSeed(name string) int32 {
	h := xxhash.Sum64String(name)
	return CombineSeedLCG(int32(uint32(h)), int32(uint32(h>>32)))
}

// ClockSeed derives a global seed from a wall-clock instant and a process
// id. Use it when a run should not be reproducible.
func ClockSeed(t time.Time, pid int) int32 {
	s := CombineSeedLCG(int32(t.Unix()), int32(t.Nanosecond()))
	return CombineSeedLCG(s, int32(pid))
}
