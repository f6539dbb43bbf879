// This file is part of Gruesome.
//
// Gruesome is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gruesome is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gruesome.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// seeds below this value put the generator into a simple cycling sequence
// rather than a seeded PRNG
const cycleLimit = 1000

// Random is the random number source for a running story.
type Random struct {
	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	predictable bool
	seed        uint16
	counter     uint16

	rng *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	rnd := &Random{}
	rnd.SeedRandom()
	return rnd
}

// SeedRandom returns the generator to the default random mode.
func (rnd *Random) SeedRandom() {
	rnd.predictable = false
	if rnd.ZeroSeed {
		rnd.rng = rand.New(rand.NewSource(0))
	} else {
		rnd.rng = rand.New(rand.NewSource(baseSeed + int64(time.Now().Nanosecond())))
	}
}

// SeedPredictable puts the generator into predictable mode. Seeds below 1000
// cause the generator to cycle through the values 1 to seed. Larger seeds
// seed a PRNG in the normal way.
func (rnd *Random) SeedPredictable(seed uint16) {
	rnd.predictable = true
	rnd.seed = seed
	rnd.counter = 0
	rnd.rng = rand.New(rand.NewSource(int64(seed)))
}

// Uniform returns a value between 1 and n inclusive. An n of zero returns
// zero.
func (rnd *Random) Uniform(n uint16) uint16 {
	if n == 0 {
		return 0
	}

	if rnd.predictable && rnd.seed > 0 && rnd.seed < cycleLimit {
		rnd.counter++
		if rnd.counter > rnd.seed {
			rnd.counter = 1
		}
		v := rnd.counter
		if v > n {
			v = n
		}
		return v
	}

	return uint16(rnd.rng.Intn(int(n))) + 1
}

// Intn returns a value between 0 and n exclusive. Used by parts of the
// application that require randomisation but that are not part of the
// story's own random stream.
func (rnd *Random) Intn(n int) int {
	return rnd.rng.Intn(n)
}
