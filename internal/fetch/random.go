package fetch

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/pokeview/pokedex/internal/errors"
)

// MaxRandomID is the upper bound of the random trigger (first generation)
const MaxRandomID = 151

// DiceRoller rolls a single die with rpg-toolkit, so a d151 gives a uniform
// ID in [1, 151].
type DiceRoller struct{}

// Roll returns the value of one die with max faces
func (DiceRoller) Roll(max int) (int, error) {
	if max < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", max)
	}
	roll, err := dice.NewRoll(1, max)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create d%d roll", max)
	}
	return int(roll.GetValue()), nil
}

// clampRandom keeps a roll inside [1, max]; out-of-range or failed rolls fall
// back to math/rand so the trigger always yields a valid ID.
func clampRandom(v int, err error, max int) int {
	if err != nil || v < 1 || v > max {
		return rand.IntN(max) + 1
	}
	return v
}
