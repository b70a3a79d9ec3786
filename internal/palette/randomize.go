package palette

import (
	"fmt"
	"math/rand/v2"
)

// contrastThreshold splits r+g+b (0..765) into dark and light backgrounds.
const contrastThreshold = 380

// Randomize returns a set where every slot holds an independent uniform random
// color, with FOREGROUND and EMPHASISCOLOR then forced to black or white for
// readability against BACKGROUND. A nil r uses the global generator.
func Randomize(r *rand.Rand) ColorSet {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}

	var set ColorSet
	for i := range set.colors {
		set.colors[i] = fmt.Sprintf("#%06X", intN(0x1000000))
	}
	return ApplyContrast(set)
}

// ApplyContrast overrides FOREGROUND and EMPHASISCOLOR with white on a dark
// BACKGROUND and black on a light one. Every other slot is left untouched.
func ApplyContrast(set ColorSet) ColorSet {
	text := ContrastText(set.Get(Background))
	return set.With(Foreground, text).With(EmphasisColor, text)
}

// ContrastText picks White or Black for text drawn on background. Unparseable
// backgrounds are treated as dark.
func ContrastText(background string) string {
	sum, err := RGBSum(background)
	if err != nil || sum < contrastThreshold {
		return White
	}
	return Black
}
