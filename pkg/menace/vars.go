package menace

import "math"

// Initial score for a legal move, used by the counting scheme
var InitialScore uint32 = 4

// Set the initial score of a legal move, must be positive
func SetInitialScore(score uint32) {
	InitialScore = max(1, score)
}

// Decay of the credit given to consecutive moves in the counting scheme,
// 1.0 gives every move of a game the same credit. Default is 1.0
var Gamma float32 = 1.0

// Set the credit decay, clamped to [0, 1]
func SetGamma(gamma float32) {
	Gamma = min(1.0, max(0.0, gamma))
}

// Factor applied to the moves of both players after a draw in the probability scheme,
// must be in (0, 1). Default is 0.9
var DrawFactor float64 = 0.9

func SetDrawFactor(f float64) {
	if f > 0 && f < 1 {
		DrawFactor = f
	}
}

// Factor applied to the winner's moves in the probability scheme, the loser gets
// its reciprocal. Must be greater than 1 and finite. Default is 2.0
var WinFactor float64 = 2.0

func SetWinFactor(f float64) {
	if f > 1 && !math.IsInf(f, 0) {
		WinFactor = f
	}
}

type SeedGeneratorFnType func() int64

// Seed of the machine's random number generator when none is given
const DefaultSeed int64 = 43

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return DefaultSeed
}

// Set custom seed generator function for the machines created with NewMachine,
// by default every machine is seeded with DefaultSeed
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// When set, every mutation of the scores is followed by a full consistency check,
// and a failed check panics. Off by default.
var Verify bool = false

func SetVerify(v bool) {
	Verify = v
}

// Tolerance for the sum of the probabilities
const Epsilon = 1e-9
